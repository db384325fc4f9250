package dto

type PatchPrefRequest struct {
	Key  string `json:"key"`
	Seen bool   `json:"seen"`
}
