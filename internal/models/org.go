package models

import "time"

type Organization struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrgPatch carries the mutable organization fields. Nil means "leave as is".
type OrgPatch struct {
	Name *string
	Slug *string
}

func (p OrgPatch) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil
}
