package models

import "time"

type Workspace struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"org_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WorkspacePatch struct {
	Name        *string
	Slug        *string
	Description *string
}

func (p WorkspacePatch) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil && p.Description == nil
}
