package models

type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
	RoleOwner  Role = "owner"
)

var validRoles = map[Role]bool{
	RoleViewer: true,
	RoleEditor: true,
	RoleOwner:  true,
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanEdit reports whether the role allows changing document content.
func (r Role) CanEdit() bool {
	return r == RoleEditor || r == RoleOwner
}

type Permission struct {
	UserID string `json:"user_id"`
	Login  string `json:"login"`
	Role   Role   `json:"role"`
}

// Grant names a user by login and the role to give them.
type Grant struct {
	Login string `json:"login"`
	Role  Role   `json:"role"`
}

// PermissionDelta describes a batch change to a document's permissions.
// Add entries are upserted, Remove entries are dropped by login.
type PermissionDelta struct {
	Add    []Grant  `json:"add"`
	Remove []string `json:"remove"`
}

func (d PermissionDelta) IsEmpty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}
