package dto

import "dochub/internal/models"

type PermissionResponse struct {
	UserID string      `json:"user_id"`
	Login  string      `json:"login"`
	Role   models.Role `json:"role"`
}

type PermissionDeltaRequest struct {
	Add    []models.Grant `json:"add,omitempty"`
	Remove []string       `json:"remove,omitempty"`
}
