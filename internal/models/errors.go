package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRows                 = errors.New("no rows")
	ErrUNIQUEConstraintFailed = errors.New("unique constraint failed")
	ErrInternal               = errors.New("internal server error")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrForbidden              = errors.New("access denied")
	ErrInvalidParams          = errors.New("invalid params")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user already exists")
	ErrOrgNotFound            = errors.New("organization not found")
	ErrOrgExists              = errors.New("organization already exists")
	ErrWorkspaceNotFound      = errors.New("workspace not found")
	ErrWorkspaceExists        = errors.New("workspace already exists")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRole            = errors.New("invalid role")
	ErrVersionConflict        = errors.New("document version conflict")
	ErrInvalidOps             = errors.New("invalid operations")
	ErrOwnerImmutable         = errors.New("document owner permission cannot be changed")
)

type UniqueConstraintError struct {
	Constraint string
	Err        error
}

func (e *UniqueConstraintError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Constraint)
}

func (e *UniqueConstraintError) Unwrap() error {
	return e.Err
}
