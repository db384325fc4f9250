package models

type contextKey string

const UserContextKey contextKey = "user"

type User struct {
	ID       string `json:"id"`
	Login    string `json:"login"`
	PassHash []byte `json:"pass_hash"`
}

// Prefs maps a preference key to whether the user has seen it.
type Prefs map[string]bool
