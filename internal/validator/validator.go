package validator

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

const (
	minLoginLen    = 8
	minPasswordLen = 8
	maxNameLen     = 120
)

var (
	loginRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	slugRe  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func IsValidLogin(login string) bool {
	return len(login) >= minLoginLen && loginRe.MatchString(login)
}

// IsValidPassword requires a minimum length, mixed case, a digit and a
// non-alphanumeric character.
func IsValidPassword(password string) bool {
	if len(password) < minPasswordLen {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}

func IsValidSlug(slug string) bool {
	return len(slug) > 0 && len(slug) <= maxNameLen && slugRe.MatchString(slug)
}

func IsValidName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n > 0 && n <= maxNameLen
}
