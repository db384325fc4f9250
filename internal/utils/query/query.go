package query

import "strconv"

const maxLimit = 1000

// ParseLimit parses a list limit query parameter. Missing, malformed or
// non-positive values mean "no limit"; values above maxLimit are clamped.
func ParseLimit(s string) int {
	limit, err := strconv.Atoi(s)
	if err != nil || limit <= 0 {
		return 0
	}

	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
