package util

import (
	"strconv"
)

// ParseId parses a route id parameter.
func ParseId(val string) (int64, error) {
	return strconv.ParseInt(val, 10, 64)
}

// ParsePageNumber parses the ?page= query value, defaulting to page 1.
// Out-of-range values are clamped later by the paginator.
func ParsePageNumber(val string) int {
	if val == "" {
		return 1
	}
	number, err := strconv.Atoi(val)
	if err != nil {
		return 1
	}
	return number
}
