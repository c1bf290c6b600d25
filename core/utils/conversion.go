package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a decimal integer, returning 0 when s is not one.
func ToInt(s string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(s))
	return i
}

// ToBool reports whether s is "1" or "true" in any case.
func ToBool(s string) bool {
	s = strings.TrimSpace(s)
	return s == "1" || strings.EqualFold(s, "true")
}
