package shortcode

import (
	"strconv"
	"strings"
)

// ValidateBoolean interprets a shortcode attribute as a boolean. It accepts
// 1/0, true/false, on/off and yes/no in any case, and the empty string as
// false. ok is false for anything else.
func ValidateBoolean(value string) (b bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no", "":
		return false, true
	}
	return false, false
}

// ValidateSquareSize interprets value as a square size in pixels within
// [lo, hi].
func ValidateSquareSize(value string, lo, hi int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < lo || n > hi {
		return 0, false
	}
	return n, true
}
