package tools

import (
	"strings"
)

// IsBlank reports whether v is nil, not a string, or only whitespace.
func IsBlank(v any) bool {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s) == ""
	case *string:
		return s == nil || strings.TrimSpace(*s) == ""
	default:
		return true
	}
}

func NewPtr[T any](v T) *T {
	return &v
}
