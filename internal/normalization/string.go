package normalization

import (
	"strings"
)

// ParseInputString lowercases as well as trims; use it for emails and other
// case-insensitive identifiers.
func ParseInputString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	return normalized
}

// TrimInputString preserves case; recipient names and street lines must not
// be lowercased.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}

func TrimInputStringPtr(input *string) *string {
	if input == nil {
		return nil
	}
	normalized := strings.TrimSpace(*input)
	if normalized == "" {
		return nil
	}
	return &normalized
}
