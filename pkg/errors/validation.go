package errors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateName validates a blueprint or preset name for use in output file names.
// It rejects names that could be used for path traversal.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// slugRegex matches the characters kept by [Slug].
var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases name and collapses everything that is not a letter or digit
// into single dashes, for building file names from free-form labels.
func Slug(name string) string {
	s := slugRegex.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// ValidateSymbol checks that an instruction table key is exactly one character.
func ValidateSymbol(key string) error {
	if utf8.RuneCountInString(key) != 1 {
		return New(ErrCodeInvalidInstruction, "instruction key %q must be exactly one character", key)
	}
	return nil
}
