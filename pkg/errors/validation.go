package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds agent and object identifiers. Problem files are
// hand-written; anything longer is almost certainly a mistake.
const maxNameLength = 128

// ValidateAgentName validates an agent identifier from a problem file.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No surrounding whitespace
//   - Maximum length of 128 characters
func ValidateAgentName(name string) error {
	if err := validateName(name); err != nil {
		return New(ErrCodeInvalidAgent, "agent name %q: %s", name, err)
	}
	return nil
}

// ValidateObjectName validates an object identifier from a problem file.
// It applies the same rules as [ValidateAgentName].
func ValidateObjectName(name string) error {
	if err := validateName(name); err != nil {
		return New(ErrCodeInvalidObject, "object name %q: %s", name, err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProblem, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidProblem, "name too long (max %d characters)", maxNameLength)
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidProblem, "name has surrounding whitespace")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidProblem, "name contains control characters")
		}
	}

	return nil
}
