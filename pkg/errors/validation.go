package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// componentIDRegex matches ids usable as dispatch targets.
var componentIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]*$`)

// ValidateComponentID validates an element id from a scene file.
//
// Ids end up in dispatched actions and in frame file names, so the rules
// are conservative:
//   - No empty ids
//   - Maximum length of 128 characters
//   - Letters, digits and . _ : - only, starting with a letter or digit
func ValidateComponentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScene, "component id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidScene, "component id too long (max 128 characters)")
	}
	if !componentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidScene, "invalid component id: %q", id)
	}
	return nil
}

// ValidateFieldKey validates a caller-supplied dispatch field name such as
// "widthDesktop". Keys may not collide with the reserved "type" and "id".
func ValidateFieldKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidScene, "field key cannot be empty")
	}
	if key == "type" || key == "id" {
		return New(ErrCodeInvalidScene, "field key %q is reserved", key)
	}
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return New(ErrCodeInvalidScene, "field key %q contains invalid characters", key)
		}
	}
	return nil
}

// ValidatePath validates a relative output path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateGridCols validates a grid column count. Zero disables the grid.
func ValidateGridCols(cols int) error {
	if cols < 0 {
		return New(ErrCodeInvalidScene, "grid columns cannot be negative: %d", cols)
	}
	if cols > 1000 {
		return New(ErrCodeInvalidScene, "grid columns too large (max 1000): %d", cols)
	}
	return nil
}
