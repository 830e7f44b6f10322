package errors

import (
	"strings"
	"unicode"
)

// ValidatePositive validates that a configured dimension is strictly
// positive. The field name is included in the error so users can find the
// offending key in their config file.
func ValidatePositive(field string, value float64) error {
	if value <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", field, value)
	}
	return nil
}

// ValidateFontSize validates a font size in points. Sizes must be positive
// and small enough to plausibly fit a single grid row on a letter page.
func ValidateFontSize(field string, size float64) error {
	if size <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", field, size)
	}

	const maxFontSize = 72
	if size > maxFontSize {
		return New(ErrCodeInvalidConfig, "%s too large (max %d points), got %v", field, maxFontSize, size)
	}
	return nil
}

// ValidateColorComponent validates a single RGB component (0-255).
func ValidateColorComponent(field string, value int) error {
	if value < 0 || value > 255 {
		return New(ErrCodeInvalidConfig, "%s components must be in 0..255, got %d", field, value)
	}
	return nil
}

// ValidateOutputFilename validates an output filename for safety.
// It ensures the filename is a simple basename without path components.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No path separators (the directory is configured separately)
//   - No control characters or null bytes
//   - No hidden files
//   - Maximum length of 256 characters
func ValidateOutputFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidConfig, "output.filename cannot be empty")
	}

	if len(filename) > 256 {
		return New(ErrCodeInvalidConfig, "output.filename too long (max 256 characters)")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidConfig, "output.filename cannot contain path separators")
	}

	for _, r := range filename {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "output.filename contains invalid control characters")
		}
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidConfig, "output.filename cannot be a hidden file")
	}

	return nil
}

// ValidateOutputDirectory validates an output directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputDirectory(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidConfig, "output.directory cannot be empty")
	}

	const maxPathLength = 500
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidConfig, "output.directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "output.directory contains invalid characters")
		}
	}

	if strings.Contains(dir, "..") {
		return New(ErrCodeInvalidConfig, "output.directory cannot contain path traversal sequences (..)")
	}

	return nil
}
