package utils

import (
	"fmt"
	"path"
	"strings"
)

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateTitle trims and validates a photo title, returning a normalized
// value or an error if the title is empty.
func ValidateTitle(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("title is required")
	}
	return s, nil
}

// ValidateContentType checks that a MIME type is an accepted image type.
func ValidateContentType(contentType string) error {
	if !allowedContentTypes[strings.ToLower(strings.TrimSpace(contentType))] {
		return fmt.Errorf("unsupported content type: %s", contentType)
	}
	return nil
}

// ContentTypeForFile guesses the image MIME type from a file name's
// extension.
func ContentTypeForFile(fileName string) (string, error) {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".gif":
		return "image/gif", nil
	case ".webp":
		return "image/webp", nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileName)
	}
}
