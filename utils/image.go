package utils

import (
	"net/http"
	"strings"
)

// DetectImageContentType sniffs the content type of raw image bytes.
// Generated images arrive from the provider without metadata, so the
// type has to be read from the bytes themselves.
func DetectImageContentType(data []byte) string {
	return http.DetectContentType(data)
}

// IsValidImageType checks if the content type is a supported image type
func IsValidImageType(contentType string) bool {
	validTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
	}

	for _, validType := range validTypes {
		if strings.EqualFold(contentType, validType) {
			return true
		}
	}

	return false
}

// GetImageExtension returns the file extension for a given content type
func GetImageExtension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
