package photos

import (
	"time"

	"photo-vault-go/pkg/models"

	"github.com/google/uuid"
)

// GetTitle returns the title of a photo, or a default value if missing
func GetTitle(photo models.Photo) string {
	if photo.Title != "" {
		return photo.Title
	}
	return "(untitled)"
}

// TruncateURL truncates a URL to the specified max length
func TruncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	return url[:maxLen-3] + "..."
}

// ShortenID returns a shortened version of a UUID (first 8 characters + "...")
func ShortenID(id uuid.UUID) string {
	return id.String()[:8] + "..."
}

// FormatDate formats a time as a readable date string
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// FormatStatus renders the deletion flag as a human-readable label
func FormatStatus(photo models.Photo) string {
	if photo.IsDeleted {
		return "recycle bin"
	}
	return "active"
}
