package tui

import (
	"fmt"
	"strings"

	"photo-vault-go/pkg/models"

	"github.com/charmbracelet/lipgloss"
)

// renderErrorView renders a standard error view with exit message
func renderErrorView(err error) string {
	return "\n" + renderError(fmt.Sprintf("Error: %v", err)) + "\n\n" +
		helpStyle.Render("Press any key to exit...") + "\n"
}

// renderEmptyState renders a standard empty state message
func renderEmptyState(message string) string {
	return "\n" + mutedStyle.Render(message) + "\n\n" +
		helpStyle.Render("Press any key to exit...") + "\n"
}

// renderLoadingState renders a standard loading message
func renderLoadingState(message string) string {
	return "\n" + infoStyle.Render(message) + "\n"
}

// renderSuccessView renders a standard success view with exit message
func renderSuccessView(message string) string {
	return "\n" + renderSuccess(message) + "\n\n" +
		helpStyle.Render("Press any key to exit...") + "\n"
}

// renderPhotoList renders a selectable list of photos with navigation markers
func renderPhotoList(photos []models.Photo, selected int, title string, subtitle string) string {
	if len(photos) == 0 {
		return renderEmptyState("No photos found.")
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(renderTitle(title))
	}
	if subtitle != "" {
		b.WriteString(boldStyle.Render(subtitle) + "\n\n")
	}

	for i, photo := range photos {
		marker := " "
		if i == selected {
			marker = selectedMarkerStyle.Render("→")
		}

		var titleStyle lipgloss.Style
		if i == selected {
			titleStyle = selectedStyle
		} else {
			titleStyle = photoTitleStyle
		}

		b.WriteString(fmt.Sprintf("%s %s\n", marker, titleStyle.Render(formatPhotoTitle(photo))))
		b.WriteString(fmt.Sprintf("  %s\n", photoMetaStyle.Render(photo.UploadedAt.Format("2006-01-02 15:04"))))
	}

	b.WriteString("\n")
	return b.String()
}

// formatPhotoTitle returns the title of a photo or a default value
func formatPhotoTitle(photo models.Photo) string {
	if photo.Title != "" {
		return photo.Title
	}
	return "(untitled)"
}

// truncateURL truncates a URL to the specified max length
func truncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	return url[:maxLen-3] + "..."
}

// renderPhotoDetails renders common photo details (ID, title, URL, status, upload date)
func renderPhotoDetails(photo *models.Photo) string {
	if photo == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(fieldLabelStyle.Render("ID:"))
	b.WriteString(fmt.Sprintf(" %s\n", photoIDStyle.Render(photo.PhotoID.String()[:8]+"...")))

	b.WriteString(fieldLabelStyle.Render("Title:"))
	b.WriteString(fmt.Sprintf(" %s\n", formatPhotoTitle(*photo)))

	b.WriteString(fieldLabelStyle.Render("Description:"))
	if photo.Description != nil && *photo.Description != "" {
		b.WriteString("\n")
		b.WriteString(wrapText(*photo.Description, 80, "  "))
	} else {
		b.WriteString(" " + mutedStyle.Render("(not set)") + "\n")
	}

	b.WriteString(fieldLabelStyle.Render("URL:"))
	b.WriteString(fmt.Sprintf(" %s\n", truncateURL(photo.PhotoURL, 70)))

	status := "active"
	if photo.IsDeleted {
		status = "recycle bin"
	}
	b.WriteString(fieldLabelStyle.Render("Status:"))
	b.WriteString(fmt.Sprintf(" %s\n", status))

	b.WriteString(fieldLabelStyle.Render("Uploaded:"))
	b.WriteString(fmt.Sprintf(" %s\n", photo.UploadedAt.Format("2006-01-02 15:04")))

	return b.String()
}

// wrapText wraps text to a specified width, breaking at word boundaries
func wrapText(text string, width int, indent string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + "\n"
	}

	var b strings.Builder
	line := ""
	for _, word := range words {
		if len(line)+len(word)+1 > width {
			b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
			line = word
		} else {
			if line != "" {
				line += " "
			}
			line += word
		}
	}
	if line != "" {
		b.WriteString(fmt.Sprintf("%s%s\n", indent, line))
	}
	return b.String()
}

// handleListNavigation handles common navigation keys for list views (up/down/j/k)
// Returns the new selected index and whether navigation occurred
func handleListNavigation(key string, selected int, total int) (newSelected int, handled bool) {
	switch key {
	case "up", "k":
		if selected > 0 {
			return selected - 1, true
		}
		return selected, true
	case "down", "j":
		if selected < total-1 {
			return selected + 1, true
		}
		return selected, true
	}
	return selected, false
}

// handleQuitKeys checks if a key should quit the current view
func handleQuitKeys(key string) bool {
	switch key {
	case "ctrl+c", "q", "esc":
		return true
	}
	return false
}

// renderWarningView renders a standard warning view with exit message
func renderWarningView(message string) string {
	return "\n" + renderWarning(message) + "\n\n" +
		helpStyle.Render("Press any key to exit...") + "\n"
}
