package photos

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"photo-vault-go/pkg/models"
)

// FormatTableOutput formats photos as a polished table for CLI output
func FormatTableOutput(heading string, photos []models.Photo) string {
	if len(photos) == 0 {
		return "No photos found."
	}

	var b strings.Builder

	// Header
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString("\n")

	// Table
	w := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tStatus\tUploaded")
	fmt.Fprintln(w, strings.Repeat("─", 8)+"\t"+strings.Repeat("─", 40)+"\t"+strings.Repeat("─", 12)+"\t"+strings.Repeat("─", 16))

	for _, photo := range photos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			ShortenID(photo.PhotoID),
			GetTitle(photo),
			FormatStatus(photo),
			FormatDate(photo.UploadedAt),
		)
	}

	w.Flush()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %d photo(s)\n", len(photos)))

	return b.String()
}

// FormatPhotoDetails formats a single photo for CLI output
func FormatPhotoDetails(photo *models.Photo) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  ID:       %s\n", photo.PhotoID.String()))
	b.WriteString(fmt.Sprintf("  Title:    %s\n", GetTitle(*photo)))
	if photo.Description != nil && *photo.Description != "" {
		b.WriteString(fmt.Sprintf("  About:    %s\n", *photo.Description))
	}
	b.WriteString(fmt.Sprintf("  URL:      %s\n", photo.PhotoURL))
	b.WriteString(fmt.Sprintf("  Status:   %s\n", FormatStatus(*photo)))
	b.WriteString(fmt.Sprintf("  Uploaded: %s\n", FormatDate(photo.UploadedAt)))
	b.WriteString("\n")

	return b.String()
}

// FormatErrorMessage formats an error message consistently
func FormatErrorMessage(err error) string {
	return fmt.Sprintf("❌ Error: %v\n", err)
}

// FormatEmptyState formats an empty state message
func FormatEmptyState(message string) string {
	return fmt.Sprintf("\n%s\n", message)
}

// WriteToStdout writes formatted output to stdout with proper handling
func WriteToStdout(content string) {
	fmt.Fprint(os.Stdout, content)
}

// WriteToStderr writes formatted output to stderr
func WriteToStderr(content string) {
	fmt.Fprint(os.Stderr, content)
}
