package tui

import (
	"fmt"
	"strings"
)

// HelpItem represents a single keyboard shortcut and its description
type HelpItem struct {
	Key         string
	Description string
}

// RootMenuHelpContent returns help for root menu
func RootMenuHelpContent() string {
	items := []HelpItem{
		{"1-3", "Select menu option (Upload / Manage photos / Recycle bin)"},
		{"q / Esc", "Quit"},
	}
	return renderHelpItems(items)
}

// ManagePhotosHelpContent returns help for manage photos flow
func ManagePhotosHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Navigate photo list"},
		{"Enter", "Select photo"},
		{"Esc / b", "Go back"},
		{"1 / v", "View details"},
		{"2 / d", "Move to recycle bin"},
		{"3 / s", "Create share link"},
		{"q", "Quit"},
	}
	return renderHelpItems(items)
}

// RecycleBinHelpContent returns help for recycle bin flow
func RecycleBinHelpContent() string {
	items := []HelpItem{
		{"↑ / ↓ / j / k", "Navigate photo list"},
		{"r", "Restore selected photo"},
		{"e", "Empty recycle bin"},
		{"q / Esc", "Quit"},
	}
	return renderHelpItems(items)
}

// renderHelpItems formats help items into a readable string
func renderHelpItems(items []HelpItem) string {
	var b strings.Builder
	for _, item := range items {
		keyStyle := boldStyle.Foreground(colorPrimary)
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(item.Key),
			item.Description))
	}
	return b.String()
}
