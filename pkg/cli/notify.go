package cli

import (
	"fmt"
	"os"

	"photo-vault-go/pkg/cli/logger"
	"photo-vault-go/pkg/cli/store"
)

// consoleSink prints store notifications to the terminal. Used in
// command mode, where there is no TUI to surface them.
type consoleSink struct{}

func (consoleSink) Notify(message string, severity store.Severity) {
	logger.Log("notification: severity=%s message=%q", severity, message)

	switch severity {
	case store.SeverityError:
		fmt.Fprintf(os.Stderr, "❌ %s\n", message)
	case store.SeveritySuccess:
		fmt.Printf("✓ %s\n", message)
	case store.SeverityWarning:
		fmt.Printf("⚠️  %s\n", message)
	default:
		fmt.Println(message)
	}
}
