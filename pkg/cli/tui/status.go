package tui

import (
	"sync"

	"photo-vault-go/pkg/cli/store"
)

// StatusSink collects store notifications so the active view can render
// them as a status line. The store calls Notify from command goroutines,
// so access is guarded.
type StatusSink struct {
	mu       sync.Mutex
	message  string
	severity store.Severity
	set      bool
}

// NewStatusSink creates an empty status sink.
func NewStatusSink() *StatusSink {
	return &StatusSink{}
}

// Notify implements store.NotificationSink. Each notification replaces
// the previous one.
func (s *StatusSink) Notify(message string, severity store.Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.severity = severity
	s.set = true
}

// Last returns the most recent notification, if any.
func (s *StatusSink) Last() (string, store.Severity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message, s.severity, s.set
}

// Clear drops the recorded notification.
func (s *StatusSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = ""
	s.severity = ""
	s.set = false
}

// renderStatusLine renders the sink's last notification for a view footer.
func renderStatusLine(sink *StatusSink) string {
	message, severity, ok := sink.Last()
	if !ok {
		return ""
	}

	switch severity {
	case store.SeveritySuccess:
		return renderSuccess(message) + "\n"
	case store.SeverityError:
		return renderError(message) + "\n"
	case store.SeverityWarning:
		return renderWarning(message) + "\n"
	default:
		return infoStyle.Render(message) + "\n"
	}
}
