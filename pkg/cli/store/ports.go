package store

// Severity classifies a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// NotificationSink receives human-readable outcome messages. The store
// emits exactly one terminal notification per mutation and never inspects
// how they are rendered.
type NotificationSink interface {
	Notify(message string, severity Severity)
}

// Clipboard receives composed share links.
type Clipboard interface {
	Copy(text string) error
}

// AuthSession supplies the current identity. The store reads it before
// every network operation and never writes it.
type AuthSession interface {
	Authenticated() bool
	Token() string
}

// State describes the collection cache as a whole, not any single photo.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
