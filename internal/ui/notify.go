package ui

// Level classifies a user-facing notification.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}
