package diag

// Severity ranks the importance of a diagnostic. Order matters: comparisons
// such as "sev >= Warning" rely on the declaration order below.
type Severity uint8

const (
	// Ignored diagnostics are dropped before they ever reach a Bag.
	Ignored Severity = iota
	// Info is an informational diagnostic; never promoted and never
	// counted against the error/warning summary.
	Info
	// Warning is suppressible and can be promoted to Error by the default
	// severity table or the user's -W options.
	Warning
	// Error fails the build but does not necessarily stop the current phase.
	Error
	// Fatal counts toward the build-failed verdict like Error; no driver
	// mode stops early on it.
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Ignored:
		return "ignored"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// IsError reports whether s counts toward the build-failed verdict.
func (s Severity) IsError() bool {
	return s >= Error
}
