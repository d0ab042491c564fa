package diag

import (
	"github.com/KennethDRoe/slang/internal/source"
)

// Note is a secondary annotation attached to a Diagnostic, e.g. pointing at
// a prior definition or the other half of a mismatched pair.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single reported finding: a severity, a stable code, a
// primary source location, a message, and optional supporting notes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
