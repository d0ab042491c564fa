package diag

import "github.com/KennethDRoe/slang/internal/source"

// New constructs a Diagnostic with no notes attached.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for New(Error, ...).
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(Error, code, primary, msg)
}

// WithNote returns d with an additional Note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
