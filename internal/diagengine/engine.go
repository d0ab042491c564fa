// Package diagengine implements the per-diagnostic severity table, ignore
// paths, and error-limit enforcement that sit between the compiler phases
// (lexer, preprocessor, parser) and the final diagnostic sink. It is the
// single-writer diagnostic facade described in SPEC_FULL.md C6: parse
// workers emit into their own per-file Bag (see internal/sourceloader),
// and only the driver thread feeds those diagnostics through an Engine.
package diagengine

import (
	"strings"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
)

// Engine applies severity overrides, ignore-path suppression, and an error
// limit before forwarding diagnostics to an inner diag.Reporter. It
// implements diag.Reporter itself, so it can sit directly in front of a
// diag.BagReporter or diag.DedupReporter.
type Engine struct {
	inner diag.Reporter
	fs    *source.FileSet

	severity map[diag.Code]diag.Severity

	ignorePaths      []string
	ignoreMacroPaths []string

	errorLimit int // 0 = unlimited
	errorCount int
	limitHit   bool
}

// New returns an Engine forwarding accepted diagnostics to inner and
// resolving spans against fs for path-based suppression. Call
// SetDefaultWarnings before use to populate the compiled baseline table.
func New(inner diag.Reporter, fs *source.FileSet) *Engine {
	return &Engine{inner: inner, fs: fs, severity: make(map[diag.Code]diag.Severity)}
}

// defaultWarningCodes are every code with a -W option name, i.e. every
// diagnostic kind whose severity the user can tune. Everything else
// (lexer/syntax errors) is always reported at whatever severity the
// raising phase assigns and is never looked up in the table.
var defaultWarningCodes = []diag.Code{
	diag.DuplicateDefinition,
	diag.BadProceduralForce,
	diag.StaticInitializerMustBeExplicit,
	diag.ImplicitConvert,
	diag.BadFinishNum,
	diag.NonstandardSysFunc,
	diag.NonstandardForeach,
	diag.NonstandardDist,
	diag.IndexOOB,
	diag.RangeOOB,
	diag.RangeWidthOOB,
	diag.ImplicitNamedPortTypeMismatch,
	diag.SplitDistWeightOp,
	diag.UnknownModule,
}

// SetDefaultWarnings resets the severity table to compiled defaults: every
// tunable code starts at Warning. Subsequent SetSeverity calls (mandatory
// overrides, compat overrides, default promotions, user -W options) layer
// on top, in that precedence order (spec §4.6 step 9, testable property 4).
func (e *Engine) SetDefaultWarnings() {
	e.severity = make(map[diag.Code]diag.Severity, len(defaultWarningCodes))
	for _, c := range defaultWarningCodes {
		e.severity[c] = diag.Warning
	}
}

// SetSeverity overrides a single code's severity.
func (e *Engine) SetSeverity(code diag.Code, sev diag.Severity) {
	e.severity[code] = sev
}

// ApplyMandatoryOverrides applies the always-on overrides from spec §4.6:
// DuplicateDefinition and BadProceduralForce are promoted to Error
// regardless of compat mode or user options, before any other layer.
func (e *Engine) ApplyMandatoryOverrides() {
	e.SetSeverity(diag.DuplicateDefinition, diag.Error)
	e.SetSeverity(diag.BadProceduralForce, diag.Error)
}

// ApplyVcsCompatOverrides silences the diagnostics that vcs-compat mode
// treats as non-issues (spec §4.6 "vcs-compat severity changes"). Callers
// apply this only when compat == "vcs".
func (e *Engine) ApplyVcsCompatOverrides() {
	for _, c := range []diag.Code{
		diag.StaticInitializerMustBeExplicit,
		diag.ImplicitConvert,
		diag.BadFinishNum,
		diag.NonstandardSysFunc,
		diag.NonstandardForeach,
		diag.NonstandardDist,
	} {
		e.SetSeverity(c, diag.Ignored)
	}
}

// ApplyDefaultPromotions promotes the non-compat default-error codes
// (spec §4.6 "Non-compat default promotions"). Callers apply this only
// when compat mode is NOT "vcs" (the two layers are mutually exclusive
// per spec wording, both conditioned on the same compat flag).
func (e *Engine) ApplyDefaultPromotions() {
	for _, c := range []diag.Code{
		diag.IndexOOB,
		diag.RangeOOB,
		diag.RangeWidthOOB,
		diag.ImplicitNamedPortTypeMismatch,
		diag.SplitDistWeightOp,
	} {
		e.SetSeverity(c, diag.Error)
	}
}

// SetWarningOptions applies user -W directives, in order, after every
// other layer (they always take final precedence per testable property
// 4). Recognized forms: "error=NAME" (promote to Error), "NAME" (enable
// as Warning), "-NAME" (disable/Ignored). Returns one error per
// unrecognized NAME.
func (e *Engine) SetWarningOptions(opts []string) []error {
	var errs []error
	for _, opt := range opts {
		switch {
		case strings.HasPrefix(opt, "error="):
			name := strings.TrimPrefix(opt, "error=")
			if c, ok := codeForOptionName(name); ok {
				e.SetSeverity(c, diag.Error)
			} else {
				errs = append(errs, unknownWarningOption(name))
			}
		case strings.HasPrefix(opt, "-"):
			name := strings.TrimPrefix(opt, "-")
			if c, ok := codeForOptionName(name); ok {
				e.SetSeverity(c, diag.Ignored)
			} else {
				errs = append(errs, unknownWarningOption(name))
			}
		default:
			if c, ok := codeForOptionName(opt); ok {
				e.SetSeverity(c, diag.Warning)
			} else {
				errs = append(errs, unknownWarningOption(opt))
			}
		}
	}
	return errs
}

func codeForOptionName(name string) (diag.Code, bool) {
	for _, c := range defaultWarningCodes {
		if c.OptionName() == name {
			return c, true
		}
	}
	return diag.UnknownCode, false
}

func unknownWarningOption(name string) error {
	return &unknownOptionError{name: name}
}

type unknownOptionError struct{ name string }

func (e *unknownOptionError) Error() string {
	return "unknown warning option: " + e.name
}

// AddIgnorePath registers a path prefix under which all diagnostics are
// suppressed.
func (e *Engine) AddIgnorePath(path string) {
	e.ignorePaths = append(e.ignorePaths, path)
}

// AddIgnoreMacroPath registers a path prefix under which preprocessor/
// macro-related diagnostics (PP-range codes) are suppressed.
func (e *Engine) AddIgnoreMacroPath(path string) {
	e.ignoreMacroPaths = append(e.ignoreMacroPaths, path)
}

// SetErrorLimit bounds the number of Error-or-worse diagnostics forwarded;
// 0 disables the limit.
func (e *Engine) SetErrorLimit(n int) {
	e.errorLimit = n
}

// ErrorLimitHit reports whether the error limit was reached during this
// Engine's lifetime.
func (e *Engine) ErrorLimitHit() bool {
	return e.limitHit
}

// SetInner redirects where accepted diagnostics are forwarded. Driver
// modes each buffer into their own per-mode Bag (spec §4.7: "diagnostics
// are buffered"), so a mode swaps the inner sink in before running and
// inspects its own Bag afterward, while the severity table configured by
// optbag.Build stays shared across modes in one process invocation.
func (e *Engine) SetInner(inner diag.Reporter) {
	e.inner = inner
}

// ResetCounts clears the error counter and limit-hit flag, for reuse
// across driver modes within one process invocation.
func (e *Engine) ResetCounts() {
	e.errorCount = 0
	e.limitHit = false
}

// Report implements diag.Reporter: it resolves the effective severity,
// applies ignore-path suppression, enforces the error limit, and forwards
// surviving diagnostics to inner.
func (e *Engine) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if override, ok := e.severity[code]; ok {
		sev = override
	}
	if sev == diag.Ignored {
		return
	}
	if e.suppressedByPath(code, primary) {
		return
	}
	if sev >= diag.Error {
		if e.errorLimit > 0 && e.errorCount >= e.errorLimit {
			e.limitHit = true
			return
		}
		e.errorCount++
	}
	if e.inner != nil {
		e.inner.Report(code, sev, primary, msg, notes)
	}
}

func (e *Engine) suppressedByPath(code diag.Code, primary source.Span) bool {
	if len(e.ignorePaths) == 0 && len(e.ignoreMacroPaths) == 0 {
		return false
	}
	if e.fs == nil {
		return false
	}
	file := e.safeFile(primary.File)
	if file == nil {
		return false
	}
	for _, prefix := range e.ignorePaths {
		if strings.HasPrefix(file.Path, prefix) {
			return true
		}
	}
	if isMacroRelated(code) {
		for _, prefix := range e.ignoreMacroPaths {
			if strings.HasPrefix(file.Path, prefix) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) safeFile(id source.FileID) (f *source.File) {
	defer func() {
		if recover() != nil {
			f = nil
		}
	}()
	return e.fs.Get(id)
}

func isMacroRelated(code diag.Code) bool {
	return code >= 2000 && code < 3000
}
