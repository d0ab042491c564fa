// Package diag defines the diagnostic model shared by every compilation
// phase: lexer, preprocessor, option validator, and the minimal compilation
// binder.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the lexer, preprocessor, and option validator.
//   - Offer lightweight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to a concrete storage or formatting layer.
//
// # Scope
//
// Apart from the plain one-line-per-entry text of golden.go
// (FormatGoldenDiagnostics/FormatShortDiagnostics), package diag performs
// no formatting, IO, or CLI integration. Pretty and JSON rendering live in
// internal/diagfmt; orchestration across files lives in
// internal/diagengine and internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity — Ignored/Info/Warning/Error/Fatal, see severity.go.
//   - Code — compact numeric identifier (see codes.go) with a stable string
//     form ("LEX1001", "PP2001", "SYN3001", "SEM4001", "IO5001", "DRV6001").
//   - Message — human oriented text; keep it short and actionable.
//   - Primary span — the canonical source.Span pointing at the issue.
//   - Notes — optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "macro defined here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. Callers
// construct a ReportBuilder via NewReportBuilder (or the helpers
// ReportError/ReportWarning/ReportInfo), chain WithNote, and call Emit.
// When no extra metadata is needed, call Reporter.Report(...) directly.
//
// diag.BagReporter collects diagnostics into a Bag, which supports sorting,
// deduplication, and capacity limits. diag.DedupReporter wraps another
// Reporter and filters out exact duplicate diagnostics before they reach it.
//
// # Consumers
//
//   - internal/diagfmt renders diagnostics into pretty/JSON form.
//   - internal/diagengine applies the severity-override table (configured by
//     internal/optbag) before diagnostics reach the final Reporter.
//   - internal/driver collects bags across files and reports build/fail
//     summaries to the CLI.
package diag
