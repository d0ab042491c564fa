// Package optbag implements the option validator and immutable option-bag
// builder (SPEC_FULL.md C7): it runs the §4.6 validation algorithm over a
// cliparse.Bindings and produces a Bag, a closed record of five named
// sub-bags (not the original's polymorphic type-keyed container — see
// SPEC_FULL.md's design-notes carryover). The Bag is read-only once built;
// nothing in this package mutates a Bag after Build returns it.
package optbag

// SourceOptions controls thread count and compilation-unit shape.
type SourceOptions struct {
	NumThreads             int
	SingleUnit             bool
	LintOnly               bool
	LibrariesInheritMacros bool
}

// PreprocessorOptions controls macro predefinition and include handling.
type PreprocessorOptions struct {
	Predefines       map[string]string
	Undefines        []string
	MaxIncludeDepth  int
	IgnoreDirectives map[string]bool
}

// LexerOptions bounds lexer error recovery.
type LexerOptions struct {
	MaxLexerErrors int
}

// ParserOptions bounds parser recursion.
type ParserOptions struct {
	MaxParseDepth int
}

// CompilationOptions controls elaboration bounds and semantic knobs.
type CompilationOptions struct {
	MaxInstanceDepth             int
	MaxGenerateSteps             int
	MaxConstexprDepth            int
	MaxConstexprSteps            int
	MaxConstexprBacktraceFrames  int
	MaxInstanceArraySize         int
	ErrorLimit                   int // 2x the user-facing --error-limit, per spec §3 invariant
	SuppressUnused               bool
	ScriptMode                   bool
	LintMode                     bool
	AllowHierarchicalConst       bool
	AllowDupInitialDrivers       bool
	RelaxEnumConversions         bool
	StrictDriverChecking         bool
	IgnoreUnknownModules         bool
	AllowUseBeforeDeclare        bool
	TopModules                   []string
	ParamOverrides               map[string]string
	MinTypMax                    string
	DefaultTimeScale             string
}

// DiagDisplayFlags controls what the diagnostic client renders; all
// default true per spec §4.6 step 7.
type DiagDisplayFlags struct {
	Column         bool
	Location       bool
	Source         bool
	OptionName     bool
	IncludeStack   bool
	MacroExpansion bool
	Hierarchy      bool
}

// Bag is the immutable, composite configuration consumed by every
// downstream stage. Construct one only via Build.
type Bag struct {
	Source       SourceOptions
	Preprocessor PreprocessorOptions
	Lexer        LexerOptions
	Parser       ParserOptions
	Compilation  CompilationOptions

	ColorDiagnostics bool
	DiagDisplay      DiagDisplayFlags

	UserErrorLimit int // the un-doubled, user-facing value (for display)

	SuppressWarningPaths      []string
	SuppressMacroWarningPaths []string
}
