package optschema

// Driver returns the full recognized-option table for the slang-style
// driver, covering the CLI surface enumerated in the spec: include paths,
// libraries, preprocessor knobs, legacy vendor support, parser/thread
// controls, compilation bounds, semantics knobs, diagnostics, and file
// lists. Values are bound by internal/cliparse and validated by
// internal/optbag; this table only declares shape.
func Driver() *Schema {
	return New([]Entry{
		// Include paths.
		{Long: "include-directory", Short: 'I', Vendor: "incdir", Dest: DestList, IsFileName: true, TakesValue: true, Placeholder: "DIR", Help: "add a directory to the include search path"},
		{Long: "isystem", Dest: DestList, IsFileName: true, TakesValue: true, Placeholder: "DIR", Help: "add a directory to the system include search path"},

		// Libraries.
		{Long: "libdir", Short: 'y', Dest: DestList, IsFileName: true, TakesValue: true, Placeholder: "DIR", Help: "add a library search directory"},
		{Long: "libext", Short: 'Y', Dest: DestList, TakesValue: true, Placeholder: "EXT", Help: "add a library search extension"},
		{Long: "libfile", Short: 'v', Dest: DestList, IsFileName: true, TakesValue: true, Placeholder: "FILE", Help: "add a library source file"},
		{Long: "exclude-ext", Dest: DestSet, TakesValue: true, Placeholder: "EXT", Help: "exclude positional source files with this extension"},

		// Preprocessor.
		{Long: "define-macro", Short: 'D', Vendor: "define", Dest: DestList, TakesValue: true, Placeholder: "NAME=VALUE", Help: "define a preprocessor macro (value defaults to 1)"},
		{Long: "undefine-macro", Short: 'U', Dest: DestList, TakesValue: true, Placeholder: "NAME", Help: "undefine a preprocessor macro"},
		{Long: "max-include-depth", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum nested `include depth"},
		{Long: "libraries-inherit-macros", Dest: DestScalar, TakesValue: false, Help: "let library files see the compilation unit's macros (requires --single-unit)"},
		{Long: "ignore-directive", Dest: DestSet, TakesValue: true, Placeholder: "NAME", Help: "ignore a preprocessor directive entirely"},

		// Legacy vendor support.
		{Long: "cmd-ignore", Dest: DestCallback, TakesValue: true, Placeholder: "VENDOR,N", Help: "ignore a vendor command and its N following arguments"},
		{Long: "cmd-rename", Dest: DestCallback, TakesValue: true, Placeholder: "VENDOR,SLANG", Help: "rename a vendor command to a canonical option"},

		// Parser/threads.
		{Long: "max-parse-depth", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum parser recursion depth"},
		{Long: "max-lexer-errors", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum lexer errors before giving up on a file"},
		{Long: "threads", Short: 'j', Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "number of parallel parse threads"},

		// Compilation bounds.
		{Long: "max-hierarchy-depth", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum instance hierarchy depth"},
		{Long: "max-generate-steps", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum generate-block iteration count"},
		{Long: "max-constexpr-depth", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum constant-expression recursion depth"},
		{Long: "max-constexpr-steps", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum constant-expression evaluation steps"},
		{Long: "constexpr-backtrace-limit", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum constant-expression backtrace frames shown"},
		{Long: "max-instance-array", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "maximum instance array size"},

		// Semantics knobs.
		{Long: "compat", Dest: DestScalar, TakesValue: true, Placeholder: "vcs", Help: "enable a compatibility profile"},
		{Long: "timing", Short: 'T', Dest: DestScalar, TakesValue: true, Placeholder: "min|typ|max", Help: "select the min/typ/max delay expression variant"},
		{Long: "timescale", Dest: DestScalar, TakesValue: true, Placeholder: "BASE/PRECISION", Help: "set the default time scale"},
		{Long: "allow-use-before-declare", Dest: DestScalar, TakesValue: false, Help: "allow identifiers to be used before their declaration"},
		{Long: "ignore-unknown-modules", Dest: DestScalar, TakesValue: false, Help: "do not error on instances of undefined modules"},
		{Long: "relax-enum-conversions", Dest: DestScalar, TakesValue: false, Help: "allow implicit conversions to/from enum types"},
		{Long: "allow-hierarchical-const", Dest: DestScalar, TakesValue: false, Help: "allow hierarchical references in constant expressions"},
		{Long: "allow-dup-initial-drivers", Dest: DestScalar, TakesValue: false, Help: "allow multiple initial blocks to drive the same variable"},
		{Long: "strict-driver-checking", Dest: DestScalar, TakesValue: false, Help: "enable strict multi-driver checking"},
		{Long: "lint-only", Dest: DestScalar, TakesValue: false, Help: "run diagnostics only; do not require top-level elaboration"},
		{Long: "top", Dest: DestList, TakesValue: true, Placeholder: "NAME", Help: "treat NAME as a top-level module"},
		{Long: "param", Short: 'G', Dest: DestList, TakesValue: true, Placeholder: "NAME=VALUE", Help: "override a top-level module parameter"},

		// Diagnostics.
		{Long: "warn", Short: 'W', Dest: DestList, TakesValue: true, Placeholder: "OPTION", Help: "control a diagnostic's severity, e.g. error=foo or -foo"},
		{Long: "color-diagnostics", Dest: DestScalar, TakesValue: false, Help: "force colored diagnostic output"},
		{Long: "diag-column", Dest: DestScalar, TakesValue: false, Help: "show column numbers in diagnostics"},
		{Long: "diag-location", Dest: DestScalar, TakesValue: false, Help: "show file/line/column locations in diagnostics"},
		{Long: "diag-source", Dest: DestScalar, TakesValue: false, Help: "show source line context in diagnostics"},
		{Long: "diag-option", Dest: DestScalar, TakesValue: false, Help: "show the -W option name that controls a diagnostic"},
		{Long: "diag-include-stack", Dest: DestScalar, TakesValue: false, Help: "show the `include stack in diagnostics"},
		{Long: "diag-macro-expansion", Dest: DestScalar, TakesValue: false, Help: "show the macro-expansion backtrace in diagnostics"},
		{Long: "diag-hierarchy", Dest: DestScalar, TakesValue: false, Help: "show the instance hierarchy in diagnostics"},
		{Long: "error-limit", Dest: DestScalar, TakesValue: true, Placeholder: "N", Help: "stop after N errors (0 = unlimited)"},
		{Long: "suppress-warnings", Dest: DestList, IsFileName: true, TakesValue: true, Placeholder: "PATH", Help: "suppress warnings for files under PATH"},
		{Long: "suppress-macro-warnings", Dest: DestList, IsFileName: true, TakesValue: true, Placeholder: "PATH", Help: "suppress macro-expansion warnings for files under PATH"},

		// File lists.
		{Long: "single-unit", Dest: DestScalar, TakesValue: false, Help: "compile all sources as a single compilation unit"},
		{Long: "command-file", Short: 'f', Dest: DestCallback, IsFileName: true, TakesValue: true, Placeholder: "FILE", Help: "read additional arguments from FILE"},
		{Long: "command-file-relative", Short: 'F', Dest: DestCallback, IsFileName: true, TakesValue: true, Placeholder: "FILE", Help: "read additional arguments from FILE, resolving its own paths relative to FILE's directory"},
	})
}
