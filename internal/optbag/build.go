package optbag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KennethDRoe/slang/internal/cliparse"
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/diagengine"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/sourceloader"
)

// Env bundles the collaborators Build needs beyond the parsed bindings:
// the diagnostic engine to configure and report through, the source
// manager/loader to register search paths with, and tty-capability probes
// for the color-policy step. Build never performs filesystem I/O itself
// beyond what sourcemgr.Manager.AddUserDirectory/AddSystemDirectory already
// does (each is existence-checked, bool return, per §4.3).
type Env struct {
	Engine        *diagengine.Engine
	SourceManager *sourcemgr.Manager
	SourceLoader  *sourceloader.Loader
	StderrIsTTY   bool
	StdoutIsTTY   bool
}

// Build runs the §4.6 validation algorithm over b and env, returning the
// composed Bag and whether validation succeeded. On failure, the returned
// Bag is not meaningful and SPEC_FULL.md says the driver must short-circuit
// before any source load.
func Build(b *cliparse.Bindings, env Env, reporter diag.Reporter) (*Bag, bool) {
	bag := &Bag{
		Preprocessor: PreprocessorOptions{
			Predefines:       map[string]string{},
			IgnoreDirectives: map[string]bool{},
		},
		Compilation: CompilationOptions{
			ParamOverrides: map[string]string{},
		},
	}
	ok := true

	// Step 1: color policy.
	if v, has := b.Scalar("color-diagnostics"); has && v == "true" {
		bag.ColorDiagnostics = true
	} else {
		bag.ColorDiagnostics = env.StderrIsTTY && env.StdoutIsTTY
	}

	// Step 2: vcs compat profile defaults for fine-grained options the
	// user did not explicitly set.
	compat, hasCompat := b.Scalar("compat")
	isVcs := hasCompat && compat == "vcs"
	if isVcs {
		if !b.Has("allow-hierarchical-const") {
			bag.Compilation.AllowHierarchicalConst = true
		}
		if !b.Has("allow-use-before-declare") {
			bag.Compilation.AllowUseBeforeDeclare = true
		}
		if !b.Has("relax-enum-conversions") {
			bag.Compilation.RelaxEnumConversions = true
		}
	}
	bag.Compilation.AllowHierarchicalConst = bag.Compilation.AllowHierarchicalConst || boolFlag(b, "allow-hierarchical-const")
	bag.Compilation.AllowUseBeforeDeclare = bag.Compilation.AllowUseBeforeDeclare || boolFlag(b, "allow-use-before-declare")
	bag.Compilation.RelaxEnumConversions = bag.Compilation.RelaxEnumConversions || boolFlag(b, "relax-enum-conversions")

	// Step 3: validate enumerated values.
	if hasCompat && compat != "vcs" {
		reportInvalid(reporter, fmt.Sprintf("invalid value for compat option: '%s'", compat))
		ok = false
	}
	if mtm, has := b.Scalar("timing"); has {
		if mtm != "min" && mtm != "typ" && mtm != "max" {
			reportInvalid(reporter, fmt.Sprintf("invalid value for timing option: '%s'", mtm))
			ok = false
		} else {
			bag.Compilation.MinTypMax = mtm
		}
	}
	if ts, has := b.Scalar("timescale"); has {
		if canon, valid := parseTimescale(ts); valid {
			bag.Compilation.DefaultTimeScale = canon
		} else {
			reportInvalid(reporter, fmt.Sprintf("invalid value for timescale option: '%s'", ts))
			ok = false
		}
	}

	// Step 4: cross-option invariants.
	bag.Source.SingleUnit = boolFlag(b, "single-unit")
	bag.Source.LibrariesInheritMacros = boolFlag(b, "libraries-inherit-macros")
	if bag.Source.LibrariesInheritMacros && !bag.Source.SingleUnit {
		reportInvalid(reporter, "--single-unit must be set when --libraries-inherit-macros is used")
		ok = false
	}

	// Step 5: lint-only implies ignore-unknown-modules default (and
	// suppress-unused, per spec §3).
	bag.Source.LintOnly = boolFlag(b, "lint-only")
	bag.Compilation.LintMode = bag.Source.LintOnly
	bag.Compilation.IgnoreUnknownModules = boolFlag(b, "ignore-unknown-modules")
	if bag.Source.LintOnly {
		bag.Compilation.SuppressUnused = true
		if !b.Has("ignore-unknown-modules") {
			bag.Compilation.IgnoreUnknownModules = true
		}
	}

	// Step 6: register include/library search paths; missing directories
	// degrade to warnings, not failures.
	if env.SourceManager != nil {
		for _, dir := range b.List("include-directory") {
			if !env.SourceManager.AddUserDirectory(dir) {
				reportMissingDir(reporter, dir)
			}
		}
		for _, dir := range b.List("isystem") {
			if !env.SourceManager.AddSystemDirectory(dir) {
				reportMissingDir(reporter, dir)
			}
		}
	}
	if env.SourceLoader != nil {
		if exts := b.SetValues("exclude-ext"); len(exts) > 0 {
			env.SourceLoader.SetExcludeExtensions(exts)
		}
		env.SourceLoader.AddSearchDirectories(b.List("libdir"))
		env.SourceLoader.AddSearchExtensions(b.List("libext"))
		for _, f := range b.List("libfile") {
			env.SourceLoader.AddLibraryFiles("", f)
		}
	}

	// Step 7: diagnostic client display flags. The CLI surface has no
	// negation form for any of these, so they are always true, matching
	// "Defaults are all true" in spec §4.6 step 7.
	bag.DiagDisplay = DiagDisplayFlags{
		Column:         true,
		Location:       true,
		Source:         true,
		OptionName:     true,
		IncludeStack:   true,
		MacroExpansion: true,
		Hierarchy:      true,
	}

	// Step 8: error limit (default 20; 0 disables). The compilation-level
	// limit is exactly twice the user-facing one per spec §3's invariant.
	userLimit := 20
	if v, has := b.Scalar("error-limit"); has {
		n, err := strconv.Atoi(v)
		if err != nil {
			reportInvalid(reporter, fmt.Sprintf("invalid value for error-limit option: '%s'", v))
			ok = false
		} else {
			userLimit = n
		}
	}
	bag.UserErrorLimit = userLimit
	bag.Compilation.ErrorLimit = userLimit * 2
	if env.Engine != nil {
		env.Engine.SetErrorLimit(userLimit)
	}

	// Step 9: setDefaultWarnings, then mandatory/compat/promotion layers.
	if env.Engine != nil {
		env.Engine.SetDefaultWarnings()
		env.Engine.ApplyMandatoryOverrides()
		if isVcs {
			env.Engine.ApplyVcsCompatOverrides()
		} else {
			env.Engine.ApplyDefaultPromotions()
		}
	}

	// Step 10: register warning-suppression paths as given. They are not
	// canonicalized; the engine matches them as plain prefixes of each
	// file's path.
	bag.SuppressWarningPaths = b.List("suppress-warnings")
	bag.SuppressMacroWarningPaths = b.List("suppress-macro-warnings")
	if env.Engine != nil {
		for _, p := range bag.SuppressWarningPaths {
			env.Engine.AddIgnorePath(p)
		}
		for _, p := range bag.SuppressMacroWarningPaths {
			env.Engine.AddIgnoreMacroPath(p)
		}
	}

	// Step 11: user -W options, applied last so they take final
	// precedence; any resulting diagnostics are issued immediately.
	if env.Engine != nil {
		for _, err := range env.Engine.SetWarningOptions(b.List("warn")) {
			reportInvalid(reporter, err.Error())
			ok = false
		}
	}

	bag.Source.NumThreads = intOr(b, "threads", 1)
	bag.Preprocessor.MaxIncludeDepth = intOr(b, "max-include-depth", 200)
	bag.Lexer.MaxLexerErrors = intOr(b, "max-lexer-errors", 0)
	bag.Parser.MaxParseDepth = intOr(b, "max-parse-depth", 0)
	bag.Compilation.MaxInstanceDepth = intOr(b, "max-hierarchy-depth", 0)
	bag.Compilation.MaxGenerateSteps = intOr(b, "max-generate-steps", 0)
	bag.Compilation.MaxConstexprDepth = intOr(b, "max-constexpr-depth", 0)
	bag.Compilation.MaxConstexprSteps = intOr(b, "max-constexpr-steps", 0)
	bag.Compilation.MaxConstexprBacktraceFrames = intOr(b, "constexpr-backtrace-limit", 0)
	bag.Compilation.MaxInstanceArraySize = intOr(b, "max-instance-array", 0)
	bag.Compilation.AllowDupInitialDrivers = boolFlag(b, "allow-dup-initial-drivers")
	bag.Compilation.StrictDriverChecking = boolFlag(b, "strict-driver-checking")
	bag.Compilation.TopModules = b.List("top")

	for _, kv := range b.List("define-macro") {
		name, val := splitKV(kv)
		bag.Preprocessor.Predefines[name] = val
	}
	bag.Preprocessor.Undefines = b.List("undefine-macro")
	for _, name := range b.SetValues("ignore-directive") {
		bag.Preprocessor.IgnoreDirectives[name] = true
	}
	for _, kv := range b.List("param") {
		name, val := splitKV(kv)
		bag.Compilation.ParamOverrides[name] = val
	}

	return bag, ok
}

func boolFlag(b *cliparse.Bindings, long string) bool {
	v, has := b.Scalar(long)
	return has && v == "true"
}

func intOr(b *cliparse.Bindings, long string, def int) int {
	v, has := b.Scalar(long)
	if !has {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func splitKV(s string) (name, value string) {
	if idx := strings.Index(s, "="); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, "1"
}

func reportInvalid(r diag.Reporter, msg string) {
	if r == nil {
		return
	}
	r.Report(diag.ProjInvalidOptionValue, diag.Error, source.Span{}, msg, nil)
}

func reportMissingDir(r diag.Reporter, dir string) {
	if r == nil {
		return
	}
	r.Report(diag.IODirectoryMissing, diag.Warning, source.Span{}, fmt.Sprintf("directory does not exist: %s", dir), nil)
}

// timescaleUnits are the recognized unit suffixes, longest first so "ms"
// isn't mistaken for "s" with a leading digit left over.
var timescaleUnits = []string{"fs", "ps", "ns", "us", "ms", "s"}

// parseTimescale validates "<base><unit>/<precision><unit>" (e.g.
// "1ns/1ps") and returns it unchanged as the canonical form on success.
func parseTimescale(ts string) (string, bool) {
	parts := strings.SplitN(ts, "/", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !validTimeValue(parts[0]) || !validTimeValue(parts[1]) {
		return "", false
	}
	return ts, true
}

func validTimeValue(v string) bool {
	for _, unit := range timescaleUnits {
		if strings.HasSuffix(v, unit) {
			numPart := strings.TrimSuffix(v, unit)
			if numPart == "" {
				return false
			}
			n, err := strconv.Atoi(numPart)
			if err != nil || n <= 0 {
				return false
			}
			switch n {
			case 1, 10, 100:
				return true
			}
			return false
		}
	}
	return false
}
