// Package cmdfile implements -f/-F command-file loading: reading a file,
// optionally resolving its own contents relative to the file's parent
// directory, and re-entering internal/cliparse on its contents. Per
// SPEC_FULL.md's design notes (and spec.md §9), the working-directory
// mutation the original driver performs via chdir is instead modeled as an
// explicit resolutionBaseDir string threaded through the recursive parse,
// so nested command files never touch real process state.
package cmdfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KennethDRoe/slang/internal/cliparse"
)

// DefaultMaxIncludeDepth bounds -f/-F nesting when New is given
// maxDepth <= 0; it is the command-file recursion limit per spec.md §9's
// open-question resolution (no cycle detection, just a cap).
const DefaultMaxIncludeDepth = 200

// Loader re-enters a cliparse.Parser for each -f/-F file encountered,
// threading a resolution base directory instead of mutating the working
// directory.
type Loader struct {
	parser        *cliparse.Parser
	bindings      *cliparse.Bindings
	maxDepth      int
	anyLoadFailed bool
}

// New returns a Loader that feeds parsed command-file contents into parser
// and bindings. maxDepth <= 0 uses DefaultMaxIncludeDepth.
func New(parser *cliparse.Parser, bindings *cliparse.Bindings, maxDepth int) *Loader {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxIncludeDepth
	}
	return &Loader{parser: parser, bindings: bindings, maxDepth: maxDepth}
}

// InstallTopLevelCallbacks wires this Loader's -f/-F handling onto
// parser (the same one passed to New), so that a top-level Parse call
// recurses through this Loader whenever it encounters --command-file or
// --command-file-relative. invocationDir is the resolution base for a
// bare -f FILE at the top level (normally the process's working
// directory at startup).
func (l *Loader) InstallTopLevelCallbacks(invocationDir string) {
	l.parser.RebindCallback("command-file", func(value string) error {
		return l.load(value, invocationDir, false, 0)
	})
	l.parser.RebindCallback("command-file-relative", func(value string) error {
		return l.load(value, invocationDir, true, 0)
	})
}

// AnyLoadFailed reports whether any command file in this Loader's history
// failed to load, across every nested call.
func (l *Loader) AnyLoadFailed() bool {
	return l.anyLoadFailed
}

// LoadRelativeToInvocation implements -f FILE: path is resolved relative to
// the current resolutionBaseDir (the invocation directory at depth 0).
func (l *Loader) LoadRelativeToInvocation(path, resolutionBaseDir string) error {
	return l.load(path, resolutionBaseDir, false, 0)
}

// LoadRelativeToFile implements -F FILE: after reading path (resolved
// against resolutionBaseDir like -f), positional source files and nested
// -f/-F paths within the file's own contents resolve relative to path's
// parent directory instead. Option values such as -I are bound unchanged.
func (l *Loader) LoadRelativeToFile(path, resolutionBaseDir string) error {
	return l.load(path, resolutionBaseDir, true, 0)
}

func (l *Loader) load(path, resolutionBaseDir string, relativeToFile bool, depth int) error {
	if depth >= l.maxDepth {
		l.anyLoadFailed = true
		return fmt.Errorf("command file nesting exceeds max include depth (%d)", l.maxDepth)
	}

	resolved := path
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(resolutionBaseDir, resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		l.anyLoadFailed = true
		return fmt.Errorf("unable to find or open file %q: %w", resolved, err)
	}

	content := strings.TrimSuffix(string(data), "\x00")

	nextBaseDir := resolutionBaseDir
	if relativeToFile {
		nextBaseDir = filepath.Dir(resolved)
	}

	positional := l.parser.PositionalRef()
	if relativeToFile {
		outer := positional
		positional = func(v string) error {
			if !filepath.IsAbs(v) {
				v = filepath.Join(nextBaseDir, v)
			}
			return outer(v)
		}
	}

	childParser := cliparse.New(l.parser.SchemaRef(), positional)
	for _, r := range l.parser.IgnoreRulesRef() {
		childParser.AddIgnoreRule(r)
	}
	for _, r := range l.parser.RenameRulesRef() {
		childParser.AddRenameRule(r)
	}

	l.installNestedCallbacks(childParser, nextBaseDir, depth)

	childParser.Parse(content, cliparse.Options{
		ExpandEnvVars:     true,
		IgnoreProgramName: false,
		SupportComments:   true,
		IgnoreDuplicates:  true,
	}, l.bindings)

	for _, err := range childParser.Errors() {
		l.parser.AddError(err)
	}
	return nil
}

// installNestedCallbacks rebinds the schema's -f/-F callback entries on
// childParser's schema so that further nesting recurses through this same
// Loader with the right base directory and depth, instead of the
// top-level callbacks captured at schema-construction time.
func (l *Loader) installNestedCallbacks(childParser *cliparse.Parser, baseDir string, depth int) {
	childParser.RebindCallback("command-file", func(value string) error {
		return l.load(value, baseDir, false, depth+1)
	})
	childParser.RebindCallback("command-file-relative", func(value string) error {
		return l.load(value, baseDir, true, depth+1)
	})
}
