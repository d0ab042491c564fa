// Package sourceloader expands file patterns and library-file
// registrations into loaded source buffers, then drives parallel
// parsing across them. Pattern expansion uses github.com/karrick/godirwalk
// for the recursive directory scan (mirroring bazelbuild-reclient's use of
// it for fast filesystem enumeration ahead of a build); parallel parsing
// uses golang.org/x/sync/errgroup, mirroring the teacher driver's
// per-goroutine-index-write, no-mutex parallel parse shape.
package sourceloader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"golang.org/x/sync/errgroup"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/preprocess"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/syntax"
)

// LibraryFile is a source file registered under a named library: its
// modules are not auto-instantiated as compilation roots.
type LibraryFile struct {
	Library string
	Path    string
}

// Loader expands file patterns and library registrations into loaded
// source buffers, then optionally parses them (in parallel).
type Loader struct {
	mgr *sourcemgr.Manager

	patterns     []string
	libraryFiles []LibraryFile
	searchDirs   []string
	searchExts   []string
	excludeExts  map[string]bool

	onError func(error)
}

// New returns a Loader backed by mgr. onError, if non-nil, receives every
// load/expansion error as it happens; it may be called concurrently once
// LoadAndParseSources fans out.
func New(mgr *sourcemgr.Manager, onError func(error)) *Loader {
	return &Loader{mgr: mgr, excludeExts: make(map[string]bool), onError: onError}
}

// AddFiles records a glob-style pattern or explicit path. Expansion is
// deferred to LoadSources/LoadAndParseSources.
func (l *Loader) AddFiles(pattern string) {
	l.patterns = append(l.patterns, pattern)
}

// AddLibraryFiles expands pattern immediately and registers every match
// under libName. Library files are independent compilation units; their
// modules are never auto-instantiated as compilation roots.
func (l *Loader) AddLibraryFiles(libName, pattern string) {
	matches, err := expandPattern(pattern)
	if err != nil {
		l.fail(fmt.Errorf("expanding library pattern %q: %w", pattern, err))
		return
	}
	for _, m := range matches {
		l.libraryFiles = append(l.libraryFiles, LibraryFile{Library: libName, Path: m})
	}
}

// AddSearchDirectories registers directories used to locate missing
// modules by name.
func (l *Loader) AddSearchDirectories(dirs []string) {
	l.searchDirs = append(l.searchDirs, dirs...)
}

// AddSearchExtensions registers extensions tried when locating missing
// modules by name.
func (l *Loader) AddSearchExtensions(exts []string) {
	l.searchExts = append(l.searchExts, exts...)
}

// SetExcludeExtensions marks extensions to drop from positional file
// matches. Per the documented asymmetry, this does NOT apply to library
// files registered via AddLibraryFiles.
func (l *Loader) SetExcludeExtensions(exts []string) {
	for _, e := range exts {
		l.excludeExts[normalizeExt(e)] = true
	}
}

// HasFiles reports whether any pattern or library file has been
// registered.
func (l *Loader) HasFiles() bool {
	return len(l.patterns) > 0 || len(l.libraryFiles) > 0
}

func (l *Loader) fail(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

// resolvedFile is one file to load: its path and, for library files, the
// library name it belongs to.
type resolvedFile struct {
	path    string
	library string // "" for positional files
}

// resolveAll expands every registered pattern/library into a
// deterministic, input-order list of files.
func (l *Loader) resolveAll() []resolvedFile {
	var out []resolvedFile
	for _, pattern := range l.patterns {
		matches, err := expandPattern(pattern)
		if err != nil {
			l.fail(fmt.Errorf("expanding pattern %q: %w", pattern, err))
			continue
		}
		for _, m := range matches {
			if l.excludeExts[normalizeExt(filepath.Ext(m))] {
				continue
			}
			out = append(out, resolvedFile{path: m})
		}
	}
	for _, lf := range l.libraryFiles {
		out = append(out, resolvedFile{path: lf.Path, library: lf.Library})
	}
	return out
}

// ResolvedPaths returns every registered file's path, in the same
// deterministic input-pattern order LoadSources/LoadAndParseSources use,
// without touching the FileSet. Driver modes that build their own
// preprocessor (preprocess-only, report-macros) load through this instead
// of LoadSources, since LoadSources's zero-FileID failure sentinel is
// indistinguishable from a legitimately-first-loaded file.
func (l *Loader) ResolvedPaths() []string {
	files := l.resolveAll()
	paths := make([]string, len(files))
	for i, rf := range files {
		paths[i] = rf.path
	}
	return paths
}

// LoadSources loads every resolved file into the manager's FileSet,
// returning the resulting file IDs in resolution order. A load failure is
// reported via onError and its slot is left as the zero FileID.
func (l *Loader) LoadSources() []source.FileID {
	files := l.resolveAll()
	ids := make([]source.FileID, len(files))
	for i, rf := range files {
		id, err := l.mgr.FileSet().Load(rf.path)
		if err != nil {
			l.fail(fmt.Errorf("loading %q: %w", rf.path, err))
			continue
		}
		ids[i] = id
	}
	return ids
}

// ParseResult is one file's preprocess+parse outcome.
type ParseResult struct {
	Path    string
	Library string
	Tree    *syntax.Tree
	Bag     *diag.Bag
}

// LoadAndParseSources loads, preprocesses, and parses every registered
// file. When numThreads > 1 files are processed concurrently, but the
// returned slice is always in input-pattern resolution order, matching
// §5's ordering guarantee: parallelism must not be observable in output
// order. Each file gets its own diagnostic Bag so a parse worker never
// writes into a shared sink; callers merge the returned Bags in order.
func (l *Loader) LoadAndParseSources(perFileMaxDiagnostics, numThreads int) []ParseResult {
	files := l.resolveAll()
	if len(files) == 0 {
		return nil
	}
	if numThreads <= 0 {
		numThreads = 1
	}

	results := make([]ParseResult, len(files))
	var g errgroup.Group
	g.SetLimit(min(numThreads, len(files)))

	for i := range files {
		g.Go(func() error {
			results[i] = l.parseOne(files[i], perFileMaxDiagnostics)
			return nil
		})
	}
	_ = g.Wait() // parseOne never returns an error; failures land in its Bag

	return results
}

func (l *Loader) parseOne(rf resolvedFile, maxDiagnostics int) ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	id, err := l.mgr.FileSet().Load(rf.path)
	if err != nil {
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, fmt.Sprintf("unable to find or open file %q: %v", rf.path, err)))
		return ParseResult{Path: rf.path, Library: rf.library, Bag: bag}
	}

	file := l.mgr.FileSet().Get(id)
	pp := preprocess.New(l.mgr, reporter, preprocess.Options{})
	pp.PushSource(file, filepath.Dir(file.Path))

	parser := syntax.New(pp, syntax.Options{Reporter: reporter})
	tree := parser.Parse(id)

	return ParseResult{Path: rf.path, Library: rf.library, Tree: tree, Bag: bag}
}

// expandPattern resolves a glob-style pattern (no "**" support) or
// explicit path into a sorted, deterministic list of matching files.
func expandPattern(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return []string{pattern}, nil
	}

	dir := filepath.Dir(pattern)
	var out []string
	err := godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			matched, err := filepath.Match(pattern, path)
			if err != nil {
				return err
			}
			if matched {
				out = append(out, path)
			}
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func normalizeExt(ext string) string {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
