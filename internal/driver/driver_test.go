package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KennethDRoe/slang/internal/diagengine"
	"github.com/KennethDRoe/slang/internal/optbag"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/sourceloader"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func newTestContext(t *testing.T) (*Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	fs := source.NewFileSet()
	mgr := sourcemgr.New(fs)
	engine := diagengine.New(nil, fs)
	engine.SetDefaultWarnings()
	engine.ApplyMandatoryOverrides()
	var out, errOut bytes.Buffer
	ctx := &Context{
		Bag:    &optbag.Bag{},
		Mgr:    mgr,
		Loader: sourceloader.New(mgr, nil),
		Engine: engine,
		Streams: Streams{
			Out: &out,
			Err: &errOut,
		},
	}
	return ctx, &out, &errOut
}

func TestRunPreprocessorEmitsTokenStream(t *testing.T) {
	path := writeTempFile(t, "m.v", "module m; endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(path)

	ok := RunPreprocessor(ctx, PreprocessOptions{IncludeComments: true})
	if !ok {
		t.Fatalf("expected preprocess mode to succeed")
	}
	if !strings.Contains(out.String(), "module") || !strings.Contains(out.String(), "endmodule") {
		t.Fatalf("expected output to contain original tokens, got %q", out.String())
	}
}

func TestRunPreprocessorFailsOnMissingFile(t *testing.T) {
	ctx, out, errOut := newTestContext(t)
	ctx.Loader.AddFiles(filepath.Join(t.TempDir(), "does-not-exist.v"))

	ok := RunPreprocessor(ctx, PreprocessOptions{})
	if ok {
		t.Fatalf("expected preprocess mode to fail for a missing file")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output emitted on failure, got %q", out.String())
	}
	if errOut.Len() == 0 {
		t.Fatalf("expected a diagnostic report on stderr")
	}
}

func TestRunPreprocessorDropsCommentsWhenExcluded(t *testing.T) {
	path := writeTempFile(t, "m.v", "module /* hello */ m; endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(path)

	ok := RunPreprocessor(ctx, PreprocessOptions{IncludeComments: false})
	if !ok {
		t.Fatalf("expected preprocess mode to succeed")
	}
	if strings.Contains(out.String(), "hello") {
		t.Fatalf("expected block comment to be dropped, got %q", out.String())
	}
}

func TestRunReportMacrosObjectLike(t *testing.T) {
	path := writeTempFile(t, "m.v", "`define WIDTH 8\nmodule m; endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(path)

	ok := RunReportMacros(ctx)
	if !ok {
		t.Fatalf("expected report-macros mode to succeed")
	}
	if !strings.Contains(out.String(), "WIDTH") || !strings.Contains(out.String(), "8") {
		t.Fatalf("expected macro name and body in output, got %q", out.String())
	}
}

func TestRunReportMacrosFunctionLike(t *testing.T) {
	path := writeTempFile(t, "m.v", "`define ADD(a, b) (a + b)\nmodule m; endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(path)

	ok := RunReportMacros(ctx)
	if !ok {
		t.Fatalf("expected report-macros mode to succeed")
	}
	if !strings.Contains(out.String(), "ADD(a, b)") {
		t.Fatalf("expected rendered formal-argument list, got %q", out.String())
	}
}

func TestRunParseAndCompileReportsTopInstanceAndSucceeds(t *testing.T) {
	topPath := writeTempFile(t, "top.v", "module top; sub s(); endmodule")
	subPath := writeTempFile(t, "sub.v", "module sub; endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(topPath)
	ctx.Loader.AddFiles(subPath)

	ok := RunParseAndCompile(ctx, 100)
	if !ok {
		t.Fatalf("expected parse-and-compile mode to succeed, output: %q", out.String())
	}
	if !strings.Contains(out.String(), "top") {
		t.Fatalf("expected top instance 'top' listed, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Build succeeded") {
		t.Fatalf("expected build summary, got %q", out.String())
	}
}

func TestRunParseAndCompileUnknownModuleCanBePromotedToError(t *testing.T) {
	path := writeTempFile(t, "top.v", "module top; missing_mod s(); endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(path)
	ctx.Engine.SetWarningOptions([]string{"error=unknown-module"})

	ok := RunParseAndCompile(ctx, 100)
	if ok {
		t.Fatalf("expected parse-and-compile mode to fail once unknown-module is promoted to error")
	}
	if !strings.Contains(out.String(), "Build failed") {
		t.Fatalf("expected build failed summary, got %q", out.String())
	}
}

func TestRunParseAndCompileQuietSuppressesTopInstanceList(t *testing.T) {
	path := writeTempFile(t, "top.v", "module top; endmodule")
	ctx, out, _ := newTestContext(t)
	ctx.Loader.AddFiles(path)
	ctx.Quiet = true

	ok := RunParseAndCompile(ctx, 100)
	if !ok {
		t.Fatalf("expected success")
	}
	if strings.Contains(out.String(), "top\n") {
		t.Fatalf("expected top instance list suppressed in quiet mode, got %q", out.String())
	}
}
