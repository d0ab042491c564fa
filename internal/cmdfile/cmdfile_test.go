package cmdfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KennethDRoe/slang/internal/cliparse"
	"github.com/KennethDRoe/slang/internal/optschema"
)

func testSchema() *optschema.Schema {
	return optschema.New([]optschema.Entry{
		{Long: "single-unit", Dest: optschema.DestScalar, TakesValue: false},
		{Long: "include-directory", Short: 'I', Dest: optschema.DestList, IsFileName: true, TakesValue: true},
		{Long: "command-file", Short: 'f', Dest: optschema.DestCallback, IsFileName: true, TakesValue: true},
		{Long: "command-file-relative", Short: 'F', Dest: optschema.DestCallback, IsFileName: true, TakesValue: true},
	})
}

func TestLoadRelativeToInvocationResolvesAgainstInvocationDir(t *testing.T) {
	dir := t.TempDir()
	cmdPath := filepath.Join(dir, "cmd.f")
	if err := os.WriteFile(cmdPath, []byte("--single-unit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var positional []string
	p := cliparse.New(testSchema(), func(v string) error { positional = append(positional, v); return nil })
	b := cliparse.NewBindings()
	l := New(p, b, 0)

	if err := l.LoadRelativeToInvocation("cmd.f", dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := b.Scalar("single-unit"); !ok {
		t.Fatalf("expected --single-unit bound from command file")
	}
	if l.AnyLoadFailed() {
		t.Fatalf("did not expect a load failure")
	}
}

func TestLoadRelativeToFileKeepsOptionValuesRaw(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	// cmd.f lives in sub/ and passes "-I foo"; the option value is bound as
	// written, not joined with sub/.
	cmdPath := filepath.Join(sub, "cmd.f")
	if err := os.WriteFile(cmdPath, []byte("-I foo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := cliparse.New(testSchema(), func(string) error { return nil })
	b := cliparse.NewBindings()
	l := New(p, b, 0)

	if err := l.LoadRelativeToFile(filepath.Join("sub", "cmd.f"), root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := b.List("include-directory")
	if len(got) != 1 || got[0] != "foo" {
		t.Fatalf("expected raw include value 'foo' (resolution happens at validation), got %v", got)
	}
}

func TestLoadMissingFileReportsError(t *testing.T) {
	p := cliparse.New(testSchema(), func(string) error { return nil })
	b := cliparse.NewBindings()
	l := New(p, b, 0)

	err := l.LoadRelativeToInvocation("does-not-exist.f", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for missing command file")
	}
	if !l.AnyLoadFailed() {
		t.Fatalf("expected AnyLoadFailed to be true")
	}
}

func TestNestedCommandFileRecursesThroughLoader(t *testing.T) {
	root := t.TempDir()
	inner := filepath.Join(root, "inner.f")
	if err := os.WriteFile(inner, []byte("--single-unit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	outer := filepath.Join(root, "outer.f")
	if err := os.WriteFile(outer, []byte("-f inner.f\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := cliparse.New(testSchema(), func(string) error { return nil })
	b := cliparse.NewBindings()
	l := New(p, b, 0)
	l.InstallTopLevelCallbacks(root)

	p.Parse("-f outer.f", cliparse.Options{IgnoreProgramName: false}, b)
	if _, ok := b.Scalar("single-unit"); !ok {
		t.Fatalf("expected --single-unit bound via nested command file")
	}
}

func TestMaxIncludeDepthStopsSelfReferentialCycle(t *testing.T) {
	root := t.TempDir()
	cyclic := filepath.Join(root, "cyclic.f")
	if err := os.WriteFile(cyclic, []byte("-f cyclic.f\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := cliparse.New(testSchema(), func(string) error { return nil })
	b := cliparse.NewBindings()
	l := New(p, b, 3)
	l.InstallTopLevelCallbacks(root)

	p.Parse("-f cyclic.f", cliparse.Options{}, b)
	if !l.AnyLoadFailed() {
		t.Fatalf("expected cyclic command file inclusion to hit the depth limit")
	}
}
