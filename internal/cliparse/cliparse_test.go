package cliparse

import (
	"os"
	"testing"

	"github.com/KennethDRoe/slang/internal/optschema"
)

func testSchema() *optschema.Schema {
	return optschema.New([]optschema.Entry{
		{Long: "include-directory", Short: 'I', Vendor: "incdir", Dest: optschema.DestList, IsFileName: true, TakesValue: true},
		{Long: "define-macro", Short: 'D', Vendor: "define", Dest: optschema.DestList, TakesValue: true},
		{Long: "single-unit", Dest: optschema.DestScalar, TakesValue: false},
		{Long: "exclude-ext", Dest: optschema.DestSet, TakesValue: true},
	})
}

func TestTokenizeHonorsQuotingAndEscapes(t *testing.T) {
	toks := tokenize(`foo "bar baz" 'qux quux' esc\ aped`, false)
	want := []string{"foo", "bar baz", "qux quux", "esc aped"}
	if len(toks) != len(want) {
		t.Fatalf("got %v, want %v", toks, want)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %q, want %q", i, toks[i], want[i])
		}
	}
}

func TestTokenizeStripsCommentsWhenSupported(t *testing.T) {
	toks := tokenize("foo # this is a comment\nbar /* block */ baz", true)
	want := []string{"foo", "bar", "baz"}
	if len(toks) != len(want) {
		t.Fatalf("got %v, want %v", toks, want)
	}
}

func TestParseBindsLongShortAndVendorForms(t *testing.T) {
	var positional []string
	p := New(testSchema(), func(v string) error { positional = append(positional, v); return nil })
	b := NewBindings()
	p.Parse("-I foo --include-directory=bar +incdir+baz src.v", Options{}, b)

	got := b.List("include-directory")
	want := []string{"foo", "bar", "baz"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
	if len(positional) != 1 || positional[0] != "src.v" {
		t.Fatalf("expected src.v positional, got %v", positional)
	}
}

func TestParseDuplicateScalarErrorsUnlessIgnored(t *testing.T) {
	p := New(testSchema(), func(string) error { return nil })
	b := NewBindings()
	p.Parse("--single-unit --single-unit", Options{}, b)
	if len(p.Errors()) == 0 {
		t.Fatalf("expected duplicate scalar error")
	}

	p2 := New(testSchema(), func(string) error { return nil })
	b2 := NewBindings()
	p2.Parse("--single-unit --single-unit", Options{IgnoreDuplicates: true}, b2)
	if len(p2.Errors()) != 0 {
		t.Fatalf("expected no errors with IgnoreDuplicates, got %v", p2.Errors())
	}
}

func TestParseExpandsEnvVarsForFileNameOptions(t *testing.T) {
	os.Setenv("CLIPARSE_TEST_DIR", "/srcroot")
	defer os.Unsetenv("CLIPARSE_TEST_DIR")

	p := New(testSchema(), func(string) error { return nil })
	b := NewBindings()
	p.Parse(`-I ${CLIPARSE_TEST_DIR}/inc`, Options{}, b)

	got := b.List("include-directory")
	if len(got) != 1 || got[0] != "/srcroot/inc" {
		t.Fatalf("expected expanded path, got %v", got)
	}
}

func TestParseVendorIgnoreRuleConsumesArguments(t *testing.T) {
	p := New(testSchema(), func(v string) error { t.Fatalf("unexpected positional %q", v); return nil })
	p.AddIgnoreRule(IgnoreRule{Name: "mode", ArgCount: 1})
	b := NewBindings()
	p.Parse("+mode value --single-unit", Options{}, b)
	if _, ok := b.Scalar("single-unit"); !ok {
		t.Fatalf("expected --single-unit to still bind after ignored vendor command")
	}
}

func TestParseVendorRenameRuleRewritesToCanonical(t *testing.T) {
	p := New(testSchema(), func(string) error { return nil })
	p.AddRenameRule(RenameRule{From: "su", To: "single-unit"})
	b := NewBindings()
	p.Parse("+su", Options{}, b)
	if _, ok := b.Scalar("single-unit"); !ok {
		t.Fatalf("expected +su to rename to --single-unit")
	}
}

func TestParseSetDestDeduplicates(t *testing.T) {
	p := New(testSchema(), func(string) error { return nil })
	b := NewBindings()
	p.Parse("--exclude-ext .bak --exclude-ext .bak --exclude-ext .tmp", Options{}, b)
	got := b.SetValues("exclude-ext")
	if len(got) != 2 {
		t.Fatalf("expected 2 deduplicated extensions, got %v", got)
	}
}

func TestParseIgnoreProgramName(t *testing.T) {
	p := New(testSchema(), func(string) error { return nil })
	b := NewBindings()
	p.Parse("slang --single-unit", Options{IgnoreProgramName: true}, b)
	if _, ok := b.Scalar("single-unit"); !ok {
		t.Fatalf("expected --single-unit to bind after skipping program name")
	}
}
