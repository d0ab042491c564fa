package preprocess

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/sourcemgr"
	"github.com/KennethDRoe/slang/internal/token"
)

func collectAll(p *Preprocessor) []token.Token {
	var out []token.Token
	for {
		tok := p.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func texts(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func newTestPreprocessor(src string) (*Preprocessor, *source.File) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	mgr := sourcemgr.New(fs)
	p := New(mgr, nil, Options{})
	f := fs.Get(id)
	p.PushSource(f, "")
	return p, f
}

func TestObjectLikeMacroExpansion(t *testing.T) {
	p, _ := newTestPreprocessor("`define WIDTH 8\nwire [`WIDTH-1:0] bus;\n")
	got := texts(collectAll(p))
	want := []string{"wire", "[", "8", "-", "1", ":", "0", "]", "bus", ";"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestFunctionLikeMacroExpansion(t *testing.T) {
	p, _ := newTestPreprocessor("`define MAX(a,b) ((a) > (b) ? (a) : (b))\nx = `MAX(1,2);\n")
	got := texts(collectAll(p))
	want := []string{"x", "=", "(", "(", "1", ")", ">", "(", "2", ")", "?", "(", "1", ")", ":", "(", "2", ")", ")", ";"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %q want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestIfdefSkipsInactiveBranch(t *testing.T) {
	p, _ := newTestPreprocessor("`ifdef FOO\nkeep_a;\n`else\nkeep_b;\n`endif\n")
	got := texts(collectAll(p))
	want := []string{"keep_b", ";"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIfdefTakesDefinedBranch(t *testing.T) {
	p, _ := newTestPreprocessor("`define FOO\n`ifdef FOO\nkeep_a;\n`else\nkeep_b;\n`endif\n")
	got := texts(collectAll(p))
	want := []string{"keep_a", ";"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestElsifChain(t *testing.T) {
	src := "`define B\n`ifdef A\nfirst;\n`elsif B\nsecond;\n`elsif C\nthird;\n`else\nlast;\n`endif\n"
	p, _ := newTestPreprocessor(src)
	got := texts(collectAll(p))
	if len(got) != 2 || got[0] != "second" || got[1] != ";" {
		t.Fatalf("got %v, want [second ;]", got)
	}
}

func TestVectorLiteralDigitsSurviveMacroPass(t *testing.T) {
	p, _ := newTestPreprocessor("logic [7:0] v = 8'hFF;\n")
	got := texts(collectAll(p))
	found := false
	for i, tx := range got {
		if tx == "'h" && i+1 < len(got) && got[i+1] == "FF" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'h then FF as a single vector-digit token, got %v", got)
	}
}

func TestUndefRemovesMacro(t *testing.T) {
	p, _ := newTestPreprocessor("`define FOO 1\n`undef FOO\n`ifdef FOO\nyes;\n`else\nno;\n`endif\n")
	got := texts(collectAll(p))
	if len(got) != 2 || got[0] != "no" {
		t.Fatalf("got %v, want [no ;]", got)
	}
}

func TestIncludeNotFoundDoesNotPanic(t *testing.T) {
	fs := source.NewFileSet()
	mainID := fs.AddVirtual("main.sv", []byte("`include \"missing.svh\"\nafter;\n"))

	mgr := sourcemgr.New(fs)
	p := New(mgr, nil, Options{})
	p.PushSource(fs.Get(mainID), "")

	got := texts(collectAll(p))
	if len(got) != 2 || got[0] != "after" {
		t.Fatalf("got %v, want [after ;] (include resolution itself is covered by sourcemgr's tests)", got)
	}
}
