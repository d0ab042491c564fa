package lexer

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	lx := New(fs.Get(id), Options{})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexIdentAndKeywordsAreIdent(t *testing.T) {
	toks := lexAll(t, "module top endmodule")
	for _, k := range kinds(toks)[:3] {
		if k != token.Ident {
			t.Fatalf("expected Ident, got %v", k)
		}
	}
}

func TestLexSystemIdentifier(t *testing.T) {
	toks := lexAll(t, "$display")
	if toks[0].Kind != token.SysIdent || toks[0].Text != "$display" {
		t.Fatalf("unexpected token: %+v", toks[0])
	}
}

func TestLexBasedLiteralHexDigits(t *testing.T) {
	toks := lexAll(t, "8'hFF")
	if len(toks) < 3 {
		t.Fatalf("expected at least 3 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != token.Number || toks[0].Text != "8" {
		t.Fatalf("expected size literal '8', got %+v", toks[0])
	}
	if toks[1].Kind != token.IntegerBase || toks[1].Text != "'h" {
		t.Fatalf("expected IntegerBase \"'h\", got %+v", toks[1])
	}
	if toks[2].Kind != token.Number || toks[2].Text != "FF" {
		t.Fatalf("expected digit run 'FF' tagged Number, got %+v", toks[2])
	}
}

func TestLexDirectiveVsMacroUsage(t *testing.T) {
	toks := lexAll(t, "`define WIDTH 8\n`WIDTH")
	if toks[0].Kind != token.Directive || toks[0].Text != "`define" {
		t.Fatalf("expected Directive `define, got %+v", toks[0])
	}
	last := toks[len(toks)-2]
	if last.Kind != token.MacroUsage || last.Text != "`WIDTH" {
		t.Fatalf("expected MacroUsage `WIDTH, got %+v", last)
	}
}

func TestLexUnterminatedStringReports(t *testing.T) {
	var got []string
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(`"unterminated`))
	lx := New(fs.Get(id), Options{Reporter: reporterFunc(func(kind string, _ source.Span, msg string) {
		got = append(got, kind+":"+msg)
	})})
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %v", tok.Kind)
	}
	if len(got) != 1 || got[0] != "unterminated-string:unterminated string literal" {
		t.Fatalf("unexpected reports: %v", got)
	}
}

type reporterFunc func(kind string, span source.Span, msg string)

func (f reporterFunc) Report(kind string, span source.Span, msg string) { f(kind, span, msg) }
