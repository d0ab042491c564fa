package obfuscate

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/token"
)

func TestMapperIsConsistentWithinARun(t *testing.T) {
	m := NewFixedSeed()
	first := m.Translate("counter")
	second := m.Translate("counter")
	if first != second {
		t.Fatalf("same name mapped to two different replacements: %q vs %q", first, second)
	}
	if len(first) != nameWidth {
		t.Fatalf("replacement length = %d, want %d", len(first), nameWidth)
	}
}

func TestMapperDistinctNamesGetDistinctReplacements(t *testing.T) {
	m := NewFixedSeed()
	a := m.Translate("alpha")
	b := m.Translate("beta")
	if a == b {
		t.Fatalf("distinct names collided: both mapped to %q", a)
	}
}

type sliceSource struct {
	toks []token.Token
	pos  int
}

func (s *sliceSource) Next() token.Token {
	if s.pos >= len(s.toks) {
		return token.Token{Kind: token.EOF}
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func TestStreamOnlyRewritesIdentTokens(t *testing.T) {
	src := &sliceSource{toks: []token.Token{
		{Kind: token.Ident, Text: "clk"},
		{Kind: token.IntegerBase, Text: "'h"},
		{Kind: token.Number, Text: "FF"},
		{Kind: token.Punct, Text: ";"},
	}}
	stream := NewStream(src, NewFixedSeed())

	tok := stream.Next()
	if tok.Text == "clk" {
		t.Fatalf("identifier was not obfuscated")
	}

	tok = stream.Next()
	if tok.Text != "'h" {
		t.Fatalf("IntegerBase token was rewritten: got %q", tok.Text)
	}

	tok = stream.Next()
	if tok.Text != "FF" {
		t.Fatalf("vector digit run was rewritten: got %q", tok.Text)
	}

	tok = stream.Next()
	if tok.Text != ";" {
		t.Fatalf("punctuation was rewritten: got %q", tok.Text)
	}
}

func TestStreamNilMapperIsPassthrough(t *testing.T) {
	src := &sliceSource{toks: []token.Token{{Kind: token.Ident, Text: "clk"}}}
	stream := NewStream(src, nil)
	tok := stream.Next()
	if tok.Text != "clk" {
		t.Fatalf("nil mapper should pass through unchanged, got %q", tok.Text)
	}
}
