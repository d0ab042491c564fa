package token

import "github.com/KennethDRoe/slang/internal/source"

// TriviaKind classifies a span of non-semantic source text attached to a
// Token as leading trivia.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is a whitespace or comment run preceding a Token. It is carried
// along so that unparse/obfuscated-source reconstruction can reproduce the
// original formatting.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
