package preprocess

import (
	"github.com/KennethDRoe/slang/internal/lexer"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// tokenSource is anything that can hand back a stream of tokens ending in
// an EOF-kind token. Both lexer.Lexer (a real file) and sliceSource (a
// macro expansion played back as tokens) satisfy it.
type tokenSource interface {
	Next() token.Token
	Unget(tok token.Token)
}

// sliceSource replays a fixed token slice, used for macro body expansion.
type sliceSource struct {
	toks []token.Token
	pos  int
	look *token.Token
}

func newSliceSource(toks []token.Token) *sliceSource {
	return &sliceSource{toks: toks}
}

func (s *sliceSource) Next() token.Token {
	if s.look != nil {
		t := *s.look
		s.look = nil
		return t
	}
	if s.pos >= len(s.toks) {
		return token.Token{Kind: token.EOF}
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func (s *sliceSource) Unget(tok token.Token) {
	s.look = &tok
}

// frame is one level of the preprocessor's source stack: either a real
// file being lexed or a macro expansion being replayed. fileID and dir
// are zero/empty for macro frames.
type frame struct {
	src    tokenSource
	fileID source.FileID
	dir    string
	isFile bool
}

func newFileFrame(f *source.File, lx *lexer.Lexer, dir string) *frame {
	return &frame{src: lx, fileID: f.ID, dir: dir, isFile: true}
}

func newMacroFrame(toks []token.Token) *frame {
	return &frame{src: newSliceSource(toks)}
}
