// Package obfuscate renames identifier tokens to a fixed-length
// alphanumeric string, consistent within a run, for the driver's
// --obfuscate preprocessor mode.
package obfuscate

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"

	"github.com/KennethDRoe/slang/internal/token"
)

const (
	alphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	nameWidth = 16
)

// Mapper assigns each distinct identifier name a random replacement the
// first time it's seen, then returns that same replacement on every later
// lookup.
type Mapper struct {
	rng   *mrand.Rand
	table map[string]string
}

// NewFixedSeed returns a Mapper seeded deterministically: repeated runs
// over identical input produce byte-identical obfuscated output, useful
// for diffing preprocessor output across driver invocations.
func NewFixedSeed() *Mapper {
	return newMapper(mrand.New(mrand.NewSource(1))) //nolint:gosec // deterministic obfuscation seed, not security-sensitive
}

// NewRandomSeed returns a Mapper seeded from crypto/rand, so repeated runs
// produce different obfuscated names.
func NewRandomSeed() *Mapper {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return NewFixedSeed()
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]))
	return newMapper(mrand.New(mrand.NewSource(seed))) //nolint:gosec // seed itself came from crypto/rand
}

func newMapper(rng *mrand.Rand) *Mapper {
	return &Mapper{rng: rng, table: make(map[string]string)}
}

// Translate returns name's obfuscated replacement, generating and caching
// one the first time name is seen.
func (m *Mapper) Translate(name string) string {
	if existing, ok := m.table[name]; ok {
		return existing
	}
	replacement := m.generate()
	m.table[name] = replacement
	return replacement
}

// Table returns the accumulated name -> replacement mapping, for
// diagnostics or debugging output.
func (m *Mapper) Table() map[string]string {
	return m.table
}

func (m *Mapper) generate() string {
	out := make([]byte, nameWidth)
	for i := range out {
		out[i] = alphabet[m.rng.Intn(len(alphabet))]
	}
	return string(out)
}

// TokenSource is the minimal token stream obfuscate.Stream wraps; both
// *preprocess.Preprocessor and *lexer.Lexer satisfy it.
type TokenSource interface {
	Next() token.Token
}

// Stream wraps src and rewrites every Ident token's text through mapper.
// SysIdent ($foo), Directive, MacroUsage, and literal tokens pass through
// untouched. A Number token immediately following an IntegerBase token is
// a vector literal's digit run (e.g. the "FF" in 8'hFF) — it is already
// lexed as Number, never Ident, so it is never a candidate for
// obfuscation in the first place and needs no special-case here.
type Stream struct {
	src    TokenSource
	mapper *Mapper
}

// NewStream returns a Stream that rewrites identifiers from src through
// mapper. A nil mapper makes Stream a transparent passthrough.
func NewStream(src TokenSource, mapper *Mapper) *Stream {
	return &Stream{src: src, mapper: mapper}
}

// Next returns the next token, with Ident token text translated.
func (s *Stream) Next() token.Token {
	tok := s.src.Next()
	if s.mapper == nil || tok.Kind != token.Ident {
		return tok
	}
	return tok.WithText(s.mapper.Translate(tok.Text))
}
