package preprocess

import (
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

// MacroDef is a single `define entry. Params is nil for an object-like
// macro and non-nil (possibly empty) for a function-like one.
type MacroDef struct {
	Name      string
	Params    []string
	Body      []token.Token
	DefinedAt source.Span
}

// IsFunctionLike reports whether the macro takes an argument list.
func (m *MacroDef) IsFunctionLike() bool { return m.Params != nil }

// MacroTable holds every currently-active macro definition.
type MacroTable struct {
	macros map[string]*MacroDef
	order  []string
}

// NewMacroTable returns an empty table.
func NewMacroTable() *MacroTable {
	return &MacroTable{macros: make(map[string]*MacroDef)}
}

// Define installs def, overwriting any prior definition with the same name.
func (t *MacroTable) Define(def *MacroDef) {
	if _, exists := t.macros[def.Name]; !exists {
		t.order = append(t.order, def.Name)
	}
	t.macros[def.Name] = def
}

// Undef removes a macro by name. A no-op if it was never defined.
func (t *MacroTable) Undef(name string) {
	delete(t.macros, name)
}

// UndefAll removes every macro (`undefineall).
func (t *MacroTable) UndefAll() {
	t.macros = make(map[string]*MacroDef)
	t.order = nil
}

// Lookup returns the macro named name, if defined.
func (t *MacroTable) Lookup(name string) (*MacroDef, bool) {
	m, ok := t.macros[name]
	return m, ok
}

// Defined returns every macro in definition order, for `reportMacros.
func (t *MacroTable) Defined() []*MacroDef {
	out := make([]*MacroDef, 0, len(t.order))
	for _, name := range t.order {
		if m, ok := t.macros[name]; ok {
			out = append(out, m)
		}
	}
	return out
}

// bodyTokensForArgs substitutes each parameter occurrence in m.Body with
// the corresponding argument's token list, returning the expanded body. A
// body identifier that does not name a parameter passes through unchanged.
func (m *MacroDef) bodyTokensForArgs(args [][]token.Token) []token.Token {
	if !m.IsFunctionLike() {
		out := make([]token.Token, len(m.Body))
		copy(out, m.Body)
		return out
	}
	paramIndex := make(map[string]int, len(m.Params))
	for i, p := range m.Params {
		paramIndex[p] = i
	}
	var out []token.Token
	for _, tok := range m.Body {
		if tok.Kind == token.Ident {
			if idx, ok := paramIndex[tok.Text]; ok && idx < len(args) {
				out = append(out, args[idx]...)
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
