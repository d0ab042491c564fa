// Package optschema declares the table of recognized command-line options
// consumed by internal/cliparse: their long/short/vendor forms, how parsed
// values are bound (scalar, list, set, or a callback), whether the value is
// a file name (enabling env-var expansion), and their help text.
package optschema

// Dest identifies how a parsed option value is bound.
type Dest int

const (
	// DestScalar holds at most one value; a second occurrence is either an
	// error or silently discarded, per the parser's ignore-duplicates policy.
	DestScalar Dest = iota
	// DestList accumulates every occurrence, preserving order.
	DestList
	// DestSet accumulates every occurrence, deduplicated, order not
	// significant to callers.
	DestSet
	// DestCallback invokes a caller-supplied function with the raw value
	// string instead of storing it — used for -f/-F command-file loading.
	DestCallback
)

// Callback is invoked for a DestCallback entry with the bound value (the
// empty string for a boolean-style flag with no argument).
type Callback func(value string) error

// Entry is one recognized option: its names, how its value is bound, and
// its help text.
type Entry struct {
	// Long is the canonical long form, e.g. "include-directory" (without
	// the leading "--").
	Long string
	// Short is an optional single-character short form, e.g. 'I' (without
	// the leading "-"). Zero means no short form.
	Short byte
	// Vendor is an optional vendor form, e.g. "incdir" (without the
	// leading "+"; a trailing "+value" is accepted for any vendor form).
	Vendor string
	// Dest selects how the bound value is stored.
	Dest Dest
	// IsFileName enables environment-variable expansion ($NAME, ${NAME})
	// on the bound value; canonicalization is deferred to validation.
	IsFileName bool
	// TakesValue is false for boolean flags (e.g. --lint-only): presence
	// alone sets the value to "true" with no following token consumed.
	TakesValue bool
	// Callback is invoked when Dest == DestCallback.
	Callback Callback
	// Placeholder names the value in help text, e.g. "PATH" or "NAME=VALUE".
	Placeholder string
	// Help is a one-line description.
	Help string
}

// Schema is the immutable, ordered table of recognized options.
type Schema struct {
	entries  []Entry
	byLong   map[string]*Entry
	byShort  map[byte]*Entry
	byVendor map[string]*Entry
}

// New builds a Schema from entries. Panics on a duplicate long/short/vendor
// form — that is a programming error in the table, not a user input error.
func New(entries []Entry) *Schema {
	s := &Schema{
		entries:  entries,
		byLong:   make(map[string]*Entry, len(entries)),
		byShort:  make(map[byte]*Entry, len(entries)),
		byVendor: make(map[string]*Entry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		if e.Long != "" {
			if _, dup := s.byLong[e.Long]; dup {
				panic("optschema: duplicate long form --" + e.Long)
			}
			s.byLong[e.Long] = e
		}
		if e.Short != 0 {
			if _, dup := s.byShort[e.Short]; dup {
				panic("optschema: duplicate short form -" + string(e.Short))
			}
			s.byShort[e.Short] = e
		}
		if e.Vendor != "" {
			if _, dup := s.byVendor[e.Vendor]; dup {
				panic("optschema: duplicate vendor form +" + e.Vendor)
			}
			s.byVendor[e.Vendor] = e
		}
	}
	return s
}

// Entries returns the schema in declaration order, for help-text rendering.
func (s *Schema) Entries() []Entry {
	return s.entries
}

// LookupLong resolves a "--name" token (name without the dashes).
func (s *Schema) LookupLong(name string) (*Entry, bool) {
	e, ok := s.byLong[name]
	return e, ok
}

// LookupShort resolves a "-n" token (n without the dash).
func (s *Schema) LookupShort(c byte) (*Entry, bool) {
	e, ok := s.byShort[c]
	return e, ok
}

// LookupVendor resolves a "+name" token (name without the leading plus,
// and without any trailing "+value" segment already stripped by the caller).
func (s *Schema) LookupVendor(name string) (*Entry, bool) {
	e, ok := s.byVendor[name]
	return e, ok
}
