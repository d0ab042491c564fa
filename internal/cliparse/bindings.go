package cliparse

// Bindings holds every value bound to a schema entry during one parse,
// keyed by the entry's canonical long name. Scalars/lists/sets are kept
// separately since a caller needs to know which accumulation rule applied.
type Bindings struct {
	Scalars    map[string]string
	Lists      map[string][]string
	Sets       map[string]map[string]bool
	Positional []string
}

func newBindings() *Bindings {
	return &Bindings{
		Scalars: make(map[string]string),
		Lists:   make(map[string][]string),
		Sets:    make(map[string]map[string]bool),
	}
}

// Scalar returns the bound value for long and whether it was set at all.
func (b *Bindings) Scalar(long string) (string, bool) {
	v, ok := b.Scalars[long]
	return v, ok
}

// List returns the accumulated values for long, in occurrence order.
func (b *Bindings) List(long string) []string {
	return b.Lists[long]
}

// SetValues returns the accumulated, deduplicated values for long.
func (b *Bindings) SetValues(long string) []string {
	m := b.Sets[long]
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Has reports whether long was bound at all (any Dest kind).
func (b *Bindings) Has(long string) bool {
	if _, ok := b.Scalars[long]; ok {
		return true
	}
	if _, ok := b.Lists[long]; ok {
		return true
	}
	if _, ok := b.Sets[long]; ok {
		return true
	}
	return false
}
