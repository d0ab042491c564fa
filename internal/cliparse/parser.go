// Package cliparse tokenizes a single joined argument string and binds
// values against an optschema.Schema: long/short/vendor forms, attached
// "=" values, vendor ignore/rename rules (applied before normal lookup),
// accumulation for list/set destinations, and a duplicate policy for
// scalars. It backs both process-argument parsing and command-file
// re-entry (internal/cmdfile).
package cliparse

import (
	"fmt"
	"os"
	"strings"

	"github.com/KennethDRoe/slang/internal/optschema"
)

// Options selects the parse-time behaviors enumerated in the spec.
type Options struct {
	ExpandEnvVars     bool
	IgnoreProgramName bool
	SupportComments   bool
	IgnoreDuplicates  bool
}

// PositionalFunc receives every token that resolves to neither a vendor
// rule nor a schema entry.
type PositionalFunc func(value string) error

// Parser tokenizes and binds a single argument string against a schema.
type Parser struct {
	schema      *optschema.Schema
	ignoreRules []IgnoreRule
	renameRules []RenameRule
	positional  PositionalFunc

	callbackOverrides map[string]optschema.Callback

	errs []error
}

// New constructs a Parser bound to schema. positional receives any token
// that isn't a recognized option.
func New(schema *optschema.Schema, positional PositionalFunc) *Parser {
	return &Parser{schema: schema, positional: positional}
}

// SchemaRef returns the schema this Parser resolves against, so a command
// file's nested Parser can share it without re-declaring options.
func (p *Parser) SchemaRef() *optschema.Schema {
	return p.schema
}

// PositionalRef returns the positional callback, so command-file re-entry
// can share it.
func (p *Parser) PositionalRef() PositionalFunc {
	return p.positional
}

// IgnoreRulesRef returns the registered vendor-ignore rules.
func (p *Parser) IgnoreRulesRef() []IgnoreRule {
	return p.ignoreRules
}

// RenameRulesRef returns the registered vendor-rename rules.
func (p *Parser) RenameRulesRef() []RenameRule {
	return p.renameRules
}

// AddError appends err to this Parser's error list, used by command-file
// re-entry to fold a nested parser's errors into the outer one (§4.2.6).
func (p *Parser) AddError(err error) {
	p.errs = append(p.errs, err)
}

// RebindCallback overrides the callback invoked for the DestCallback entry
// named long, without mutating the shared schema. Used by internal/cmdfile
// to make -f/-F recurse through its own Loader at the right nesting depth
// and resolution base directory.
func (p *Parser) RebindCallback(long string, cb optschema.Callback) {
	if p.callbackOverrides == nil {
		p.callbackOverrides = make(map[string]optschema.Callback)
	}
	p.callbackOverrides[long] = cb
}

// AddIgnoreRule registers a vendor-ignore rule.
func (p *Parser) AddIgnoreRule(r IgnoreRule) {
	p.ignoreRules = append(p.ignoreRules, r)
}

// AddRenameRule registers a vendor-rename rule.
func (p *Parser) AddRenameRule(r RenameRule) {
	p.renameRules = append(p.renameRules, r)
}

// Errors returns every error accumulated across all Parse calls on this
// Parser (re-entrant command files append to the same list, per §4.2.6).
func (p *Parser) Errors() []error {
	return p.errs
}

func (p *Parser) addErr(format string, args ...any) {
	p.errs = append(p.errs, fmt.Errorf(format, args...))
}

// Parse tokenizes argString and binds recognized options into bindings,
// applying opts. Multiple calls on the same Parser accumulate bindings and
// errors, matching the command-file re-entry model where a nested -f/-F
// file's options land in the same outer bag.
func (p *Parser) Parse(argString string, opts Options, bindings *Bindings) {
	tokens := tokenize(argString, opts.SupportComments)
	if opts.IgnoreProgramName && len(tokens) > 0 {
		tokens = tokens[1:]
	}
	if opts.ExpandEnvVars {
		for i, t := range tokens {
			tokens[i] = os.ExpandEnv(t)
		}
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok == "" {
			continue
		}

		if strings.HasPrefix(tok, "+") {
			if consumed, matched := p.tryIgnore(tok, tokens, i); matched {
				i += consumed
				continue
			}
			if renamed, matched := p.tryRename(tok); matched {
				tok = renamed
			}
		}

		entry, name, attached, hasAttached := p.resolve(tok)
		if entry == nil {
			if err := p.positional(tok); err != nil {
				p.addErr("%s: %v", tok, err)
			}
			continue
		}

		var value string
		if entry.TakesValue {
			if hasAttached {
				value = attached
			} else if i+1 < len(tokens) {
				i++
				value = tokens[i]
			} else {
				p.addErr("option %s requires a value", name)
				continue
			}
			if entry.IsFileName {
				value = os.ExpandEnv(value)
			}
		} else {
			value = "true"
		}

		p.bind(entry, name, value, opts, bindings)
	}
}

// tryIgnore checks tok against every registered ignore rule; on match it
// returns how many following tokens to additionally skip.
func (p *Parser) tryIgnore(tok string, tokens []string, i int) (consumed int, matched bool) {
	for _, rule := range p.ignoreRules {
		if matchIgnore(tok, rule) {
			n := rule.ArgCount
			if i+n >= len(tokens) {
				n = len(tokens) - i - 1
			}
			return n, true
		}
	}
	return 0, false
}

func (p *Parser) tryRename(tok string) (string, bool) {
	for _, rule := range p.renameRules {
		if renamed, ok := matchRename(tok, rule); ok {
			return renamed, true
		}
	}
	return "", false
}

// resolve looks tok up against the schema's long/short/vendor forms,
// splitting any attached "=value" suffix.
func (p *Parser) resolve(tok string) (entry *optschema.Entry, name string, attached string, hasAttached bool) {
	switch {
	case strings.HasPrefix(tok, "--"):
		body := tok[2:]
		body, attached, hasAttached = splitAttached(body, "=")
		e, ok := p.schema.LookupLong(body)
		if !ok {
			return nil, "", "", false
		}
		return e, "--" + body, attached, hasAttached

	case strings.HasPrefix(tok, "-") && len(tok) >= 2 && tok[1] != '-':
		c := tok[1]
		e, ok := p.schema.LookupShort(c)
		if !ok {
			return nil, "", "", false
		}
		rest := tok[2:]
		rest, attached, hasAttached = splitAttachedShort(rest)
		return e, "-" + string(c), attached, hasAttached

	case strings.HasPrefix(tok, "+"):
		body := tok[1:]
		body, attached, hasAttached = splitAttached(body, "+")
		e, ok := p.schema.LookupVendor(body)
		if !ok {
			return nil, "", "", false
		}
		return e, "+" + body, attached, hasAttached
	}
	return nil, "", "", false
}

// splitAttached splits "name=value"/"name+value" into name and value.
func splitAttached(body, sep string) (name, value string, hasValue bool) {
	if idx := strings.Index(body, sep); idx >= 0 {
		return body[:idx], body[idx+1:], true
	}
	return body, "", false
}

// splitAttachedShort treats "-Ifoo" (no separator) as an attached value,
// and "-I=foo" as an attached value via "=".
func splitAttachedShort(rest string) (empty, value string, hasValue bool) {
	rest = strings.TrimPrefix(rest, "=")
	if rest == "" {
		return "", "", false
	}
	return "", rest, true
}

func (p *Parser) bind(entry *optschema.Entry, name, value string, opts Options, bindings *Bindings) {
	switch entry.Dest {
	case optschema.DestScalar:
		if _, exists := bindings.Scalars[entry.Long]; exists {
			if opts.IgnoreDuplicates {
				return
			}
			p.addErr("option %s specified more than once", name)
			return
		}
		bindings.Scalars[entry.Long] = value

	case optschema.DestList:
		bindings.Lists[entry.Long] = append(bindings.Lists[entry.Long], value)

	case optschema.DestSet:
		if bindings.Sets[entry.Long] == nil {
			bindings.Sets[entry.Long] = make(map[string]bool)
		}
		bindings.Sets[entry.Long][value] = true

	case optschema.DestCallback:
		cb := entry.Callback
		if override, ok := p.callbackOverrides[entry.Long]; ok {
			cb = override
		}
		if cb == nil {
			return
		}
		if err := cb(value); err != nil {
			p.addErr("%s: %v", name, err)
		}
	}
}

// NewBindings returns an empty Bindings ready for Parse.
func NewBindings() *Bindings {
	return newBindings()
}
