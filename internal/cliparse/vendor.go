package cliparse

import "strings"

// IgnoreRule discards a vendor command and the fixed number of argument
// tokens that follow it. A rule named "xyz" also matches any "+xyz+..."
// form (a vendor command with an attached suffix), per the spec's vendor
// matching note.
type IgnoreRule struct {
	Name     string
	ArgCount int
}

// RenameRule rewrites a vendor command in place to a canonical option name
// before normal schema lookup resumes.
type RenameRule struct {
	From string // vendor name, without the leading "+"
	To   string // canonical long option name, without the leading "--"
}

// matchIgnore reports whether tok (a "+..." vendor token) matches rule.
func matchIgnore(tok string, rule IgnoreRule) bool {
	body := strings.TrimPrefix(tok, "+")
	if body == rule.Name {
		return true
	}
	return strings.HasPrefix(body, rule.Name+"+")
}

// matchRename reports whether tok (a "+..." vendor token) matches rule,
// returning the canonical "--to" replacement token plus any trailing
// "+value" suffix reattached.
func matchRename(tok string, rule RenameRule) (string, bool) {
	body := strings.TrimPrefix(tok, "+")
	if body == rule.From {
		return "--" + rule.To, true
	}
	if strings.HasPrefix(body, rule.From+"+") {
		suffix := strings.TrimPrefix(body, rule.From)
		return "--" + rule.To + suffix, true
	}
	return "", false
}
