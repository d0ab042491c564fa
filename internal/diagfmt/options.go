// Package diagfmt renders a diag.Bag for human consumption: a colored,
// source-context "pretty" form for terminals and a JSON form for tooling.
package diagfmt

// PathMode selects how a diagnostic's file path is displayed.
type PathMode uint8

const (
	// PathModeAuto shows short paths as-is, long absolute ones as a basename.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	Context   int8 // not read by Pretty, which shows only the primary span's line
	PathMode  PathMode
	Width     uint8 // longer messages are cut to Width bytes plus "...", 0 = unlimited
	ShowNotes bool
}

// JSONOpts configures FormatJSON.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // truncate to at most Max entries, 0 = unlimited
	IncludeNotes     bool
}
