package diagfmt

import (
	"encoding/json"
	"io"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
)

type jsonNote struct {
	Path    string `json:"path,omitempty"`
	Line    uint32 `json:"line,omitempty"`
	Column  uint32 `json:"column,omitempty"`
	Message string `json:"message"`
}

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Path     string     `json:"path,omitempty"`
	Line     uint32     `json:"line,omitempty"`
	Column   uint32     `json:"column,omitempty"`
	Message  string     `json:"message"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// FormatJSON writes bag's diagnostics to w as a JSON array, honoring opts.Max
// as a truncation limit (0 = unlimited).
func FormatJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: severityName(d.Severity),
			Code:     d.Code.ID(),
			Message:  d.Message,
		}
		if opts.IncludePositions {
			jd.Path, jd.Line, jd.Column = jsonLocation(fs, d.Primary, opts.PathMode)
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jn := jsonNote{Message: n.Msg}
				if opts.IncludePositions {
					jn.Path, jn.Line, jn.Column = jsonLocation(fs, n.Span, opts.PathMode)
				}
				jd.Notes = append(jd.Notes, jn)
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func jsonLocation(fs *source.FileSet, span source.Span, mode PathMode) (path string, line, col uint32) {
	file := safeGet(fs, span.File)
	if file == nil {
		return "", 0, 0
	}
	start, _ := fs.Resolve(span)
	return file.FormatPath(mode.String(), fs.BaseDir()), start.Line, start.Col
}

func severityName(sev diag.Severity) string {
	switch sev {
	case diag.Fatal:
		return "fatal"
	case diag.Error:
		return "error"
	case diag.Warning:
		return "warning"
	case diag.Info:
		return "info"
	default:
		return "ignored"
	}
}
