package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	locColor     = color.New(color.Faint)
	caretColor   = color.New(color.FgGreen, color.Bold)
	codeColor    = color.New(color.Faint)
)

// Pretty writes bag's diagnostics to w in human-readable form:
//
//	path:line:col: severity [code]: message
//	    <source line>
//	    <caret underline>
//
// [code] is the diagnostic's -W option name when it has one, otherwise its
// code ID.
//
// Diagnostics are printed in the order bag.Items() returns them; call
// bag.Sort() beforehand for deterministic file/line ordering.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for _, d := range bag.Items() {
		writeOne(bw, d, fs, opts)
	}
}

func writeOne(w *bufio.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	loc := formatLocation(fs, d.Primary, opts.PathMode)
	sevText := severityColored(d.Severity, opts.Color)

	fmt.Fprintf(w, "%s: %s", colored(opts.Color, locColor, loc), sevText)
	if optName := d.Code.OptionName(); optName != "" {
		fmt.Fprintf(w, " %s", colored(opts.Color, codeColor, "["+optName+"]"))
	} else {
		fmt.Fprintf(w, " %s", colored(opts.Color, codeColor, "["+d.Code.ID()+"]"))
	}
	fmt.Fprintf(w, ": %s\n", wrapMessage(d.Message, opts.Width))

	writeSourceContext(w, fs, d.Primary, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nloc := formatLocation(fs, note.Span, opts.PathMode)
			fmt.Fprintf(w, "  %s: %s: %s\n", colored(opts.Color, locColor, nloc),
				colored(opts.Color, infoColor, "note"), note.Msg)
			writeSourceContext(w, fs, note.Span, opts)
		}
	}
}

func writeSourceContext(w *bufio.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	file := safeGet(fs, span.File)
	if file == nil || file.Flags&source.FileVirtual != 0 {
		return
	}
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "    %s\n", strings.TrimRight(line, "\r\n"))

	underlineLen := int(end.Col) - int(start.Col)
	if end.Line != start.Line || underlineLen < 1 {
		underlineLen = 1
	}
	caret := strings.Repeat(" ", max0(int(start.Col)-1)) + strings.Repeat("^", underlineLen)
	fmt.Fprintf(w, "    %s\n", colored(opts.Color, caretColor, caret))
}

func safeGet(fs *source.FileSet, id source.FileID) (f *source.File) {
	defer func() {
		if recover() != nil {
			f = nil
		}
	}()
	return fs.Get(id)
}

func formatLocation(fs *source.FileSet, span source.Span, mode PathMode) string {
	file := safeGet(fs, span.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", file.FormatPath(mode.String(), fs.BaseDir()), start.Line, start.Col)
}

func severityColored(sev diag.Severity, useColor bool) string {
	switch sev {
	case diag.Fatal, diag.Error:
		return colored(useColor, errorColor, "error")
	case diag.Warning:
		return colored(useColor, warningColor, "warning")
	default:
		return colored(useColor, infoColor, "info")
	}
}

func colored(useColor bool, c *color.Color, s string) string {
	if !useColor {
		return s
	}
	return c.Sprint(s)
}

func wrapMessage(msg string, width uint8) string {
	if width == 0 || len(msg) <= int(width) {
		return msg
	}
	return msg[:width] + "..."
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
