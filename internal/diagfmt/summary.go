package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/KennethDRoe/slang/internal/diag"
)

// BuildSummary writes the driver's closing line: "Build succeeded" or
// "Build failed" followed by pluralized error/warning counts, e.g.
// "Build succeeded: 0 errors, 0 warnings" or "Build failed: 1 error, 2 warnings".
func BuildSummary(w io.Writer, bag *diag.Bag, useColor bool) {
	errs, warns := countBySeverity(bag)
	verdict := "Build succeeded"
	c := color.New(color.FgGreen, color.Bold)
	if errs > 0 {
		verdict = "Build failed"
		c = color.New(color.FgRed, color.Bold)
	}
	line := fmt.Sprintf("%s: %s, %s", verdict, pluralize(errs, "error"), pluralize(warns, "warning"))
	if useColor {
		line = c.Sprint(verdict) + line[len(verdict):]
	}
	fmt.Fprintln(w, line)
}

func countBySeverity(bag *diag.Bag) (errs, warns int) {
	if bag == nil {
		return 0, 0
	}
	for _, d := range bag.Items() {
		switch {
		case d.Severity >= diag.Error:
			errs++
		case d.Severity == diag.Warning:
			warns++
		}
	}
	return errs, warns
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
