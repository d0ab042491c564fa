package diag

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.sv", []byte("a\nb\n"), 0)
	virtualFile := fs.AddVirtual("<macro-expansion>", []byte("x\n"))

	diags := []*Diagnostic{
		{
			Severity: Error,
			Code:     SynExpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: virtualFile, Start: 0, End: 0}, Msg: "skip me"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: Warning,
			Code:     DuplicateDefinition,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN3001 testdata/golden/sample.sv:1:1 first line second\n" +
		"note SYN3001 testdata/golden/sample.sv:2:1 note line\n" +
		"warning SEM4001 testdata/golden/sample.sv:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsKeepsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")
	virtualFile := fs.AddVirtual("<macro-expansion>", []byte("x\n"))

	diags := []*Diagnostic{
		{
			Severity: Warning,
			Code:     PPMacroRedefined,
			Message:  "redefined",
			Primary:  source.Span{File: virtualFile, Start: 0, End: 1},
		},
	}

	got := FormatShortDiagnostics(diags, fs, false)
	if got == "" {
		t.Fatalf("expected short output to include virtual-file diagnostic")
	}
}
