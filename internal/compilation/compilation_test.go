package compilation

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/syntax"
)

func TestTopInstancesAutoDetectsUnreferencedModules(t *testing.T) {
	u := New(Options{}, nil)
	u.AddSyntaxTree(&syntax.Tree{Modules: []syntax.Module{
		{Name: "top", Instances: []syntax.Instance{{ModuleName: "leaf", InstanceName: "u0"}}},
		{Name: "leaf"},
	}})

	tops := u.TopInstances()
	if len(tops) != 1 || tops[0].Name != "top" {
		t.Fatalf("got %+v, want only 'top'", tops)
	}
}

func TestTopInstancesHonorsExplicitList(t *testing.T) {
	u := New(Options{TopModules: []string{"leaf"}}, nil)
	u.AddSyntaxTree(&syntax.Tree{Modules: []syntax.Module{
		{Name: "top", Instances: []syntax.Instance{{ModuleName: "leaf", InstanceName: "u0"}}},
		{Name: "leaf"},
	}})

	tops := u.TopInstances()
	if len(tops) != 1 || tops[0].Name != "leaf" {
		t.Fatalf("got %+v, want only 'leaf'", tops)
	}
}

type recordingReporter struct {
	codes []diag.Code
}

func (r *recordingReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.codes = append(r.codes, code)
}

func TestCheckUnknownModulesReportsMissingDefinition(t *testing.T) {
	rep := &recordingReporter{}
	u := New(Options{}, rep)
	u.AddSyntaxTree(&syntax.Tree{Modules: []syntax.Module{
		{Name: "top", Instances: []syntax.Instance{{ModuleName: "missing", InstanceName: "u0"}}},
	}})
	u.CheckUnknownModules()

	if len(rep.codes) != 1 || rep.codes[0] != diag.UnknownModule {
		t.Fatalf("got %v, want [UnknownModule]", rep.codes)
	}
}

func TestCheckUnknownModulesSuppressedByOption(t *testing.T) {
	rep := &recordingReporter{}
	u := New(Options{IgnoreUnknownModules: true}, rep)
	u.AddSyntaxTree(&syntax.Tree{Modules: []syntax.Module{
		{Name: "top", Instances: []syntax.Instance{{ModuleName: "missing", InstanceName: "u0"}}},
	}})
	u.CheckUnknownModules()

	if len(rep.codes) != 0 {
		t.Fatalf("got %v, want no diagnostics", rep.codes)
	}
}

func TestDuplicateModuleDefinitionReported(t *testing.T) {
	rep := &recordingReporter{}
	u := New(Options{}, rep)
	u.AddSyntaxTree(&syntax.Tree{Modules: []syntax.Module{{Name: "top"}}})
	u.AddSyntaxTree(&syntax.Tree{Modules: []syntax.Module{{Name: "top"}}})

	if len(rep.codes) != 1 || rep.codes[0] != diag.DuplicateDefinition {
		t.Fatalf("got %v, want [DuplicateDefinition]", rep.codes)
	}
	if len(u.Modules()) != 1 {
		t.Fatalf("got %d modules, want 1 (second definition dropped)", len(u.Modules()))
	}
}
