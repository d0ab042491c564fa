package optbag

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/cliparse"
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/diagengine"
	"github.com/KennethDRoe/slang/internal/source"
)

func bindingsWith(scalars map[string]string, lists map[string][]string) *cliparse.Bindings {
	b := cliparse.NewBindings()
	for k, v := range scalars {
		b.Scalars[k] = v
	}
	for k, v := range lists {
		b.Lists[k] = v
	}
	return b
}

func TestLibrariesInheritMacrosRequiresSingleUnit(t *testing.T) {
	b := bindingsWith(map[string]string{"libraries-inherit-macros": "true"}, nil)
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	reporter := diag.BagReporter{Bag: bag}
	e := diagengine.New(reporter, fs)

	_, ok := Build(b, Env{Engine: e}, reporter)
	if ok {
		t.Fatalf("expected validation failure when libraries-inherit-macros is set without single-unit")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.ProjInvalidOptionValue {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a ProjInvalidOptionValue diagnostic, got %+v", bag.Items())
	}
}

func TestCompatVcsInvalidValueFails(t *testing.T) {
	b := bindingsWith(map[string]string{"compat": "foo"}, nil)
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	reporter := diag.BagReporter{Bag: bag}
	e := diagengine.New(reporter, fs)

	_, ok := Build(b, Env{Engine: e}, reporter)
	if ok {
		t.Fatalf("expected failure for invalid compat value")
	}
}

func TestCompatVcsDefaultsFineGrainedOptions(t *testing.T) {
	b := bindingsWith(map[string]string{"compat": "vcs"}, nil)
	fs := source.NewFileSet()
	e := diagengine.New(nil, fs)

	result, ok := Build(b, Env{Engine: e}, nil)
	if !ok {
		t.Fatalf("expected success")
	}
	if !result.Compilation.AllowHierarchicalConst || !result.Compilation.AllowUseBeforeDeclare || !result.Compilation.RelaxEnumConversions {
		t.Fatalf("expected vcs compat to default fine-grained options true, got %+v", result.Compilation)
	}
}

func TestLintOnlyDefaultsIgnoreUnknownModules(t *testing.T) {
	b := bindingsWith(map[string]string{"lint-only": "true"}, nil)
	result, ok := Build(b, Env{}, nil)
	if !ok {
		t.Fatalf("expected success")
	}
	if !result.Compilation.IgnoreUnknownModules || !result.Compilation.SuppressUnused {
		t.Fatalf("expected lint-only to default ignore-unknown-modules and suppress-unused true, got %+v", result.Compilation)
	}
}

func TestLintOnlyDoesNotOverrideExplicitIgnoreUnknownModules(t *testing.T) {
	b := bindingsWith(map[string]string{"lint-only": "true", "ignore-unknown-modules": "false"}, nil)
	result, ok := Build(b, Env{}, nil)
	if !ok {
		t.Fatalf("expected success")
	}
	if result.Compilation.IgnoreUnknownModules {
		t.Fatalf("expected explicit ignore-unknown-modules=false to survive lint-only default")
	}
}

func TestErrorLimitDoublesForCompilation(t *testing.T) {
	b := bindingsWith(map[string]string{"error-limit": "25"}, nil)
	result, ok := Build(b, Env{}, nil)
	if !ok {
		t.Fatalf("expected success")
	}
	if result.UserErrorLimit != 25 || result.Compilation.ErrorLimit != 50 {
		t.Fatalf("expected user=25, compilation=50, got user=%d compilation=%d", result.UserErrorLimit, result.Compilation.ErrorLimit)
	}
}

func TestTimescaleValidation(t *testing.T) {
	b := bindingsWith(map[string]string{"timescale": "1ns/1ps"}, nil)
	result, ok := Build(b, Env{}, nil)
	if !ok {
		t.Fatalf("expected 1ns/1ps to be valid")
	}
	if result.Compilation.DefaultTimeScale != "1ns/1ps" {
		t.Fatalf("got %q", result.Compilation.DefaultTimeScale)
	}

	b2 := bindingsWith(map[string]string{"timescale": "bogus"}, nil)
	_, ok2 := Build(b2, Env{}, nil)
	if ok2 {
		t.Fatalf("expected bogus timescale to fail validation")
	}
}

func TestColorPolicyExplicitOverridesTTYDetection(t *testing.T) {
	b := bindingsWith(map[string]string{"color-diagnostics": "true"}, nil)
	result, ok := Build(b, Env{StderrIsTTY: false, StdoutIsTTY: false}, nil)
	if !ok || !result.ColorDiagnostics {
		t.Fatalf("expected explicit --color-diagnostics to force color on")
	}
}

func TestColorPolicyFallsBackToTTYDetection(t *testing.T) {
	b := cliparse.NewBindings()
	result, ok := Build(b, Env{StderrIsTTY: true, StdoutIsTTY: true}, nil)
	if !ok || !result.ColorDiagnostics {
		t.Fatalf("expected tty detection to enable color when both streams are colorable")
	}

	result2, ok2 := Build(b, Env{StderrIsTTY: true, StdoutIsTTY: false}, nil)
	if !ok2 || result2.ColorDiagnostics {
		t.Fatalf("expected color disabled when only one stream is colorable")
	}
}

func TestDefineMacroSplitsNameValue(t *testing.T) {
	b := bindingsWith(nil, map[string][]string{"define-macro": {"FOO=bar", "BAZ"}})
	result, ok := Build(b, Env{}, nil)
	if !ok {
		t.Fatalf("expected success")
	}
	if result.Preprocessor.Predefines["FOO"] != "bar" {
		t.Fatalf("expected FOO=bar, got %+v", result.Preprocessor.Predefines)
	}
	if result.Preprocessor.Predefines["BAZ"] != "1" {
		t.Fatalf("expected BAZ to default to 1, got %+v", result.Preprocessor.Predefines)
	}
}
