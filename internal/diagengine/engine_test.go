package diagengine

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
)

func TestSetDefaultWarningsThenMandatoryOverride(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x", []byte("x"))
	bag := diag.NewBag(10)
	e := New(diag.BagReporter{Bag: bag}, fs)
	e.SetDefaultWarnings()
	e.ApplyMandatoryOverrides()

	e.Report(diag.DuplicateDefinition, diag.Warning, source.Span{File: id}, "dup", nil)
	items := bag.Items()
	if len(items) != 1 || items[0].Severity != diag.Error {
		t.Fatalf("expected DuplicateDefinition promoted to Error, got %+v", items)
	}
}

func TestVcsCompatOverridesSilenceImplicitConvert(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x", []byte("x"))
	bag := diag.NewBag(10)
	e := New(diag.BagReporter{Bag: bag}, fs)
	e.SetDefaultWarnings()
	e.ApplyVcsCompatOverrides()

	e.Report(diag.ImplicitConvert, diag.Warning, source.Span{File: id}, "narrowing", nil)
	if bag.Len() != 0 {
		t.Fatalf("expected ImplicitConvert suppressed under vcs compat, got %+v", bag.Items())
	}
}

func TestUserWarningOptionsTakeFinalPrecedence(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x", []byte("x"))
	bag := diag.NewBag(10)
	e := New(diag.BagReporter{Bag: bag}, fs)
	e.SetDefaultWarnings()
	e.ApplyDefaultPromotions() // promotes IndexOOB to Error

	if errs := e.SetWarningOptions([]string{"-index-oob"}); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	e.Report(diag.IndexOOB, diag.Warning, source.Span{File: id}, "oob", nil)
	if bag.Len() != 0 {
		t.Fatalf("expected user -W override to downgrade IndexOOB to ignored, got %+v", bag.Items())
	}
}

func TestUnknownWarningOptionReportsError(t *testing.T) {
	e := New(nil, nil)
	errs := e.SetWarningOptions([]string{"not-a-real-option"})
	if len(errs) != 1 {
		t.Fatalf("expected one error for unknown option, got %v", errs)
	}
}

func TestErrorLimitStopsForwardingFurtherErrors(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x", []byte("x"))
	bag := diag.NewBag(100)
	e := New(diag.BagReporter{Bag: bag}, fs)
	e.SetErrorLimit(2)

	for i := 0; i < 5; i++ {
		e.Report(diag.SynExpectedToken, diag.Error, source.Span{File: id}, "bad", nil)
	}
	if bag.Len() != 2 {
		t.Fatalf("expected exactly 2 errors forwarded, got %d", bag.Len())
	}
	if !e.ErrorLimitHit() {
		t.Fatalf("expected ErrorLimitHit true")
	}
}

func TestIgnorePathSuppressesDiagnosticsUnderPrefix(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("/vendor/thirdparty.sv", []byte("x"), 0)
	bag := diag.NewBag(10)
	e := New(diag.BagReporter{Bag: bag}, fs)
	e.AddIgnorePath("/vendor")

	e.Report(diag.SynExpectedToken, diag.Error, source.Span{File: id}, "bad", nil)
	if bag.Len() != 0 {
		t.Fatalf("expected diagnostic under /vendor suppressed, got %+v", bag.Items())
	}
}

func TestIgnoreMacroPathOnlyAppliesToPreprocessorCodes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.Add("/vendor/thirdparty.svh", []byte("x"), 0)
	bag := diag.NewBag(10)
	e := New(diag.BagReporter{Bag: bag}, fs)
	e.AddIgnoreMacroPath("/vendor")

	e.Report(diag.PPMacroRedefined, diag.Warning, source.Span{File: id}, "redefined", nil)
	e.Report(diag.SynExpectedToken, diag.Error, source.Span{File: id}, "bad", nil)

	if bag.Len() != 1 {
		t.Fatalf("expected only the non-macro diagnostic to survive, got %+v", bag.Items())
	}
}
