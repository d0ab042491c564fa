// Package compilation binds parsed syntax trees into a single Unit (the
// Go stand-in for the original driver's Compilation object), resolving
// top-level instances and unknown-module references. Elaboration,
// binding of ports/parameters, and code generation are out of scope.
package compilation

import (
	"github.com/KennethDRoe/slang/internal/diag"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/syntax"
)

// Options configures a Unit.
type Options struct {
	TopModules           []string // explicit --top names; empty means auto-detect roots
	IgnoreUnknownModules bool
}

// Unit binds every module declared across a set of parsed files and
// resolves the compilation's root (top) instances.
type Unit struct {
	opts       Options
	reporter   diag.Reporter
	modules    map[string]syntax.Module
	order      []string // definition order, for stable iteration
	referenced map[string]bool
}

// New returns an empty Unit.
func New(opts Options, reporter diag.Reporter) *Unit {
	return &Unit{
		opts:       opts,
		reporter:   reporter,
		modules:    make(map[string]syntax.Module),
		referenced: make(map[string]bool),
	}
}

// AddSyntaxTree registers every module declared in tree. A module name
// that collides with one already registered is reported and the later
// declaration is dropped.
func (u *Unit) AddSyntaxTree(tree *syntax.Tree) {
	for _, m := range tree.Modules {
		if _, exists := u.modules[m.Name]; exists {
			u.report(diag.DuplicateDefinition, m.Span, "module '"+m.Name+"' is already defined")
			continue
		}
		u.modules[m.Name] = m
		u.order = append(u.order, m.Name)
		for _, inst := range m.Instances {
			u.referenced[inst.ModuleName] = true
		}
	}
}

func (u *Unit) report(code diag.Code, sp source.Span, msg string) {
	if u.reporter != nil {
		u.reporter.Report(code, diag.Error, sp, msg, nil)
	}
}

// Modules returns every registered module in definition order.
func (u *Unit) Modules() []syntax.Module {
	out := make([]syntax.Module, 0, len(u.order))
	for _, name := range u.order {
		out = append(out, u.modules[name])
	}
	return out
}

// TopInstances resolves the compilation's root modules: the explicit
// --top list when set, otherwise every module never instantiated by
// another (mirroring the original driver's automatic root detection).
func (u *Unit) TopInstances() []syntax.Module {
	var names []string
	if len(u.opts.TopModules) > 0 {
		names = u.opts.TopModules
	} else {
		for _, name := range u.order {
			if !u.referenced[name] {
				names = append(names, name)
			}
		}
	}

	out := make([]syntax.Module, 0, len(names))
	for _, name := range names {
		if m, ok := u.modules[name]; ok {
			out = append(out, m)
		}
	}
	return out
}

// CheckUnknownModules reports UnknownModule for every instance whose
// module name has no matching declaration, unless
// Options.IgnoreUnknownModules suppresses it.
func (u *Unit) CheckUnknownModules() {
	if u.opts.IgnoreUnknownModules {
		return
	}
	for _, name := range u.order {
		for _, inst := range u.modules[name].Instances {
			if _, ok := u.modules[inst.ModuleName]; !ok {
				u.report(diag.UnknownModule, inst.Span,
					"unknown module '"+inst.ModuleName+"' referenced by instance '"+inst.InstanceName+"'")
			}
		}
	}
}
