// Package syntax captures the minimal module/instance shape the driver
// needs to resolve top-level instances and report unknown-module
// diagnostics. It is not a full SystemVerilog parser: port lists,
// parameters, generate blocks, and statement bodies are not modeled —
// elaboration is out of scope for this driver (see spec Non-goals).
package syntax

import "github.com/KennethDRoe/slang/internal/source"

// Instance is one instance declaration found inside a module body:
// `ModuleName instanceName(...);`
type Instance struct {
	ModuleName   string
	InstanceName string
	Span         source.Span
}

// Module is a minimal capture of a `module ... endmodule` declaration.
type Module struct {
	Name      string
	Span      source.Span
	Instances []Instance
}

// Tree is one file's captured top-level module declarations.
type Tree struct {
	FileID  source.FileID
	Modules []Module
}
