package syntax

import (
	"testing"

	"github.com/KennethDRoe/slang/internal/lexer"
	"github.com/KennethDRoe/slang/internal/source"
	"github.com/KennethDRoe/slang/internal/token"
)

type lexAdapter struct{ lx *lexer.Lexer }

func (a lexAdapter) Next() token.Token { return a.lx.Next() }

func parseSource(t *testing.T, src string) *Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sv", []byte(src))
	f := fs.Get(id)
	lx := lexer.New(f, lexer.Options{})
	p := New(lexAdapter{lx}, Options{})
	return p.Parse(id)
}

func TestParseModuleAndInstance(t *testing.T) {
	tree := parseSource(t, `
module top;
  counter u_counter(.clk(clk), .rst(rst));
endmodule

module counter;
endmodule
`)
	if len(tree.Modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(tree.Modules))
	}
	top := tree.Modules[0]
	if top.Name != "top" {
		t.Fatalf("first module name = %q, want top", top.Name)
	}
	if len(top.Instances) != 1 {
		t.Fatalf("got %d instances in top, want 1", len(top.Instances))
	}
	inst := top.Instances[0]
	if inst.ModuleName != "counter" || inst.InstanceName != "u_counter" {
		t.Fatalf("instance = %+v, want counter/u_counter", inst)
	}
}

func TestParseIgnoresNonInstanceIdentifierPairs(t *testing.T) {
	tree := parseSource(t, `
module leaf;
  wire foo;
endmodule
`)
	if len(tree.Modules) != 1 {
		t.Fatalf("got %d modules, want 1", len(tree.Modules))
	}
	if len(tree.Modules[0].Instances) != 0 {
		t.Fatalf("got %d instances, want 0 (wire decl isn't an instance)", len(tree.Modules[0].Instances))
	}
}
