package ast

import (
	"strings"
	"testing"

	"cminor/symtab"
)

func TestRenderDeclStmt(t *testing.T) {
	prog := &Program{
		Decls: []Node{
			NewDeclStmt(1, symtab.Int, []VarSpec{{Name: "x", Size: -1}, {Name: "arr", Size: 10}}),
		},
	}

	out := Render(prog)
	if !strings.Contains(out, "int x, arr[10];") {
		t.Errorf("expected a rendered declaration line, got %q", out)
	}
}

func TestRenderFuncDef(t *testing.T) {
	body := NewBlock(2, []Node{
		NewReturnStmt(2, NewLiteral(2, "0")),
	})
	prog := &Program{
		Decls: []Node{
			NewFuncDef(1, "main", symtab.Int, nil, body),
		},
	}

	out := Render(prog)
	if !strings.Contains(out, "int main()") {
		t.Errorf("expected the function header to render, got %q", out)
	}
	if !strings.Contains(out, "return 0;") {
		t.Errorf("expected the return statement to render, got %q", out)
	}
}
