package sema

import (
	"testing"

	"cminor/ast"
	"cminor/symtab"
)

func TestDuplicateParameterName(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.BeginFuncHeader("f")
	a.AddParam(1, symtab.Int, "a")
	a.AddParam(1, symtab.Float, "a")

	if a.Reporter.HardErrorCount() != 1 {
		t.Fatalf("expected 1 duplicate-parameter error, got %d", a.Reporter.HardErrorCount())
	}
	if len(a.Ctx.PendingFormals()) != 1 {
		t.Fatalf("the rejected duplicate must not be added to the formal list, got %d formals", len(a.Ctx.PendingFormals()))
	}
}

func TestFinishHeaderRejectsRedeclaredFunction(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.BeginFuncHeader("f")
	a.FinishHeader(1, "f", symtab.Int)

	a.BeginFuncHeader("f")
	a.FinishHeader(2, "f", symtab.Float)

	if a.Reporter.HardErrorCount() != 1 {
		t.Fatalf("expected 1 multiple-declaration-of-function error, got %d", a.Reporter.HardErrorCount())
	}

	rec, ok := a.Table.LookupCurrentScope("f")
	if !ok || rec.ReturnType != symtab.Int {
		t.Fatalf("the original declaration must survive the rejected redeclaration, got %+v", rec)
	}
}

func TestFunctionBodyScopeInsertsParameters(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.BeginFuncHeader("add")
	a.AddParam(1, symtab.Int, "a")
	a.AddParam(1, symtab.Float, "b")
	formals := a.FinishHeader(1, "add", symtab.Int)

	a.EnterFunctionBody("add", formals)

	rec, ok := a.Table.LookupCurrentScope("b")
	if !ok || rec.DataType != symtab.Float {
		t.Fatalf("expected parameter b to be visible as a float variable in the body scope, got %+v", rec)
	}

	body := ast.NewBlock(1, nil)
	a.ExitFunctionBody(1, "add", symtab.Int, formals, body)

	if _, ok := a.Table.LookupCurrentScope("b"); ok {
		t.Fatalf("b should not be visible after the function body scope is exited")
	}
}
