package sema

import (
	"testing"

	"cminor/ast"
	"cminor/symtab"
)

func TestCheckConditionRejectsVoid(t *testing.T) {
	a, _ := newTestAnalyzer()

	cond := a.Literal(1, "0", false)
	cond.SetType(symtab.Void)

	a.CheckCondition(1, cond)

	if a.Reporter.HardErrorCount() != 1 {
		t.Errorf("expected 1 void-condition error, got %d", a.Reporter.HardErrorCount())
	}
}

func TestPrintUndeclaredVariable(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.Print(1, "missing")

	if a.Reporter.HardErrorCount() != 1 {
		t.Errorf("expected 1 undeclared-variable error, got %d", a.Reporter.HardErrorCount())
	}
}

func TestReturnRecordsExpressionWithoutTypeCheck(t *testing.T) {
	a, _ := newTestAnalyzer()

	expr := a.Literal(1, "3.14", true)
	stmt := a.Return(1, expr)

	if stmt.Expr != expr {
		t.Errorf("expected the return statement to carry the expression verbatim")
	}
	if a.Reporter.HardErrorCount() != 0 {
		t.Errorf("return performs no return-type compatibility check, got %d errors", a.Reporter.HardErrorCount())
	}
}

func TestIfBuildsNodeAndChecksCondition(t *testing.T) {
	a, _ := newTestAnalyzer()

	cond := a.Literal(1, "1", false)
	then := ast.NewBlock(1, nil)

	stmt := a.If(1, cond, then, nil)
	if stmt.Cond != cond || stmt.Then != then {
		t.Errorf("expected the if statement to carry its condition and then-branch")
	}
	if a.Reporter.HardErrorCount() != 0 {
		t.Errorf("expected no errors for a well-typed condition, got %d", a.Reporter.HardErrorCount())
	}
}
