package sema

import (
	"testing"

	"cminor/symtab"
)

func TestBinaryOpFloatWins(t *testing.T) {
	a, _ := newTestAnalyzer()

	left := a.Literal(1, "3", false)  // int
	right := a.Literal(1, "2.5", true) // float

	node := a.BinaryOp(1, "+", left, right)
	if node.Type() != symtab.Float {
		t.Errorf("int + float should propagate float, got %v", node.Type())
	}
}

func TestBinaryOpBothInt(t *testing.T) {
	a, _ := newTestAnalyzer()

	left := a.Literal(1, "3", false)
	right := a.Literal(1, "2", false)

	node := a.BinaryOp(1, "*", left, right)
	if node.Type() != symtab.Int {
		t.Errorf("int * int should propagate int, got %v", node.Type())
	}
}

func TestModulusOnFloatOperandIsAnError(t *testing.T) {
	a, _ := newTestAnalyzer()

	left := a.Literal(1, "3", false)
	right := a.Literal(1, "2.5", true)

	node := a.BinaryOp(1, "%", left, right)
	if node.Type() != symtab.Int {
		t.Errorf("modulus always propagates int, got %v", node.Type())
	}
	if a.Reporter.HardErrorCount() != 1 {
		t.Errorf("expected a modulus-on-non-integer diagnostic, got %d errors", a.Reporter.HardErrorCount())
	}
}

func TestDivisionByLiteralZero(t *testing.T) {
	a, _ := newTestAnalyzer()

	left := a.Literal(1, "5", false)
	right := a.Literal(1, "0", false)

	a.BinaryOp(1, "/", left, right)
	if a.Reporter.HardErrorCount() != 1 {
		t.Errorf("expected a division-by-zero diagnostic, got %d errors", a.Reporter.HardErrorCount())
	}
}

func TestAssignFloatToIntIsAWarningNotAnError(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.Table.Insert(&symtab.Record{Name: "x", NodeKind: symtab.KindVariable, DataType: symtab.Int})
	target := a.Ident(1, "x")
	value := a.Literal(1, "1.5", true)

	a.Assign(1, target, value)

	if a.Reporter.WarningCount() != 1 {
		t.Errorf("expected exactly one warning, got %d", a.Reporter.WarningCount())
	}
	if a.Reporter.HardErrorCount() != 0 {
		t.Errorf("expected no hard errors, got %d", a.Reporter.HardErrorCount())
	}
}

func TestAssignVoidValueIsAnError(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.Table.Insert(&symtab.Record{Name: "x", NodeKind: symtab.KindVariable, DataType: symtab.Int})
	target := a.Ident(1, "x")
	value := a.Literal(1, "0", false)
	value.SetType(symtab.Void)

	a.Assign(1, target, value)

	if a.Reporter.HardErrorCount() != 1 {
		t.Errorf("expected 1 error for assigning a void value, got %d", a.Reporter.HardErrorCount())
	}
}
