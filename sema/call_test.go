package sema

import (
	"testing"

	"cminor/symtab"
)

func declareFunc(a *Analyzer, name string, ret symtab.DataType, params ...symtab.Param) {
	a.Table.Insert(&symtab.Record{
		Name:       name,
		NodeKind:   symtab.KindFunction,
		ReturnType: ret,
		DataType:   ret,
		Parameters: params,
	})
}

func TestCallUndeclaredFunction(t *testing.T) {
	a, _ := newTestAnalyzer()

	a.BeginCall()
	node := a.FinishCall(1, "missing")

	if a.Reporter.HardErrorCount() != 1 {
		t.Fatalf("expected 1 error for an undeclared function, got %d", a.Reporter.HardErrorCount())
	}
	if node.Type() != symtab.Int {
		t.Errorf("expected a placeholder int type, got %v", node.Type())
	}
}

func TestCallArityMismatch(t *testing.T) {
	a, _ := newTestAnalyzer()
	declareFunc(a, "add", symtab.Int, symtab.Param{Type: symtab.Int}, symtab.Param{Type: symtab.Float})

	a.BeginCall()
	a.AddCallArg(a.Literal(1, "1", false))
	a.FinishCall(1, "add")

	if a.Reporter.HardErrorCount() != 1 {
		t.Fatalf("expected an arity-mismatch error, got %d errors", a.Reporter.HardErrorCount())
	}
}

func TestCallArgumentTypeMismatch(t *testing.T) {
	a, _ := newTestAnalyzer()
	declareFunc(a, "add", symtab.Int, symtab.Param{Type: symtab.Int}, symtab.Param{Type: symtab.Float})

	a.BeginCall()
	a.AddCallArg(a.Literal(1, "1", false))
	a.AddCallArg(a.Literal(1, "2", false)) // int, but param 2 wants float
	a.FinishCall(1, "add")

	if a.Reporter.HardErrorCount() != 1 {
		t.Fatalf("expected an argument-type-mismatch error, got %d errors", a.Reporter.HardErrorCount())
	}
}

func TestCallReturnsDeclaredReturnType(t *testing.T) {
	a, _ := newTestAnalyzer()
	declareFunc(a, "half", symtab.Float, symtab.Param{Type: symtab.Int})

	a.BeginCall()
	a.AddCallArg(a.Literal(1, "4", false))
	node := a.FinishCall(1, "half")

	if node.Type() != symtab.Float {
		t.Errorf("expected the call's type to be the function's return type, got %v", node.Type())
	}
	if a.Reporter.HardErrorCount() != 0 {
		t.Errorf("expected no errors for a well-formed call, got %d", a.Reporter.HardErrorCount())
	}
}

func TestNestedCallDoesNotCorruptOuterArguments(t *testing.T) {
	a, _ := newTestAnalyzer()
	declareFunc(a, "g", symtab.Int, symtab.Param{Type: symtab.Int})
	declareFunc(a, "f", symtab.Int, symtab.Param{Type: symtab.Int})

	a.BeginCall() // f(...)
	a.BeginCall() // g(...)
	a.AddCallArg(a.Literal(1, "1", false))
	inner := a.FinishCall(1, "g")
	a.AddCallArg(inner)
	a.FinishCall(1, "f")

	if a.Reporter.HardErrorCount() != 0 {
		t.Errorf("f(g(1)) should type-check cleanly, got %d errors", a.Reporter.HardErrorCount())
	}
}
