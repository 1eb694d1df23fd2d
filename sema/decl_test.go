package sema

import (
	"bytes"
	"testing"

	"cminor/ast"
	"cminor/report"
	"cminor/symtab"
)

func newTestAnalyzer() (*Analyzer, *bytes.Buffer) {
	var log bytes.Buffer
	r := report.New(&log, report.LogLevelSilent)
	return NewAnalyzer(0, r), &log
}

func TestDeclareListRejectsDuplicate(t *testing.T) {
	a, _ := newTestAnalyzer()

	specs := []ast.VarSpec{{Name: "x", Size: -1, Line: 1}}
	a.TypeSpecifier(1, symtab.Int)
	a.DeclareList(1, specs)
	a.TypeSpecifier(1, symtab.Int)
	a.DeclareList(1, specs)

	if got := a.Reporter.HardErrorCount(); got != 1 {
		t.Fatalf("expected 1 error for the duplicate declaration, got %d", got)
	}
}

func TestDeclareListRejectsVoidVariable(t *testing.T) {
	a, _ := newTestAnalyzer()

	specs := []ast.VarSpec{{Name: "v", Size: -1, Line: 1}}
	a.TypeSpecifier(1, symtab.Void)
	a.DeclareList(1, specs)

	if _, ok := a.Table.LookupCurrentScope("v"); ok {
		t.Fatalf("a void variable must not be inserted")
	}
	if got := a.Reporter.HardErrorCount(); got != 1 {
		t.Fatalf("expected 1 error for the void variable, got %d", got)
	}
}

func TestDeclareListClassifiesVariableAndArrayIndependently(t *testing.T) {
	a, _ := newTestAnalyzer()

	specs := []ast.VarSpec{
		{Name: "a", Size: -1, Line: 1},
		{Name: "b", Size: 10, Line: 1},
	}
	a.TypeSpecifier(1, symtab.Int)
	a.DeclareList(1, specs)

	varRec, ok := a.Table.LookupCurrentScope("a")
	if !ok || varRec.NodeKind != symtab.KindVariable {
		t.Fatalf("expected a to be a variable record, got %+v", varRec)
	}

	arrRec, ok := a.Table.LookupCurrentScope("b")
	if !ok || arrRec.NodeKind != symtab.KindArray || arrRec.ArraySize != 10 {
		t.Fatalf("expected b to be an array of size 10, got %+v", arrRec)
	}
}
