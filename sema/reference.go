package sema

import (
	"cminor/ast"
	"cminor/symtab"
)

// Ident resolves a bare identifier reference (spec.md §4.3). A
// placeholder Int type is used on lookup failure so that downstream
// propagation does not cascade additional diagnostics.
func (a *Analyzer) Ident(line int, name string) *ast.Ident {
	node := ast.NewIdent(line, name)

	rec, ok := a.Table.Lookup(name)
	if !ok {
		a.errorf(line, "Undeclared variable: "+name)
		node.SetType(symtab.Int)
		a.trace(line, "id", name)
		return node
	}

	if rec.NodeKind == symtab.KindArray {
		a.errorf(line, "variable is of array type : "+name)
	}

	node.SetType(rec.DataType)
	a.trace(line, "id", name)
	return node
}

// Index resolves an indexed array reference id[expression] (spec.md
// §4.3).
func (a *Analyzer) Index(line int, name string, index ast.Expr) *ast.IndexExpr {
	node := ast.NewIndexExpr(line, name, index)

	rec, ok := a.Table.Lookup(name)
	if !ok || rec.NodeKind != symtab.KindArray {
		a.errorf(line, "variable is not of array type : "+name)
		node.SetType(symtab.Int)
	} else {
		node.SetType(rec.DataType)
	}

	if index.Type() != symtab.Int {
		a.errorf(line, "array index is not of integer type : "+name)
	}

	a.trace(line, "indexed_id", node.Text())
	return node
}
