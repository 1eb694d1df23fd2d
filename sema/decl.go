package sema

import (
	"strconv"
	"strings"

	"cminor/ast"
	"cminor/symtab"
)

// TypeSpecifier records the type a type_specifier reduction just
// produced, to be consumed by the declaration_list (or parameter_list)
// reduction that follows it (spec.md §3's "current_type").
func (a *Analyzer) TypeSpecifier(line int, t symtab.DataType) {
	a.Ctx.CurrentType = t
	a.trace(line, "type_specifier", t.String())
}

// DeclareList processes a declaration list (spec.md §4.2): each entry
// is either a plain variable (spec.Size < 0) or an array
// (spec.Size >= 0), classified and inserted independently even though
// they share one declared type, consumed from the current_type set by
// the preceding TypeSpecifier call.
func (a *Analyzer) DeclareList(line int, specs []ast.VarSpec) *ast.DeclStmt {
	dtype := a.Ctx.CurrentType

	for _, spec := range specs {
		a.declareOne(dtype, spec)
	}

	a.trace(line, "declaration_list", declRHS(dtype, specs))
	return ast.NewDeclStmt(line, dtype, specs)
}

func declRHS(dtype symtab.DataType, specs []ast.VarSpec) string {
	names := make([]string, len(specs))
	for i, spec := range specs {
		if spec.Size >= 0 {
			names[i] = spec.Name + "[" + strconv.Itoa(spec.Size) + "]"
		} else {
			names[i] = spec.Name
		}
	}
	return dtype.String() + " " + strings.Join(names, ", ")
}

func (a *Analyzer) declareOne(dtype symtab.DataType, spec ast.VarSpec) {
	if _, ok := a.Table.LookupCurrentScope(spec.Name); ok {
		kind := "variable"
		if spec.Size >= 0 {
			kind = "array"
		}
		a.errorf(spec.Line, "Multiple declaration of "+kind+" "+spec.Name)
		return
	}

	if spec.Size < 0 {
		if dtype == symtab.Void {
			a.errorf(spec.Line, "variable type can not be void : "+spec.Name)
			return
		}

		a.Table.Insert(&symtab.Record{
			Name:     spec.Name,
			NodeKind: symtab.KindVariable,
			DataType: dtype,
			Line:     spec.Line,
		})
		return
	}

	a.Table.Insert(&symtab.Record{
		Name:      spec.Name,
		NodeKind:  symtab.KindArray,
		DataType:  dtype,
		ArraySize: spec.Size,
		Line:      spec.Line,
	})
}
