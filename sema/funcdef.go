package sema

import (
	"cminor/ast"
	"cminor/symtab"
	"cminor/util"
)

// BeginFuncHeader starts a function header reduction, recording its
// name for the duplicate-parameter diagnostics that may fire while the
// parameter list is parsed (spec.md §4.5).
func (a *Analyzer) BeginFuncHeader(name string) {
	a.Ctx.CurrentFuncName = name
}

// AddParam appends one formal parameter to the header currently being
// built, reporting a duplicate-parameter diagnostic if its name
// repeats an earlier one in the same header.
func (a *Analyzer) AddParam(line int, typ symtab.DataType, name string) {
	existing := util.Map(a.Ctx.PendingFormals(), func(p symtab.Param) string { return p.FormalName })
	if util.Contains(existing, name) {
		a.errorf(line, "Multiple declaration of parameter "+name+" in a parameter of "+a.Ctx.CurrentFuncName)
		return
	}

	a.Ctx.AddFormal(symtab.Param{Type: typ, FormalName: name})
	a.trace(line, "parameter_list", typ.String()+" "+name)
}

// FinishHeader inserts the function record for the header just parsed
// (spec.md §4.5), or reports a multiple-declaration-of-function
// diagnostic if the name is already taken in the current scope.
// It returns the accumulated formal parameters for the caller to pass
// on to EnterFunctionBody, and clears the pending-formals buffer.
func (a *Analyzer) FinishHeader(line int, name string, returnType symtab.DataType) []symtab.Param {
	formals := a.Ctx.PendingFormals()

	if _, ok := a.Table.LookupCurrentScope(name); ok {
		a.errorf(line, "Multiple declaration of function "+name)
		a.Ctx.ClearFormals()
		return formals
	}

	a.Table.Insert(&symtab.Record{
		Name:       name,
		NodeKind:   symtab.KindFunction,
		ReturnType: returnType,
		DataType:   returnType,
		Parameters: formals,
		Line:       line,
	})

	a.trace(line, "function_header", returnType.String()+" "+name+"("+formalsText(formals)+")")
	a.Ctx.ClearFormals()
	return formals
}

func formalsText(formals []symtab.Param) string {
	text := ""
	for i, p := range formals {
		if i > 0 {
			text += ", "
		}
		text += p.Type.String() + " " + p.FormalName
	}
	return text
}

// EnterFunctionBody opens the function's body scope and inserts each
// named parameter as a variable record in it (spec.md §4.5).
func (a *Analyzer) EnterFunctionBody(name string, formals []symtab.Param) {
	a.Table.EnterScope()
	a.Ctx.EnterFunction(name)

	for _, p := range formals {
		if p.FormalName == "" {
			continue
		}
		a.Table.Insert(&symtab.Record{
			Name:     p.FormalName,
			NodeKind: symtab.KindVariable,
			DataType: p.Type,
		})
	}
}

// ExitFunctionBody dumps and pops the body scope and clears the
// analyzer's per-function state, then assembles the completed
// function-definition node.
func (a *Analyzer) ExitFunctionBody(line int, name string, returnType symtab.DataType, formals []symtab.Param, body *ast.Block) *ast.FuncDef {
	a.Table.ExitScope()
	a.Ctx.ExitFunction()

	params := util.Map(formals, func(p symtab.Param) ast.ParamDecl {
		return ast.ParamDecl{Type: p.Type, Name: p.FormalName}
	})

	a.trace(line, "function_definition", returnType.String()+" "+name+"("+formalsText(formals)+")")
	return ast.NewFuncDef(line, name, returnType, params, body)
}
