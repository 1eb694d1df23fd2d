package sema

import (
	"cminor/ast"
	"cminor/symtab"
	"strconv"
)

// BeginCall opens a fresh argument-accumulation frame for the call
// about to be parsed. Calls nest (e.g. f(g(x))'s inner call g(x)):
// each nested call gets its own frame so walking it cannot corrupt the
// enclosing call's in-progress argument list.
func (a *Analyzer) BeginCall() {
	a.Ctx.PushArgFrame()
}

// AddCallArg appends one already-walked argument expression to the
// innermost open call frame.
func (a *Analyzer) AddCallArg(arg ast.Expr) {
	a.Ctx.AddArgument(arg)
}

// FinishCall closes the innermost call frame and checks the call
// against the callee's signature (spec.md §4.6).
func (a *Analyzer) FinishCall(line int, name string) *ast.CallExpr {
	args := a.Ctx.PendingArguments()
	a.Ctx.PopArgFrame()

	node := ast.NewCallExpr(line, name, args)

	rec, ok := a.Table.Lookup(name)
	switch {
	case !ok:
		a.errorf(line, "Undeclared function: "+name)
		node.SetType(symtab.Int)
		a.trace(line, "call_expression", node.Text())
		return node
	case rec.NodeKind != symtab.KindFunction:
		a.errorf(line, "A function call cannot be made with non-function type identifier: "+name)
		node.SetType(symtab.Int)
		a.trace(line, "call_expression", node.Text())
		return node
	}

	if len(args) != len(rec.Parameters) {
		a.errorf(line, "Inconsistencies in number of arguments in function call: "+name)
	} else {
		for i, param := range rec.Parameters {
			if args[i].Type() != param.Type {
				a.errorf(line, "argument "+strconv.Itoa(i+1)+" type mismatch in function call: "+name)
			}
		}
	}

	node.SetType(rec.ReturnType)
	a.trace(line, "call_expression", node.Text())
	return node
}
