package sema

import (
	"cminor/ast"
	"cminor/symtab"
)

// CheckCondition validates an if/while/for condition expression
// (spec.md §4.7): a void-typed condition (a void function called as
// part of an expression) is illegal.
func (a *Analyzer) CheckCondition(line int, cond ast.Expr) {
	if cond.Type() == symtab.Void {
		a.errorf(line, "A void function cannot be called as a part of an expression")
	}
}

// If builds an if/else statement node, checking the condition first.
func (a *Analyzer) If(line int, cond ast.Expr, then *ast.Block, elseBranch ast.Node) *ast.IfStmt {
	a.CheckCondition(line, cond)
	a.trace(line, "if_statement", cond.Text())
	return ast.NewIfStmt(line, cond, then, elseBranch)
}

// While builds a while-loop statement node, checking the condition
// first.
func (a *Analyzer) While(line int, cond ast.Expr, body *ast.Block) *ast.WhileStmt {
	a.CheckCondition(line, cond)
	a.trace(line, "while_statement", cond.Text())
	return ast.NewWhileStmt(line, cond, body)
}

// For builds a C-style for-loop statement node. cond and post may be
// nil for an omitted clause; both are checked for void-in-expression
// use when present (spec.md §4.7).
func (a *Analyzer) For(line int, init ast.Node, cond, post ast.Expr, body *ast.Block) *ast.ForStmt {
	if cond != nil {
		a.CheckCondition(line, cond)
	}
	if post != nil {
		a.CheckCondition(line, post)
	}
	a.trace(line, "for_statement", "")
	return ast.NewForStmt(line, init, cond, post, body)
}

// Print builds a printf(id) statement node, reporting an undeclared-
// variable diagnostic if id has no visible declaration (spec.md
// §4.7). No type restriction applies beyond declaration.
func (a *Analyzer) Print(line int, name string) *ast.PrintStmt {
	if _, ok := a.Table.Lookup(name); !ok {
		a.errorf(line, "Undeclared variable: "+name)
	}
	a.trace(line, "printf_statement", name)
	return ast.NewPrintStmt(line, name)
}

// Return builds a return statement node, recording the expression
// verbatim: no return-type compatibility check is required (spec.md
// §4.7, §9).
func (a *Analyzer) Return(line int, expr ast.Expr) *ast.ReturnStmt {
	rhs := ""
	if expr != nil {
		rhs = expr.Text()
	}
	a.trace(line, "return_statement", rhs)
	return ast.NewReturnStmt(line, expr)
}
