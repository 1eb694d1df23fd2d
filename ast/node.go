// Package ast defines the tagged-variant AST the parser builds and the
// semantic actions consume. Each concrete type below is one variant of
// spec.md §9's tagged-variant redesign of the source's single
// heterogeneous node record; pretty-printing is factored out into
// Render (render.go) rather than interleaved with construction.
package ast

import "cminor/symtab"

// Node is implemented by every AST node. Line is the source line the
// node's leading token was read from — the same line every diagnostic
// triggered while processing this node is keyed to.
type Node interface {
	Line() int
}

// Expr is a Node that carries a propagated data type, synthesized
// bottom-up by the semantic actions in package sema (spec.md §4.4).
type Expr interface {
	Node
	Type() symtab.DataType
	SetType(symtab.DataType)
	// Text is the rendered source text of the expression, used for the
	// textual literal-zero check in division/modulus (spec.md §4.4)
	// and for log reconstruction.
	Text() string
}

// exprBase factors the Line/Type/Text bookkeeping shared by every
// expression node.
type exprBase struct {
	line int
	typ  symtab.DataType
	text string
}

func (e *exprBase) Line() int                    { return e.line }
func (e *exprBase) Type() symtab.DataType        { return e.typ }
func (e *exprBase) SetType(t symtab.DataType)    { e.typ = t }
func (e *exprBase) Text() string                 { return e.text }
func newExprBase(line int, text string) exprBase { return exprBase{line: line, text: text} }

// Literal is an integer or floating-point literal.
type Literal struct {
	exprBase
}

// NewLiteral builds a literal node from its rendered source text.
func NewLiteral(line int, text string) *Literal {
	return &Literal{exprBase: newExprBase(line, text)}
}

// Ident is a bare identifier reference (spec.md §4.3).
type Ident struct {
	exprBase
	Name string
}

// NewIdent builds an identifier reference node.
func NewIdent(line int, name string) *Ident {
	return &Ident{exprBase: newExprBase(line, name), Name: name}
}

// IndexExpr is an indexed array reference: id [ expression ].
type IndexExpr struct {
	exprBase
	Name  string
	Index Expr
}

// NewIndexExpr builds an indexed array reference node.
func NewIndexExpr(line int, name string, index Expr) *IndexExpr {
	text := name + "[" + index.Text() + "]"
	return &IndexExpr{exprBase: newExprBase(line, text), Name: name, Index: index}
}

// UnaryExpr is a prefix unary operator application, or a postfix
// increment/decrement.
type UnaryExpr struct {
	exprBase
	Op       string
	Operand  Expr
	IsPostOp bool
}

// NewUnaryExpr builds a unary operator application node.
func NewUnaryExpr(line int, op string, operand Expr, isPostOp bool) *UnaryExpr {
	text := op + operand.Text()
	if isPostOp {
		text = operand.Text() + op
	}
	return &UnaryExpr{exprBase: newExprBase(line, text), Op: op, Operand: operand, IsPostOp: isPostOp}
}

// BinaryExpr is a binary operator application (ADDOP, MULOP, RELOP,
// LOGICOP).
type BinaryExpr struct {
	exprBase
	Op          string
	Left, Right Expr
}

// NewBinaryExpr builds a binary operator application node.
func NewBinaryExpr(line int, op string, left, right Expr) *BinaryExpr {
	text := left.Text() + " " + op + " " + right.Text()
	return &BinaryExpr{exprBase: newExprBase(line, text), Op: op, Left: left, Right: right}
}

// AssignExpr is a variable-or-index target assigned an expression.
type AssignExpr struct {
	exprBase
	Target Expr
	Value  Expr
}

// NewAssignExpr builds an assignment node.
func NewAssignExpr(line int, target, value Expr) *AssignExpr {
	text := target.Text() + " = " + value.Text()
	return &AssignExpr{exprBase: newExprBase(line, text), Target: target, Value: value}
}

// CallExpr is a function call.
type CallExpr struct {
	exprBase
	Callee string
	Args   []Expr
}

// NewCallExpr builds a function-call node.
func NewCallExpr(line int, callee string, args []Expr) *CallExpr {
	text := callee + "("
	for i, a := range args {
		if i > 0 {
			text += ", "
		}
		text += a.Text()
	}
	text += ")"
	return &CallExpr{exprBase: newExprBase(line, text), Callee: callee, Args: args}
}

// ParamDecl is one formal parameter in a function header.
type ParamDecl struct {
	Type symtab.DataType
	Name string
}

// VarSpec is one entry of a declaration list: either a plain variable
// or an array, distinguished by Size >= 0.
type VarSpec struct {
	Name string
	Size int // -1 for a plain variable, >= 0 for an array
	Line int
}

// DeclStmt declares one or more variables/arrays of a shared type.
type DeclStmt struct {
	line int
	Type symtab.DataType
	Vars []VarSpec
}

func (d *DeclStmt) Line() int { return d.line }

// NewDeclStmt builds a declaration-list statement node.
func NewDeclStmt(line int, dtype symtab.DataType, vars []VarSpec) *DeclStmt {
	return &DeclStmt{line: line, Type: dtype, Vars: vars}
}

// PrintStmt is a `printf(id)` statement.
type PrintStmt struct {
	line int
	Name string
}

func (p *PrintStmt) Line() int { return p.line }

// NewPrintStmt builds a printf(id) statement node.
func NewPrintStmt(line int, name string) *PrintStmt {
	return &PrintStmt{line: line, Name: name}
}

// ReturnStmt is a `return expression` statement.
type ReturnStmt struct {
	line int
	Expr Expr
}

func (r *ReturnStmt) Line() int { return r.line }

// NewReturnStmt builds a return statement node. expr is nil for a
// bare `return;`.
func NewReturnStmt(line int, expr Expr) *ReturnStmt {
	return &ReturnStmt{line: line, Expr: expr}
}

// ExprStmt wraps a bare expression used as a statement (an assignment
// or call, most commonly).
type ExprStmt struct {
	line int
	Expr Expr
}

func (e *ExprStmt) Line() int { return e.line }

// NewExprStmt wraps an expression used as a statement.
func NewExprStmt(line int, expr Expr) *ExprStmt {
	return &ExprStmt{line: line, Expr: expr}
}

// Block is a brace-delimited statement sequence. Only a function body's
// block is analyzed in a scope of its own (sema's EnterFunctionBody);
// nested blocks, including if/while/for bodies, share the enclosing
// scope.
type Block struct {
	line  int
	Stmts []Node
}

func (b *Block) Line() int { return b.line }

// NewBlock builds a brace-delimited statement sequence.
func NewBlock(line int, stmts []Node) *Block {
	return &Block{line: line, Stmts: stmts}
}

// IfStmt is an if/else conditional.
type IfStmt struct {
	line int
	Cond Expr
	Then *Block
	Else Node // *Block or *IfStmt (else-if chain), or nil
}

func (i *IfStmt) Line() int { return i.line }

// NewIfStmt builds an if/else conditional node. elseBranch is nil, a
// *Block, or a nested *IfStmt for an else-if chain.
func NewIfStmt(line int, cond Expr, then *Block, elseBranch Node) *IfStmt {
	return &IfStmt{line: line, Cond: cond, Then: then, Else: elseBranch}
}

// WhileStmt is a while loop.
type WhileStmt struct {
	line int
	Cond Expr
	Body *Block
}

func (w *WhileStmt) Line() int { return w.line }

// NewWhileStmt builds a while-loop node.
func NewWhileStmt(line int, cond Expr, body *Block) *WhileStmt {
	return &WhileStmt{line: line, Cond: cond, Body: body}
}

// ForStmt is a C-style for loop.
type ForStmt struct {
	line int
	Init Node // *ExprStmt or *DeclStmt, may be nil
	Cond Expr // may be nil
	Post Expr // may be nil
	Body *Block
}

func (f *ForStmt) Line() int { return f.line }

// NewForStmt builds a C-style for-loop node. init, cond, and post may
// each be nil for the corresponding omitted clause.
func NewForStmt(line int, init Node, cond, post Expr, body *Block) *ForStmt {
	return &ForStmt{line: line, Init: init, Cond: cond, Post: post, Body: body}
}

// FuncDef is a function definition.
type FuncDef struct {
	line       int
	Name       string
	ReturnType symtab.DataType
	Params     []ParamDecl
	Body       *Block
}

func (f *FuncDef) Line() int { return f.line }

// NewFuncDef builds a function definition node.
func NewFuncDef(line int, name string, returnType symtab.DataType, params []ParamDecl, body *Block) *FuncDef {
	return &FuncDef{line: line, Name: name, ReturnType: returnType, Params: params, Body: body}
}

// Program is the root node: a sequence of top-level declarations and
// function definitions.
type Program struct {
	Decls []Node
}

func (p *Program) Line() int { return 0 }
