// Package sema implements the semantic action dispatcher: one method
// per grammar production, driven by the parser at each reduction. It
// owns the analysis context (spec.md §3) and delegates symbol storage
// to package symtab and diagnostics to package report.
package sema

import (
	"cminor/ast"
	"cminor/symtab"
)

// argFrame is one saved (formal or argument) accumulation buffer.
// Context keeps a stack of these so a nested call, e.g. f(g(x)), does
// not corrupt the enclosing call's argument list — see SPEC_FULL.md's
// "Open Questions — decisions" for why this departs from the source's
// single shared buffer.
type argFrame struct {
	formals   []symtab.Param
	arguments []ast.Expr
}

// Context is the analysis-context state threaded across grammar
// reductions (spec.md §3's "analysis context"), gathered into one
// value per spec.md §9's re-architecture guidance rather than left as
// global mutable state.
type Context struct {
	// CurrentType is set by a type_specifier reduction and consumed by
	// the next declaration_list element.
	CurrentType symtab.DataType

	// CurrentFuncName names the function currently being defined; used
	// in duplicate-parameter diagnostics.
	CurrentFuncName string

	stack []argFrame
}

// NewContext creates an analysis context with one argument frame ready
// for top-level use (so PendingFormals/PendingArguments are always
// valid without a nil check).
func NewContext() *Context {
	c := &Context{}
	c.stack = []argFrame{{}}
	return c
}

func (c *Context) top() *argFrame {
	return &c.stack[len(c.stack)-1]
}

// PendingFormals is the accumulating parameter list for the function
// header currently being parsed.
func (c *Context) PendingFormals() []symtab.Param {
	return c.top().formals
}

// AddFormal appends a formal parameter to the current header's list.
func (c *Context) AddFormal(p symtab.Param) {
	f := c.top()
	f.formals = append(f.formals, p)
}

// ClearFormals empties the current formal-parameter buffer. Called
// once a function header has been inserted (spec.md §4.5).
func (c *Context) ClearFormals() {
	c.top().formals = nil
}

// PendingArguments is the accumulating argument list for the call
// currently being parsed.
func (c *Context) PendingArguments() []ast.Expr {
	return c.top().arguments
}

// AddArgument appends an already-walked call argument to the current
// call's buffer.
func (c *Context) AddArgument(arg ast.Expr) {
	f := c.top()
	f.arguments = append(f.arguments, arg)
}

// ClearArguments empties the current argument buffer. FinishCall does
// not call it: it discards the call's whole frame with PopArgFrame.
func (c *Context) ClearArguments() {
	c.top().arguments = nil
}

// PushArgFrame opens a fresh, independent formal/argument buffer for a
// nested call's argument list, e.g. when walking f(g(x))'s inner call
// g(x) while f's own argument buffer is still being accumulated.
func (c *Context) PushArgFrame() {
	c.stack = append(c.stack, argFrame{})
}

// PopArgFrame discards the innermost buffer, restoring the enclosing
// call's in-progress argument list.
func (c *Context) PopArgFrame() {
	c.stack = c.stack[:len(c.stack)-1]
}

// EnterFunction records the name of the function whose body is about
// to be walked.
func (c *Context) EnterFunction(name string) {
	c.CurrentFuncName = name
}

// ExitFunction clears per-function state once a function's body has
// been fully walked.
func (c *Context) ExitFunction() {
	c.CurrentFuncName = ""
}
