package sema

import (
	"strconv"

	"cminor/ast"
	"cminor/report"
	"cminor/symtab"
)

// Analyzer is the semantic action dispatcher: the parser invokes one
// method per grammar reduction, and each method consumes already-built
// child nodes to produce a parent node, mutating the symbol table and
// reporting diagnostics along the way (spec.md §2 item 6).
type Analyzer struct {
	Table    *symtab.Table
	Ctx      *Context
	Reporter *report.Reporter
}

// NewAnalyzer creates an analyzer with a fresh global scope and
// analysis context. bucketCount of 0 selects symtab.DefaultBucketCount.
func NewAnalyzer(bucketCount int, r *report.Reporter) *Analyzer {
	return &Analyzer{
		Table:    symtab.New(bucketCount, r),
		Ctx:      NewContext(),
		Reporter: r,
	}
}

func (a *Analyzer) errorf(line int, msg string) {
	a.Reporter.Report(report.Diagnostic{Kind: report.Error, Line: line, Message: msg})
}

func (a *Analyzer) warnf(line int, msg string) {
	a.Reporter.Report(report.Diagnostic{Kind: report.Warning, Line: line, Message: msg})
}

// trace records one grammar reduction to the log stream, in the exact
// "At line no: <N> <production> : <rhs>" format spec.md §6 pins down
// for *_log.txt. Called once per semantic action, as the reduction it
// corresponds to fires.
func (a *Analyzer) trace(line int, production, rhs string) {
	a.Reporter.WriteLog("At line no: " + strconv.Itoa(line) + " " + production + " : " + rhs)
}

// Program finishes a run: every still-open scope beyond the global one
// is an internal-use error (the parser must balance enter/exit calls
// per statement), so only the global scope is left to dump.
func (a *Analyzer) Program(decls []ast.Node) *ast.Program {
	a.Table.PrintCurrentScope()
	return &ast.Program{Decls: decls}
}
