package ast

import (
	"strconv"
	"strings"
)

// Render reconstructs a readable source-text rendition of a program,
// kept separate from parsing/analysis per spec.md §9's guidance to
// split "pretty-printing interleaved with analysis" into its own
// renderer.
func Render(prog *Program) string {
	var b strings.Builder

	for _, decl := range prog.Decls {
		renderNode(&b, decl, 0)
		b.WriteString("\n")
	}

	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("    ", depth))
}

func renderNode(b *strings.Builder, n Node, depth int) {
	switch v := n.(type) {
	case *DeclStmt:
		indent(b, depth)
		b.WriteString(v.Type.String() + " ")
		for i, spec := range v.Vars {
			if i > 0 {
				b.WriteString(", ")
			}
			if spec.Size >= 0 {
				b.WriteString(spec.Name + "[" + strconv.Itoa(spec.Size) + "]")
			} else {
				b.WriteString(spec.Name)
			}
		}
		b.WriteString(";\n")
	case *ExprStmt:
		indent(b, depth)
		b.WriteString(v.Expr.Text() + ";\n")
	case *PrintStmt:
		indent(b, depth)
		b.WriteString("printf(" + v.Name + ");\n")
	case *ReturnStmt:
		indent(b, depth)
		if v.Expr == nil {
			b.WriteString("return;\n")
		} else {
			b.WriteString("return " + v.Expr.Text() + ";\n")
		}
	case *Block:
		indent(b, depth)
		b.WriteString("{\n")
		for _, s := range v.Stmts {
			renderNode(b, s, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	case *IfStmt:
		indent(b, depth)
		b.WriteString("if (" + v.Cond.Text() + ")\n")
		renderNode(b, v.Then, depth)
		if v.Else != nil {
			indent(b, depth)
			b.WriteString("else\n")
			renderNode(b, v.Else, depth)
		}
	case *WhileStmt:
		indent(b, depth)
		b.WriteString("while (" + v.Cond.Text() + ")\n")
		renderNode(b, v.Body, depth)
	case *ForStmt:
		indent(b, depth)
		b.WriteString("for (...)\n")
		renderNode(b, v.Body, depth)
	case *FuncDef:
		indent(b, depth)
		b.WriteString(v.ReturnType.String() + " " + v.Name + "(")
		for i, p := range v.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.Type.String() + " " + p.Name)
		}
		b.WriteString(")\n")
		renderNode(b, v.Body, depth)
	}
}
