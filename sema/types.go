package sema

import (
	"cminor/ast"
	"cminor/symtab"
)

// Literal builds a literal node and sets its propagated type directly
// from the token kind the lexer reported (spec.md §4.4).
func (a *Analyzer) Literal(line int, text string, isFloat bool) *ast.Literal {
	lit := ast.NewLiteral(line, text)
	if isFloat {
		lit.SetType(symtab.Float)
	} else {
		lit.SetType(symtab.Int)
	}
	a.trace(line, "factor", text)
	return lit
}

// UnaryOp builds a prefix +, -, or ! application. The result inherits
// the operand's type unchanged (spec.md §4.4 — no narrowing here).
func (a *Analyzer) UnaryOp(line int, op string, operand ast.Expr) *ast.UnaryExpr {
	node := ast.NewUnaryExpr(line, op, operand, false)
	node.SetType(operand.Type())
	a.trace(line, "unary_expression", node.Text())
	return node
}

// PostfixOp builds a post-increment or post-decrement application,
// which likewise inherits the operand's type.
func (a *Analyzer) PostfixOp(line int, op string, operand ast.Expr) *ast.UnaryExpr {
	node := ast.NewUnaryExpr(line, op, operand, true)
	node.SetType(operand.Type())
	a.trace(line, "postfix_expression", node.Text())
	return node
}

// BinaryOp builds an ADDOP/MULOP/RELOP/LOGICOP application and
// computes the propagated type per spec.md §4.4, reporting the
// modulus/zero-divisor diagnostics that apply to that operator.
func (a *Analyzer) BinaryOp(line int, op string, left, right ast.Expr) *ast.BinaryExpr {
	node := ast.NewBinaryExpr(line, op, left, right)

	switch op {
	case "%":
		node.SetType(symtab.Int)
		if left.Type() != symtab.Int || right.Type() != symtab.Int {
			a.errorf(line, "Modulus operator on non integer type")
		}
		if right.Text() == "0" {
			a.errorf(line, "Modulus by 0")
		}
	case "/":
		node.SetType(arithmeticType(left.Type(), right.Type()))
		if right.Text() == "0" {
			a.errorf(line, "Division by 0")
		}
	case "+", "-", "*":
		node.SetType(arithmeticType(left.Type(), right.Type()))
	default:
		// RELOP and LOGICOP: comparison and logical results are always int.
		node.SetType(symtab.Int)
	}

	a.trace(line, binaryProduction(op), node.Text())
	return node
}

// binaryProduction names the grammar production a binary operator
// belongs to, for the reduction trace.
func binaryProduction(op string) string {
	switch op {
	case "+", "-":
		return "addop_expression"
	case "*", "/", "%":
		return "mulop_expression"
	case "&&", "||":
		return "logicop_expression"
	default:
		return "relop_expression"
	}
}

// arithmeticType implements the ADDOP/MULOP propagation law: float if
// either operand is float, int if both are int, otherwise the left
// operand's type (spec.md §4.4).
func arithmeticType(left, right symtab.DataType) symtab.DataType {
	if left == symtab.Float || right == symtab.Float {
		return symtab.Float
	}
	if left == symtab.Int && right == symtab.Int {
		return symtab.Int
	}
	return left
}

// Assign builds an assignment node and reports the type-mismatch or
// float-to-int narrowing diagnostics spec.md §4.4 requires.
func (a *Analyzer) Assign(line int, target, value ast.Expr) *ast.AssignExpr {
	node := ast.NewAssignExpr(line, target, value)
	node.SetType(target.Type())

	switch {
	case value.Type() == symtab.Void:
		a.errorf(line, "operation on void type")
	case target.Type() != value.Type():
		if target.Type() == symtab.Int && value.Type() == symtab.Float {
			a.warnf(line, "Warning: Assignment of float value into variable of integer type")
		} else {
			a.errorf(line, "Type mismatch in assignment: "+target.Type().String()+" and "+value.Type().String())
		}
	}

	a.trace(line, "assignment_expression", node.Text())
	return node
}
