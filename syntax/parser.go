// Package syntax is the analyzer's external collaborator: a lexer and
// a recursive-descent parser for exactly the token/production set the
// language defines. Parsing itself is out of scope as a specified
// component; this package exists only so the driver and the
// end-to-end scenario tests have something that actually produces an
// AST by invoking sema.Analyzer's semantic actions at each reduction.
package syntax

import (
	"io"
	"strconv"

	"cminor/ast"
	"cminor/sema"
	"cminor/symtab"
)

// Parser drives an Analyzer by walking tokens left to right and
// calling its semantic actions at each reduction, mirroring a
// hand-written recursive-descent parser's tok/next/got/
// assertAndNext shape.
type Parser struct {
	lexer *Lexer
	tok   *Token
	a     *sema.Analyzer
}

// NewParser creates a parser reading source from r and driving a.
func NewParser(r io.Reader, a *sema.Analyzer) *Parser {
	p := &Parser{lexer: NewLexer(r), a: a}
	p.next()
	return p
}

func (p *Parser) next() {
	p.tok = p.lexer.NextToken()
}

func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// assertAndNext consumes the current token if it matches kind and
// advances, otherwise leaves the parser positioned where it is; a
// malformed token stream is not this package's concern to diagnose in
// depth, only to not hang on.
func (p *Parser) assertAndNext(kind int) bool {
	if p.got(kind) {
		p.next()
		return true
	}
	return false
}

// Parse consumes the whole token stream and returns the resulting
// program.
func (p *Parser) Parse() *ast.Program {
	var decls []ast.Node

	for !p.got(EOF) {
		before := p.tok
		decls = append(decls, p.parseTopLevel())
		if p.tok == before {
			// Nothing was consumed; avoid looping forever on malformed
			// input by skipping the offending token.
			p.next()
		}
	}

	return p.a.Program(decls)
}

func (p *Parser) parseTopLevel() ast.Node {
	line := p.tok.Line
	typ := p.parseTypeSpecifier()

	name := p.tok.Value
	p.assertAndNext(ID)

	if p.got(LPAREN) {
		return p.parseFuncDef(line, typ, name)
	}

	return p.parseDeclTail(line, name)
}

func (p *Parser) parseTypeSpecifier() symtab.DataType {
	line := p.tok.Line

	var t symtab.DataType
	switch p.tok.Kind {
	case INT:
		t = symtab.Int
	case FLOAT:
		t = symtab.Float
	case VOID:
		t = symtab.Void
	default:
		t = symtab.Int
	}
	p.next()

	p.a.TypeSpecifier(line, t)
	return t
}

// parseDeclTail parses the remainder of a declaration list whose type
// and first name have already been consumed. The declared type itself
// was already handed to the analyzer by parseTypeSpecifier.
func (p *Parser) parseDeclTail(line int, firstName string) *ast.DeclStmt {
	var specs []ast.VarSpec
	specs = append(specs, p.parseVarSpecTail(line, firstName))

	for p.assertAndNext(COMMA) {
		nameLine := p.tok.Line
		name := p.tok.Value
		p.assertAndNext(ID)
		specs = append(specs, p.parseVarSpecTail(nameLine, name))
	}

	p.assertAndNext(SEMICOLON)
	return p.a.DeclareList(line, specs)
}

// parseVarSpecTail handles the optional `[ const_int ]` suffix of one
// declaration-list entry whose name has already been consumed.
func (p *Parser) parseVarSpecTail(line int, name string) ast.VarSpec {
	if !p.assertAndNext(LTHIRD) {
		return ast.VarSpec{Name: name, Size: -1, Line: line}
	}

	size, _ := strconv.Atoi(p.tok.Value)
	p.assertAndNext(CONST_INT)
	p.assertAndNext(RTHIRD)

	return ast.VarSpec{Name: name, Size: size, Line: line}
}

func (p *Parser) parseFuncDef(line int, returnType symtab.DataType, name string) *ast.FuncDef {
	p.a.BeginFuncHeader(name)
	p.assertAndNext(LPAREN)

	if !p.got(RPAREN) {
		p.parseParam()
		for p.assertAndNext(COMMA) {
			p.parseParam()
		}
	}
	p.assertAndNext(RPAREN)

	formals := p.a.FinishHeader(line, name, returnType)
	p.a.EnterFunctionBody(name, formals)

	body := p.parseCompoundStmt()

	return p.a.ExitFunctionBody(line, name, returnType, formals, body)
}

func (p *Parser) parseParam() {
	line := p.tok.Line
	typ := p.parseTypeSpecifier()
	name := p.tok.Value
	p.assertAndNext(ID)
	p.a.AddParam(line, typ, name)
}

func (p *Parser) parseCompoundStmt() *ast.Block {
	line := p.tok.Line
	p.assertAndNext(LCURL)

	var stmts []ast.Node
	for !p.got(RCURL) && !p.got(EOF) {
		before := p.tok
		stmts = append(stmts, p.parseStmt())
		if p.tok == before {
			p.next()
		}
	}
	p.assertAndNext(RCURL)

	return ast.NewBlock(line, stmts)
}

func (p *Parser) parseStmt() ast.Node {
	switch p.tok.Kind {
	case INT, FLOAT, VOID:
		line := p.tok.Line
		p.parseTypeSpecifier()
		name := p.tok.Value
		p.assertAndNext(ID)
		return p.parseDeclTail(line, name)
	case PRINTLN:
		line := p.tok.Line
		p.next()
		p.assertAndNext(LPAREN)
		name := p.tok.Value
		p.assertAndNext(ID)
		p.assertAndNext(RPAREN)
		p.assertAndNext(SEMICOLON)
		return p.a.Print(line, name)
	case RETURN:
		line := p.tok.Line
		p.next()
		if p.got(SEMICOLON) {
			p.next()
			return p.a.Return(line, nil)
		}
		expr := p.parseExpr()
		p.assertAndNext(SEMICOLON)
		return p.a.Return(line, expr)
	case IF:
		return p.parseIfStmt()
	case WHILE:
		return p.parseWhileStmt()
	case FOR:
		return p.parseForStmt()
	case LCURL:
		return p.parseCompoundStmt()
	default:
		line := p.tok.Line
		expr := p.parseExpr()
		p.assertAndNext(SEMICOLON)
		return ast.NewExprStmt(line, expr)
	}
}

func (p *Parser) parseIfStmt() ast.Node {
	line := p.tok.Line
	p.next()
	p.assertAndNext(LPAREN)
	cond := p.parseExpr()
	p.assertAndNext(RPAREN)
	then := p.parseCompoundStmt()

	var elseBranch ast.Node
	if p.assertAndNext(ELSE) {
		if p.got(IF) {
			elseBranch = p.parseIfStmt()
		} else {
			elseBranch = p.parseCompoundStmt()
		}
	}

	return p.a.If(line, cond, then, elseBranch)
}

func (p *Parser) parseWhileStmt() ast.Node {
	line := p.tok.Line
	p.next()
	p.assertAndNext(LPAREN)
	cond := p.parseExpr()
	p.assertAndNext(RPAREN)
	body := p.parseCompoundStmt()

	return p.a.While(line, cond, body)
}

func (p *Parser) parseForStmt() ast.Node {
	line := p.tok.Line
	p.next()
	p.assertAndNext(LPAREN)

	var init ast.Node
	if !p.got(SEMICOLON) {
		if p.got(INT) || p.got(FLOAT) || p.got(VOID) {
			declLine := p.tok.Line
			p.parseTypeSpecifier()
			name := p.tok.Value
			p.assertAndNext(ID)
			specs := []ast.VarSpec{p.parseVarSpecTail(declLine, name)}
			init = p.a.DeclareList(declLine, specs)
		} else {
			exprLine := p.tok.Line
			init = ast.NewExprStmt(exprLine, p.parseExpr())
		}
	}
	p.assertAndNext(SEMICOLON)

	var cond ast.Expr
	if !p.got(SEMICOLON) {
		cond = p.parseExpr()
	}
	p.assertAndNext(SEMICOLON)

	var post ast.Expr
	if !p.got(RPAREN) {
		post = p.parseExpr()
	}
	p.assertAndNext(RPAREN)

	body := p.parseCompoundStmt()

	return p.a.For(line, init, cond, post, body)
}

// -----------------------------------------------------------------------------
// Expressions, lowest to highest precedence: assignment, logical,
// relational, additive, multiplicative, unary, postfix, primary.

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssign()
}

func (p *Parser) parseAssign() ast.Expr {
	left := p.parseLogical()

	if p.got(ASSIGNOP) {
		line := p.tok.Line
		p.next()
		value := p.parseAssign()
		return p.a.Assign(line, left, value)
	}

	return left
}

func (p *Parser) parseLogical() ast.Expr {
	left := p.parseRelational()

	for p.got(LOGICOP) {
		op := p.tok.Value
		line := p.tok.Line
		p.next()
		right := p.parseRelational()
		left = p.a.BinaryOp(line, op, left, right)
	}

	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()

	for p.got(RELOP) {
		op := p.tok.Value
		line := p.tok.Line
		p.next()
		right := p.parseAdditive()
		left = p.a.BinaryOp(line, op, left, right)
	}

	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()

	for p.got(ADDOP) {
		op := p.tok.Value
		line := p.tok.Line
		p.next()
		right := p.parseMultiplicative()
		left = p.a.BinaryOp(line, op, left, right)
	}

	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()

	for p.got(MULOP) {
		op := p.tok.Value
		line := p.tok.Line
		p.next()
		right := p.parseUnary()
		left = p.a.BinaryOp(line, op, left, right)
	}

	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.got(ADDOP) || p.got(NOT) {
		op := p.tok.Value
		line := p.tok.Line
		p.next()
		operand := p.parseUnary()
		return p.a.UnaryOp(line, op, operand)
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()

	if p.got(INCOP) || p.got(DECOP) {
		op := p.tok.Value
		line := p.tok.Line
		p.next()
		return p.a.PostfixOp(line, op, expr)
	}

	return expr
}

func (p *Parser) parsePrimary() ast.Expr {
	line := p.tok.Line

	switch p.tok.Kind {
	case CONST_INT:
		text := p.tok.Value
		p.next()
		return p.a.Literal(line, text, false)
	case CONST_FLOAT:
		text := p.tok.Value
		p.next()
		return p.a.Literal(line, text, true)
	case LPAREN:
		p.next()
		inner := p.parseExpr()
		p.assertAndNext(RPAREN)
		return inner
	case ID:
		name := p.tok.Value
		p.next()

		switch {
		case p.got(LTHIRD):
			p.next()
			index := p.parseExpr()
			p.assertAndNext(RTHIRD)
			return p.a.Index(line, name, index)
		case p.got(LPAREN):
			p.next()
			p.a.BeginCall()
			if !p.got(RPAREN) {
				p.a.AddCallArg(p.parseExpr())
				for p.assertAndNext(COMMA) {
					p.a.AddCallArg(p.parseExpr())
				}
			}
			p.assertAndNext(RPAREN)
			return p.a.FinishCall(line, name)
		default:
			return p.a.Ident(line, name)
		}
	default:
		p.next()
		return p.a.Literal(line, "0", false)
	}
}
