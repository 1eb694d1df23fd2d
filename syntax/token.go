package syntax

// Token is a single lexical token, carrying enough of the source text
// to drive both parsing and, for operators and literals, semantic
// classification (e.g. ADDOP's actual spelling decides + vs -).
type Token struct {
	Kind  int
	Value string
	Line  int
}

// Enumeration of token kinds: the set spec.md §6 names, plus ILLEGAL
// and EOF.
const (
	IF = iota
	ELSE
	FOR
	WHILE
	DO
	BREAK
	INT
	CHAR
	FLOAT
	DOUBLE
	VOID
	RETURN
	SWITCH
	CASE
	DEFAULT
	CONTINUE
	PRINTLN

	ADDOP
	MULOP
	INCOP
	DECOP
	RELOP
	ASSIGNOP
	LOGICOP
	NOT

	LPAREN
	RPAREN
	LCURL
	RCURL
	LTHIRD
	RTHIRD
	COMMA
	SEMICOLON

	CONST_INT
	CONST_FLOAT
	ID

	// ILLEGAL marks a byte the lexer could not classify as any token in
	// the language (e.g. a lone '&' outside of '&&'). It is never
	// confused with EOF, so a loop testing p.got(EOF) does not stop
	// early on it.
	ILLEGAL

	EOF
)

var keywords = map[string]int{
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"do":       DO,
	"break":    BREAK,
	"int":      INT,
	"char":     CHAR,
	"float":    FLOAT,
	"double":   DOUBLE,
	"void":     VOID,
	"return":   RETURN,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"continue": CONTINUE,
	"println":  PRINTLN,
}
