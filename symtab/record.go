// Package symtab implements the analyzer's symbol store: a per-scope
// chained hash map plus the scope stack that turns a sequence of such
// maps into a lexical-nesting path with shadowing.
package symtab

// DataType is the analyzer's static type universe.
type DataType int

const (
	// Unknown is the zero value: the type of an expression node whose
	// type has not been set. Nodes produced after a failed lookup get
	// Int as their placeholder type, not Unknown.
	Unknown DataType = iota
	Int
	Float
	Void
)

func (dt DataType) String() string {
	switch dt {
	case Int:
		return "int"
	case Float:
		return "float"
	case Void:
		return "void"
	default:
		return ""
	}
}

// NodeKind is the syntactic role a symbol record plays in the AST. It
// governs which checks apply to a lookup result.
type NodeKind int

const (
	KindVariable NodeKind = iota
	KindArray
	KindFunction
	KindExpression
	KindFactor
	KindType
	KindProgram
)

func (nk NodeKind) String() string {
	switch nk {
	case KindVariable:
		return "variable"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindExpression:
		return "expression"
	case KindFactor:
		return "factor"
	case KindType:
		return "type"
	case KindProgram:
		return "program"
	default:
		return "unknown"
	}
}

// Param is a single (type, formal-name) pair. FormalName may be empty
// for a prototype-only parameter declaration.
type Param struct {
	Type       DataType
	FormalName string
}

// Record describes one declared name. It is immutable once Insert has
// placed it in a Scope: callers that need to mutate a record's
// contents (e.g. finishing a function's parameter list) must do so
// before insertion.
type Record struct {
	Name string

	NodeKind NodeKind
	DataType DataType

	// ReturnType mirrors DataType for function records.
	ReturnType DataType

	// Parameters is set only for function records.
	Parameters []Param

	// ArraySize is set only for array records.
	ArraySize int

	// Line is the source line on which the record was declared.
	Line int
}
