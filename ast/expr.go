package ast

import (
	"minigo/common"
	"minigo/report"
	"minigo/types"
)

// ASTExpr is the interface for all nodes that yield a value.  In minigo every
// statement form is an expression; pure statements yield `void`.  The checker
// decorates each node with its resolved type bottom-up.
type ASTExpr interface {
	ASTNode

	// Type is the resolved type of the expression.  It is nil until the node
	// has been checked.
	Type() types.Type

	// SetType sets the resolved type of the expression.
	SetType(types.Type)
}

// ExprBase is the base struct for all expression nodes.
type ExprBase struct {
	ASTBase

	typ types.Type
}

// NewExprBase creates a new expression base with the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

func (eb *ExprBase) SetType(typ types.Type) {
	eb.typ = typ
}

/* -------------------------------------------------------------------------- */

// Enumeration of literal kinds.
const (
	LitInt = iota
	LitBool
	LitString
)

// Literal represents a single literal value.
type Literal struct {
	ExprBase

	// Kind must be one of the enumerated literal kinds.
	Kind  int
	Value string
}

// NilLit represents the `nil` literal.
type NilLit struct {
	ExprBase
}

// Identifier represents a named value.
type Identifier struct {
	ExprBase

	Name string

	// The symbol this identifier references.  Set during checking.
	Sym *common.Symbol
}

/* -------------------------------------------------------------------------- */

// Enumeration of unary operators.
const (
	UnOpNeg = iota // -x
	UnOpNot        // !x
	UnOpDeref      // *x
	UnOpAddr       // &x
)

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ExprBase

	// Op must be one of the enumerated unary operators.
	Op      int
	Operand ASTExpr
}

// Enumeration of binary operators.
const (
	BinOpAdd = iota
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpMod
	BinOpEq
	BinOpNotEq
	BinOpLt
	BinOpLtEq
	BinOpGt
	BinOpGtEq
	BinOpAnd
	BinOpOr
)

// binOpNames maps binary operators to their source representations.
var binOpNames = map[int]string{
	BinOpAdd:   "+",
	BinOpSub:   "-",
	BinOpMul:   "*",
	BinOpDiv:   "/",
	BinOpMod:   "%",
	BinOpEq:    "==",
	BinOpNotEq: "!=",
	BinOpLt:    "<",
	BinOpLtEq:  "<=",
	BinOpGt:    ">",
	BinOpGtEq:  ">=",
	BinOpAnd:   "&&",
	BinOpOr:    "||",
}

// BinOpName returns the source representation of a binary operator.
func BinOpName(op int) string {
	return binOpNames[op]
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	// Op must be one of the enumerated binary operators.
	Op       int
	Lhs, Rhs ASTExpr
}

/* -------------------------------------------------------------------------- */

// Dot represents a field access (`x.f`).  The root must check as a pointer to
// a structure.
type Dot struct {
	ExprBase

	Root      ASTExpr
	FieldName string
	FieldSpan *report.TextSpan
}

// Call is a call to a declared function.  Functions are not values in minigo,
// so the callee is always a plain name.
type Call struct {
	ExprBase

	Name     string
	NameSpan *report.TextSpan
	Args     []ASTExpr
}

// NewExpr is an application of the `new` builtin.  Its argument must be an
// identifier naming a scalar type or a declared structure.
type NewExpr struct {
	ExprBase

	Arg ASTExpr
}
