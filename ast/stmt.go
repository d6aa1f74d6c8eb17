package ast

import (
	"minigo/common"
	"minigo/report"
)

// Block is a brace-delimited statement sequence.  Its type is the type of its
// final statement, or `void` if it is empty; every other statement must have
// type `void`.
type Block struct {
	ExprBase

	Stmts []ASTExpr
}

// IfExpr represents an if/else tree.  Both branches must yield structurally
// equal types; that common type becomes the type of the whole expression.
// Else may be a *Block, another *IfExpr, or nil.
type IfExpr struct {
	ExprBase

	Cond ASTExpr
	Then *Block
	Else ASTExpr
}

// ForLoop represents a condition-only `for` loop.
type ForLoop struct {
	ExprBase

	Cond ASTExpr
	Body *Block
}

/* -------------------------------------------------------------------------- */

// VarDecl represents a variable declaration, either with an explicit declared
// type (`var x T = e`, `var x T`) or with inferred types (`x := e`).
type VarDecl struct {
	ExprBase

	// The declared names, in order.  `_` discards the matching value.
	Names     []string
	NameSpans []*report.TextSpan

	// The declared type.  Nil when the types are inferred from initializers.
	DeclType TypeExpr

	// The initializer expressions.  May be empty only when DeclType is set.
	Inits []ASTExpr

	// The symbols bound for each name.  Set during checking; entries matching
	// `_` are nil.
	Syms []*common.Symbol
}

// Assign represents a single assignment `lvalue = expr`.
type Assign struct {
	ExprBase

	Lhs, Rhs ASTExpr
}

// Enumeration of increment/decrement operators.
const (
	OpInc = iota // x++
	OpDec        // x--
)

// IncDecStmt represents an increment or decrement statement.  The operand
// must be an addressable int.
type IncDecStmt struct {
	ExprBase

	// Op must be one of the enumerated increment/decrement operators.
	Op      int
	Operand ASTExpr
}

// ReturnStmt represents a return statement with zero or more result values.
type ReturnStmt struct {
	ExprBase

	Exprs []ASTExpr
}

// PrintStmt is an application of the `fmt.Print` builtin.  It accepts any
// argument list but requires the unit to import fmt.
type PrintStmt struct {
	ExprBase

	Args []ASTExpr
}

// SkipStmt is the empty statement.
type SkipStmt struct {
	ExprBase
}
