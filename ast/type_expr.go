package ast

// TypeExpr is the surface grammar of declared types: a type name or a pointer
// to another declared type.
type TypeExpr interface {
	ASTNode

	typeExpr()
}

// NamedTypeExpr references a type by name: `int`, `bool`, `string`, or the
// name of a declared structure.
type NamedTypeExpr struct {
	ASTBase

	Name string
}

func (nte *NamedTypeExpr) typeExpr() {}

// PointerTypeExpr is a pointer to another declared type: `*T`.
type PointerTypeExpr struct {
	ASTBase

	Elem TypeExpr
}

func (pte *PointerTypeExpr) typeExpr() {}
