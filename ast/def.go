package ast

import "minigo/report"

// Def is the interface for all top-level declarations.
type Def interface {
	ASTNode

	// DefName is the declared name of the definition.
	DefName() string
}

// StructDef is a structure declaration.
type StructDef struct {
	ASTBase

	Name     string
	NameSpan *report.TextSpan
	Fields   []FieldDecl
}

// FieldDecl is one field of a structure declaration.
type FieldDecl struct {
	Name string
	Span *report.TextSpan
	Type TypeExpr
}

func (sd *StructDef) DefName() string {
	return sd.Name
}

// FuncDef is a function declaration.
type FuncDef struct {
	ASTBase

	Name        string
	NameSpan    *report.TextSpan
	Params      []ParamDecl
	ReturnTypes []TypeExpr
	Body        *Block
}

// ParamDecl is one parameter of a function declaration.
type ParamDecl struct {
	Name string
	Span *report.TextSpan
	Type TypeExpr
}

func (fd *FuncDef) DefName() string {
	return fd.Name
}
