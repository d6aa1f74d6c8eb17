package depm

import (
	"minigo/ast"
	"minigo/common"
	"minigo/types"
)

// Unit is one parsed compilation unit as delivered by the parser: the untyped
// top-level declarations plus the fmt import flag.
type Unit struct {
	// The representative name of the unit, used to label diagnostics.
	Name string

	// The absolute path to the unit's source file, used to print source
	// excerpts.  May be empty.
	AbsPath string

	// Whether the unit's source imported fmt.
	ImportsFmt bool

	// The top-level declarations in source order.
	Defs []ast.Def
}

// Function is a resolved function definition.
type Function struct {
	// The function's declared name.
	Name string

	// The function's parameters as fresh variable bindings owned by the
	// function's body scope.
	Params []*common.Symbol

	// The flattened declared result types.
	ReturnTypes []types.Type
}

// ParamTypes returns the types of the function's parameters in order.
func (fn *Function) ParamTypes() []types.Type {
	typs := make([]types.Type, len(fn.Params))
	for i, param := range fn.Params {
		typs[i] = param.Type
	}

	return typs
}

// CheckedDef is one fully typed top-level declaration produced by semantic
// analysis: either a frozen structure type or a resolved function paired with
// its typed body.
type CheckedDef struct {
	// The resolved structure.  Nil for function declarations.
	Struct *types.StructType

	// The resolved function and its typed body.  Nil for structures.
	Func *Function
	Body *ast.Block
}
