package walk

import (
	"minigo/ast"
	"minigo/common"
	"minigo/depm"
	"minigo/report"
	"minigo/types"
)

// Walker is responsible for walking the definitions of a compilation unit and
// performing semantic analysis on them.  Every walk method either decorates
// the AST it was given and returns whether the walked node definitely
// returns, or fails with the first compile error it finds.
type Walker struct {
	// The compilation unit being walked.
	unit *depm.Unit

	// The declaration tables of the unit.
	res *depm.Resolver

	// The stack of local scopes used to look up variable bindings.
	localScopes []map[string]*common.Symbol

	// The flattened declared result types of the enclosing function.
	enclosingReturnTypes []types.Type

	// Whether the print builtin was invoked anywhere in the unit.
	printUsed bool
}

// walkFuncBody walks a function body in a fresh scope holding the function's
// parameters.  It returns whether the body definitely returns.
func (w *Walker) walkFuncBody(fn *depm.Function, body *ast.Block) (bool, error) {
	w.pushScope()
	defer w.popScope()

	for _, paramSym := range fn.Params {
		w.defineLocal(paramSym)
	}

	w.enclosingReturnTypes = fn.ReturnTypes
	defer func() {
		w.enclosingReturnTypes = nil
	}()

	return w.walkExpr(body)
}

/* -------------------------------------------------------------------------- */

// lookup looks up a variable binding by name in all visible scopes.  Reading
// the discard name is illegal, and an unbound name is an error.
func (w *Walker) lookup(name string, span *report.TextSpan) (*common.Symbol, error) {
	if name == "_" {
		return nil, report.Raise(span, "cannot use `_` as a value")
	}

	// Traverse local scopes in reverse order to implement shadowing.
	for i := len(w.localScopes) - 1; i > -1; i-- {
		if sym, ok := w.localScopes[i][name]; ok {
			return sym, nil
		}
	}

	return nil, report.Raise(span, "undefined variable: `%s`", name)
}

// defineLocal defines a variable binding in the current local scope.  A
// binding by the same name is shadowed, never rejected: every declaration
// creates a fresh binding.  The discard name is never bound.
func (w *Walker) defineLocal(sym *common.Symbol) {
	if sym.Name == "_" {
		return
	}

	w.localScopes[len(w.localScopes)-1][sym.Name] = sym
}

// pushScope pushes a new local scope onto the scope stack.
func (w *Walker) pushScope() {
	w.localScopes = append(w.localScopes, make(map[string]*common.Symbol))
}

// popScope removes the top local scope from the scope stack.
func (w *Walker) popScope() {
	w.localScopes = w.localScopes[:len(w.localScopes)-1]
}

/* -------------------------------------------------------------------------- */

// isLValue reports whether an expression denotes an addressable storage
// location: an identifier, a field access through an lvalue, or a
// dereference of anything but the nil literal.
func isLValue(expr ast.ASTExpr) bool {
	switch v := expr.(type) {
	case *ast.Identifier:
		return true
	case *ast.Dot:
		return isLValue(v.Root)
	case *ast.UnaryOp:
		if v.Op == ast.UnOpDeref {
			_, isNil := v.Operand.(*ast.NilLit)
			return !isNil
		}
	}

	return false
}
