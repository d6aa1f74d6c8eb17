package walk

import (
	"minigo/ast"
	"minigo/report"
	"minigo/types"
)

// walkExpr walks an AST expression or statement, decorating it with its
// resolved type.  It returns whether the walked node definitely returns: ie.
// whether every execution path through it reaches a return statement.
func (w *Walker) walkExpr(expr ast.ASTExpr) (bool, error) {
	switch v := expr.(type) {
	case *ast.Literal:
		w.walkLiteral(v)
		return false, nil
	case *ast.NilLit:
		v.SetType(types.WildcardType{})
		return false, nil
	case *ast.Identifier:
		sym, err := w.lookup(v.Name, v.Span())
		if err != nil {
			return false, err
		}

		sym.Used = true
		v.Sym = sym
		v.SetType(sym.Type)
		return false, nil
	case *ast.UnaryOp:
		return false, w.walkUnaryOp(v)
	case *ast.BinaryOp:
		return false, w.walkBinaryOp(v)
	case *ast.Dot:
		return false, w.walkDot(v)
	case *ast.Call:
		return false, w.walkCall(v)
	case *ast.NewExpr:
		return false, w.walkNew(v)
	case *ast.Block:
		return w.walkBlock(v)
	case *ast.IfExpr:
		return w.walkIf(v)
	case *ast.ForLoop:
		return false, w.walkFor(v)
	case *ast.VarDecl:
		return false, w.walkVarDecl(v)
	case *ast.Assign:
		return false, w.walkAssign(v)
	case *ast.IncDecStmt:
		return false, w.walkIncDec(v)
	case *ast.ReturnStmt:
		return w.walkReturnStmt(v)
	case *ast.PrintStmt:
		return false, w.walkPrintStmt(v)
	case *ast.SkipStmt:
		v.SetType(types.UnitType())
		return false, nil
	}

	return false, report.Raise(expr.Span(), "unsupported expression kind")
}

// walkLiteral walks a literal value.  Literals always carry their intrinsic
// type.
func (w *Walker) walkLiteral(lit *ast.Literal) {
	switch lit.Kind {
	case ast.LitInt:
		lit.SetType(types.PrimTypeInt)
	case ast.LitBool:
		lit.SetType(types.PrimTypeBool)
	case ast.LitString:
		lit.SetType(types.PrimTypeString)
	}
}

// walkUnaryOp walks a unary operator application.
func (w *Walker) walkUnaryOp(uop *ast.UnaryOp) error {
	if _, err := w.walkExpr(uop.Operand); err != nil {
		return err
	}

	operandType := uop.Operand.Type()

	switch uop.Op {
	case ast.UnOpNeg:
		if !types.Equals(operandType, types.PrimTypeInt) {
			return report.Raise(uop.Operand.Span(), "operand of unary - must be an int, got %s", operandType.Repr())
		}

		uop.SetType(types.PrimTypeInt)
	case ast.UnOpNot:
		if !types.Equals(operandType, types.PrimTypeBool) {
			return report.Raise(uop.Operand.Span(), "operand of ! must be a bool, got %s", operandType.Repr())
		}

		uop.SetType(types.PrimTypeBool)
	case ast.UnOpDeref:
		pt, ok := operandType.(*types.PointerType)
		if !ok {
			return report.Raise(uop.Operand.Span(), "cannot dereference a value of type %s", operandType.Repr())
		}

		uop.SetType(pt.ElemType)
	case ast.UnOpAddr:
		if !isLValue(uop.Operand) {
			return report.Raise(uop.Operand.Span(), "cannot take the address of a non-addressable expression")
		}

		uop.SetType(&types.PointerType{ElemType: operandType})
	}

	return nil
}

// walkBinaryOp walks a binary operator application.  The left operand is
// always checked before the right one.
func (w *Walker) walkBinaryOp(bop *ast.BinaryOp) error {
	if _, err := w.walkExpr(bop.Lhs); err != nil {
		return err
	}

	if _, err := w.walkExpr(bop.Rhs); err != nil {
		return err
	}

	lhsType, rhsType := bop.Lhs.Type(), bop.Rhs.Type()

	switch bop.Op {
	case ast.BinOpEq, ast.BinOpNotEq:
		// Two nil literals carry no type to compare with.
		if isNilLit(bop.Lhs) && isNilLit(bop.Rhs) {
			return report.Raise(bop.Span(), "invalid operation: nil compared with nil")
		}

		if !types.Equals(lhsType, rhsType) {
			return report.Raise(bop.Span(), "invalid operation: mismatched types %s and %s", lhsType.Repr(), rhsType.Repr())
		}

		bop.SetType(types.PrimTypeBool)
	case ast.BinOpLt, ast.BinOpLtEq, ast.BinOpGt, ast.BinOpGtEq:
		if err := w.checkOperands(bop, types.PrimTypeInt); err != nil {
			return err
		}

		bop.SetType(types.PrimTypeBool)
	case ast.BinOpAdd, ast.BinOpSub, ast.BinOpMul, ast.BinOpDiv, ast.BinOpMod:
		if err := w.checkOperands(bop, types.PrimTypeInt); err != nil {
			return err
		}

		bop.SetType(types.PrimTypeInt)
	case ast.BinOpAnd, ast.BinOpOr:
		if err := w.checkOperands(bop, types.PrimTypeBool); err != nil {
			return err
		}

		bop.SetType(types.PrimTypeBool)
	}

	return nil
}

// checkOperands asserts that both operands of a binary operator have the
// given type.
func (w *Walker) checkOperands(bop *ast.BinaryOp, want types.Type) error {
	lhsType, rhsType := bop.Lhs.Type(), bop.Rhs.Type()

	if !types.Equals(lhsType, want) || !types.Equals(rhsType, want) {
		return report.Raise(
			bop.Span(),
			"invalid operand types for %s: %s and %s",
			ast.BinOpName(bop.Op),
			lhsType.Repr(),
			rhsType.Repr(),
		)
	}

	return nil
}

// walkDot walks a field access.  The root must check as a pointer to a
// structure containing the accessed field.
func (w *Walker) walkDot(dot *ast.Dot) error {
	if isNilLit(dot.Root) {
		return report.Raise(dot.Root.Span(), "cannot access a field through nil")
	}

	if _, err := w.walkExpr(dot.Root); err != nil {
		return err
	}

	rootType := dot.Root.Type()

	pt, ok := rootType.(*types.PointerType)
	if !ok {
		return report.Raise(dot.Root.Span(), "field access requires a pointer to a structure, got %s", rootType.Repr())
	}

	st, ok := pt.ElemType.(*types.StructType)
	if !ok {
		return report.Raise(dot.Root.Span(), "field access requires a pointer to a structure, got %s", rootType.Repr())
	}

	field, ok := st.FieldByName(dot.FieldName)
	if !ok {
		return report.Raise(dot.FieldSpan, "structure %s has no field `%s`", st.Name, dot.FieldName)
	}

	dot.SetType(field.Type)
	return nil
}

// walkCall walks a call to a declared function.  The flattened argument types
// must match the declared parameter types exactly, in arity and in type.
func (w *Walker) walkCall(call *ast.Call) error {
	var argTypes []types.Type
	for _, arg := range call.Args {
		if _, err := w.walkExpr(arg); err != nil {
			return err
		}

		argTypes = append(argTypes, arg.Type())
	}
	argTypes = types.Flatten(argTypes)

	fn, err := w.res.ResolveFunction(call.Name, call.NameSpan)
	if err != nil {
		return err
	}

	if len(argTypes) != len(fn.Params) {
		return report.Raise(
			call.Span(),
			"wrong number of arguments to %s: expected %d, got %d",
			call.Name,
			len(fn.Params),
			len(argTypes),
		)
	}

	paramTypes := fn.ParamTypes()
	if !types.EqualMany(argTypes, paramTypes) {
		return report.Raise(
			call.Span(),
			"mismatched argument types for %s: expected %s, got %s",
			call.Name,
			types.TupleOf(paramTypes).Repr(),
			types.TupleOf(argTypes).Repr(),
		)
	}

	call.SetType(types.TupleOf(fn.ReturnTypes))
	return nil
}

// walkNew walks an application of the new builtin.  The argument must be an
// identifier naming a scalar type or a declared structure; the result is a
// pointer to that type.
func (w *Walker) walkNew(ne *ast.NewExpr) error {
	ident, ok := ne.Arg.(*ast.Identifier)
	if !ok {
		return report.Raise(ne.Arg.Span(), "argument to new must be a type name")
	}

	typ, err := w.res.ResolveNamed(ident.Name, ident.Span())
	if err != nil {
		return err
	}

	ne.SetType(&types.PointerType{ElemType: typ})
	return nil
}

// isNilLit reports whether the expression is the nil literal.
func isNilLit(expr ast.ASTExpr) bool {
	_, ok := expr.(*ast.NilLit)
	return ok
}
