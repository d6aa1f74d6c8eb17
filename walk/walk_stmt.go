package walk

import (
	"minigo/ast"
	"minigo/common"
	"minigo/report"
	"minigo/types"
)

// walkVarDecl walks a variable declaration and binds every declared name into
// the current scope.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) error {
	var declType types.Type
	if vd.DeclType != nil {
		var err error
		declType, err = w.res.ResolveTypeExpr(vd.DeclType)
		if err != nil {
			return err
		}
	} else if len(vd.Inits) == 0 {
		return report.Raise(vd.Span(), "variable declaration requires a type or an initializer")
	}

	// Determine the per-name types.
	var nameTypes []types.Type
	if len(vd.Inits) == 0 {
		// Explicitly typed declaration with no value: every name gets the
		// declared type.
		nameTypes = make([]types.Type, len(vd.Names))
		for i := range nameTypes {
			nameTypes[i] = declType
		}
	} else {
		var initTypes []types.Type
		for _, init := range vd.Inits {
			if _, err := w.walkExpr(init); err != nil {
				return err
			}

			initTypes = append(initTypes, init.Type())
		}
		initTypes = types.Flatten(initTypes)

		if len(initTypes) != len(vd.Names) {
			return report.Raise(vd.Span(), "cannot initialize %d variables with %d values", len(vd.Names), len(initTypes))
		}

		if declType != nil {
			for i, initType := range initTypes {
				if !types.Equals(initType, declType) {
					return report.Raise(
						vd.Span(),
						"mismatched types in declaration: expected %s, got %s",
						declType.Repr(),
						initType.Repr(),
					)
				}

				initTypes[i] = declType
			}
		}

		nameTypes = initTypes
	}

	// Declare the variable bindings.
	vd.Syms = make([]*common.Symbol, len(vd.Names))
	for i, name := range vd.Names {
		if name == "_" {
			continue
		}

		sym := w.res.NewSymbol(name, vd.NameSpans[i], nameTypes[i])
		w.defineLocal(sym)
		vd.Syms[i] = sym
	}

	vd.SetType(types.UnitType())
	return nil
}

// walkAssign walks an assignment statement.  The left-hand side must be an
// addressable expression whose type matches the assigned value.
func (w *Walker) walkAssign(as *ast.Assign) error {
	if _, err := w.walkExpr(as.Lhs); err != nil {
		return err
	}

	if !isLValue(as.Lhs) {
		return report.Raise(as.Lhs.Span(), "cannot assign to a non-addressable expression")
	}

	if _, err := w.walkExpr(as.Rhs); err != nil {
		return err
	}

	if !types.Equals(as.Lhs.Type(), as.Rhs.Type()) {
		return report.Raise(
			as.Rhs.Span(),
			"cannot assign value of type %s to %s",
			as.Rhs.Type().Repr(),
			as.Lhs.Type().Repr(),
		)
	}

	as.SetType(types.UnitType())
	return nil
}

// walkIncDec walks an increment/decrement statement.
func (w *Walker) walkIncDec(incdec *ast.IncDecStmt) error {
	opName := "++"
	if incdec.Op == ast.OpDec {
		opName = "--"
	}

	if _, err := w.walkExpr(incdec.Operand); err != nil {
		return err
	}

	if !isLValue(incdec.Operand) {
		return report.Raise(incdec.Operand.Span(), "operand of %s is not addressable", opName)
	}

	if !types.Equals(incdec.Operand.Type(), types.PrimTypeInt) {
		return report.Raise(incdec.Operand.Span(), "operand of %s must have type int, got %s", opName, incdec.Operand.Type().Repr())
	}

	incdec.SetType(types.UnitType())
	return nil
}

// walkReturnStmt walks a return statement.  The flattened returned types must
// match the enclosing function's declared result types.  A return statement
// always definitely returns.
func (w *Walker) walkReturnStmt(rs *ast.ReturnStmt) (bool, error) {
	var returnedTypes []types.Type
	for _, expr := range rs.Exprs {
		if _, err := w.walkExpr(expr); err != nil {
			return false, err
		}

		returnedTypes = append(returnedTypes, expr.Type())
	}
	returnedTypes = types.Flatten(returnedTypes)

	if !types.EqualMany(returnedTypes, w.enclosingReturnTypes) {
		return false, report.Raise(
			rs.Span(),
			"mismatched return types: expected %s, got %s",
			types.TupleOf(w.enclosingReturnTypes).Repr(),
			types.TupleOf(returnedTypes).Repr(),
		)
	}

	rs.SetType(types.UnitType())
	return true, nil
}

// walkPrintStmt walks an application of the print builtin.  Arguments are
// checked individually but not against a fixed signature.
func (w *Walker) walkPrintStmt(ps *ast.PrintStmt) error {
	if !w.unit.ImportsFmt {
		return report.Raise(ps.Span(), "fmt.Print used but fmt is not imported")
	}

	w.printUsed = true

	for _, arg := range ps.Args {
		if _, err := w.walkExpr(arg); err != nil {
			return err
		}
	}

	ps.SetType(types.UnitType())
	return nil
}
