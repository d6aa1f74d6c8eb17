package walk

import (
	"minigo/ast"
	"minigo/report"
	"minigo/types"
)

// walkBlock walks a statement block in its own scope.  Every statement but
// the last must have type void; the type of the last statement becomes the
// type of the block.  The block definitely returns if any of its statements
// definitely returns.
func (w *Walker) walkBlock(b *ast.Block) (bool, error) {
	w.pushScope()
	defer w.popScope()

	b.SetType(types.UnitType())

	returns := false
	for i, stmt := range b.Stmts {
		stmtReturns, err := w.walkExpr(stmt)
		if err != nil {
			return false, err
		}

		if stmtReturns {
			returns = true
		}

		if i == len(b.Stmts)-1 {
			b.SetType(stmt.Type())
		} else if !types.IsUnit(stmt.Type()) {
			return false, report.Raise(stmt.Span(), "value of type %s evaluated but not used", stmt.Type().Repr())
		}
	}

	return returns, nil
}

// walkIf walks an if/else tree.  Both branches must yield structurally equal
// types; the whole expression definitely returns only if both branches do.
func (w *Walker) walkIf(ifExpr *ast.IfExpr) (bool, error) {
	if _, err := w.walkExpr(ifExpr.Cond); err != nil {
		return false, err
	}

	if !types.Equals(ifExpr.Cond.Type(), types.PrimTypeBool) {
		return false, report.Raise(ifExpr.Cond.Span(), "condition must have type bool, got %s", ifExpr.Cond.Type().Repr())
	}

	thenReturns, err := w.walkExpr(ifExpr.Then)
	if err != nil {
		return false, err
	}

	// A missing else branch behaves as an empty void block that never
	// returns.
	elseType := types.UnitType()
	elseReturns := false
	if ifExpr.Else != nil {
		if elseReturns, err = w.walkExpr(ifExpr.Else); err != nil {
			return false, err
		}

		elseType = ifExpr.Else.Type()
	}

	if !types.Equals(ifExpr.Then.Type(), elseType) {
		return false, report.Raise(
			ifExpr.Span(),
			"if and else branches have mismatched types: %s and %s",
			ifExpr.Then.Type().Repr(),
			elseType.Repr(),
		)
	}

	ifExpr.SetType(ifExpr.Then.Type())
	return thenReturns && elseReturns, nil
}

// walkFor walks a condition-only for loop.  A loop never definitely returns:
// its body may execute zero times.
func (w *Walker) walkFor(loop *ast.ForLoop) error {
	if _, err := w.walkExpr(loop.Cond); err != nil {
		return err
	}

	if !types.Equals(loop.Cond.Type(), types.PrimTypeBool) {
		return report.Raise(loop.Cond.Span(), "condition must have type bool, got %s", loop.Cond.Type().Repr())
	}

	if _, err := w.walkExpr(loop.Body); err != nil {
		return err
	}

	loop.SetType(types.UnitType())
	return nil
}
