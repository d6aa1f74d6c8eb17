package walk

import (
	"strings"
	"testing"

	"minigo/ast"
	"minigo/depm"
	"minigo/report"
	"minigo/types"
)

/* -------------------------------------------------------------------------- */
// AST construction helpers.  Tests build units directly instead of going
// through a parser, so every node gets an empty placeholder span.

func testSpan() *report.TextSpan {
	return &report.TextSpan{}
}

func exprBase() ast.ExprBase {
	return ast.NewExprBase(testSpan())
}

func intLit(v string) ast.ASTExpr {
	return &ast.Literal{ExprBase: exprBase(), Kind: ast.LitInt, Value: v}
}

func boolLit(v string) ast.ASTExpr {
	return &ast.Literal{ExprBase: exprBase(), Kind: ast.LitBool, Value: v}
}

func nilVal() ast.ASTExpr {
	return &ast.NilLit{ExprBase: exprBase()}
}

func ident(name string) ast.ASTExpr {
	return &ast.Identifier{ExprBase: exprBase(), Name: name}
}

func unary(op int, operand ast.ASTExpr) ast.ASTExpr {
	return &ast.UnaryOp{ExprBase: exprBase(), Op: op, Operand: operand}
}

func binary(op int, lhs, rhs ast.ASTExpr) ast.ASTExpr {
	return &ast.BinaryOp{ExprBase: exprBase(), Op: op, Lhs: lhs, Rhs: rhs}
}

func dotOf(root ast.ASTExpr, field string) ast.ASTExpr {
	return &ast.Dot{ExprBase: exprBase(), Root: root, FieldName: field, FieldSpan: testSpan()}
}

func callOf(name string, args ...ast.ASTExpr) ast.ASTExpr {
	return &ast.Call{ExprBase: exprBase(), Name: name, NameSpan: testSpan(), Args: args}
}

func newOf(name string) ast.ASTExpr {
	return &ast.NewExpr{ExprBase: exprBase(), Arg: ident(name)}
}

func blockOf(stmts ...ast.ASTExpr) *ast.Block {
	return &ast.Block{ExprBase: exprBase(), Stmts: stmts}
}

func ifElse(cond ast.ASTExpr, then *ast.Block, els ast.ASTExpr) ast.ASTExpr {
	return &ast.IfExpr{ExprBase: exprBase(), Cond: cond, Then: then, Else: els}
}

func loopWhile(cond ast.ASTExpr, body *ast.Block) ast.ASTExpr {
	return &ast.ForLoop{ExprBase: exprBase(), Cond: cond, Body: body}
}

func retOf(exprs ...ast.ASTExpr) ast.ASTExpr {
	return &ast.ReturnStmt{ExprBase: exprBase(), Exprs: exprs}
}

func printOf(args ...ast.ASTExpr) ast.ASTExpr {
	return &ast.PrintStmt{ExprBase: exprBase(), Args: args}
}

func skipStmt() ast.ASTExpr {
	return &ast.SkipStmt{ExprBase: exprBase()}
}

func incOf(operand ast.ASTExpr) ast.ASTExpr {
	return &ast.IncDecStmt{ExprBase: exprBase(), Op: ast.OpInc, Operand: operand}
}

func decOf(operand ast.ASTExpr) ast.ASTExpr {
	return &ast.IncDecStmt{ExprBase: exprBase(), Op: ast.OpDec, Operand: operand}
}

func assignOf(lhs, rhs ast.ASTExpr) ast.ASTExpr {
	return &ast.Assign{ExprBase: exprBase(), Lhs: lhs, Rhs: rhs}
}

func declOf(names []string, declType ast.TypeExpr, inits ...ast.ASTExpr) *ast.VarDecl {
	spans := make([]*report.TextSpan, len(names))
	for i := range spans {
		spans[i] = testSpan()
	}

	return &ast.VarDecl{
		ExprBase:  exprBase(),
		Names:     names,
		NameSpans: spans,
		DeclType:  declType,
		Inits:     inits,
	}
}

func namedType(name string) ast.TypeExpr {
	return &ast.NamedTypeExpr{ASTBase: ast.NewASTBaseOn(testSpan()), Name: name}
}

func pointerTo(elem ast.TypeExpr) ast.TypeExpr {
	return &ast.PointerTypeExpr{ASTBase: ast.NewASTBaseOn(testSpan()), Elem: elem}
}

func fieldOf(name string, te ast.TypeExpr) ast.FieldDecl {
	return ast.FieldDecl{Name: name, Span: testSpan(), Type: te}
}

func structDef(name string, fields ...ast.FieldDecl) *ast.StructDef {
	return &ast.StructDef{
		ASTBase:  ast.NewASTBaseOn(testSpan()),
		Name:     name,
		NameSpan: testSpan(),
		Fields:   fields,
	}
}

func paramOf(name string, te ast.TypeExpr) ast.ParamDecl {
	return ast.ParamDecl{Name: name, Span: testSpan(), Type: te}
}

func fnDef(name string, params []ast.ParamDecl, returnTypes []ast.TypeExpr, body *ast.Block) *ast.FuncDef {
	return &ast.FuncDef{
		ASTBase:     ast.NewASTBaseOn(testSpan()),
		Name:        name,
		NameSpan:    testSpan(),
		Params:      params,
		ReturnTypes: returnTypes,
		Body:        body,
	}
}

func mainFn(stmts ...ast.ASTExpr) *ast.FuncDef {
	return fnDef("main", nil, nil, blockOf(stmts...))
}

func testUnit(importsFmt bool, defs ...ast.Def) *depm.Unit {
	return &depm.Unit{Name: "test", ImportsFmt: importsFmt, Defs: defs}
}

func mustCheck(t *testing.T, unit *depm.Unit) []depm.CheckedDef {
	t.Helper()

	checked, err := CheckUnit(unit)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}

	return checked
}

func mustFail(t *testing.T, unit *depm.Unit, substr string) {
	t.Helper()

	_, err := CheckUnit(unit)
	if err == nil {
		t.Fatalf("expected error containing %q, got none", substr)
	}

	if !strings.Contains(err.Error(), substr) {
		t.Fatalf("expected error containing %q, got %q", substr, err.Error())
	}
}

/* -------------------------------------------------------------------------- */

func TestPointProgram(t *testing.T) {
	pointDef := structDef("Point",
		fieldOf("x", namedType("int")),
		fieldOf("y", namedType("int")),
	)

	checked := mustCheck(t, testUnit(true,
		pointDef,
		mainFn(
			declOf([]string{"p"}, nil, newOf("Point")),
			assignOf(dotOf(ident("p"), "x"), intLit("3")),
			printOf(dotOf(ident("p"), "x"), dotOf(ident("p"), "y")),
		),
	))

	var point *types.StructType
	for _, cd := range checked {
		if cd.Struct != nil {
			point = cd.Struct
		}
	}

	if point == nil {
		t.Fatal("missing checked structure")
	}

	if point.Size() != 16 {
		t.Errorf("struct size = %d, want 16", point.Size())
	}

	x, _ := point.FieldByName("x")
	y, _ := point.FieldByName("y")
	if x.Offset != 0 || y.Offset != 8 {
		t.Errorf("field offsets = %d, %d, want 0, 8", x.Offset, y.Offset)
	}
}

func TestMissingMain(t *testing.T) {
	helper := fnDef("helper", nil, nil, blockOf())
	mustFail(t, testUnit(false, helper), "missing main function")
}

func TestMainSignature(t *testing.T) {
	withParams := fnDef("main",
		[]ast.ParamDecl{paramOf("a", namedType("int"))},
		nil, blockOf(),
	)
	mustFail(t, testUnit(false, withParams), "main must take no parameters")

	withResults := fnDef("main", nil,
		[]ast.TypeExpr{namedType("int")},
		blockOf(retOf(intLit("0"))),
	)
	mustFail(t, testUnit(false, withResults), "main must not declare return values")
}

func addFn() *ast.FuncDef {
	return fnDef("add",
		[]ast.ParamDecl{paramOf("a", namedType("int")), paramOf("b", namedType("int"))},
		[]ast.TypeExpr{namedType("int")},
		blockOf(retOf(binary(ast.BinOpAdd, ident("a"), ident("b")))),
	)
}

func TestCallArity(t *testing.T) {
	mustCheck(t, testUnit(false,
		addFn(),
		mainFn(declOf([]string{"_"}, nil, callOf("add", intLit("1"), intLit("2")))),
	))

	mustFail(t, testUnit(false,
		addFn(),
		mainFn(declOf([]string{"_"}, nil, callOf("add", intLit("1")))),
	), "wrong number of arguments to add: expected 2, got 1")

	mustFail(t, testUnit(false,
		addFn(),
		mainFn(declOf([]string{"_"}, nil, callOf("add", intLit("1"), intLit("2"), intLit("3")))),
	), "expected 2, got 3")
}

func TestCallArgumentTypes(t *testing.T) {
	mustFail(t, testUnit(false,
		addFn(),
		mainFn(declOf([]string{"_"}, nil, callOf("add", intLit("1"), boolLit("true")))),
	), "mismatched argument types for add: expected [int, int], got [int, bool]")
}

func TestMultiValueResults(t *testing.T) {
	twoDef := fnDef("two", nil,
		[]ast.TypeExpr{namedType("int"), namedType("bool")},
		blockOf(retOf(intLit("1"), boolLit("true"))),
	)
	takeDef := fnDef("take",
		[]ast.ParamDecl{paramOf("a", namedType("int")), paramOf("b", namedType("bool"))},
		nil,
		blockOf(printOf(ident("a"), ident("b"))),
	)

	xy := declOf([]string{"x", "y"}, nil, callOf("two"))

	mustCheck(t, testUnit(true,
		twoDef,
		takeDef,
		mainFn(
			// A multi-value result forwards as a flattened argument list.
			callOf("take", callOf("two")),
			xy,
			printOf(ident("x"), ident("y")),
		),
	))

	if !types.Equals(xy.Syms[0].Type, types.PrimTypeInt) {
		t.Errorf("x has type %s, want int", xy.Syms[0].Type.Repr())
	}

	if !types.Equals(xy.Syms[1].Type, types.PrimTypeBool) {
		t.Errorf("y has type %s, want bool", xy.Syms[1].Type.Repr())
	}
}

func TestReturnCompleteness(t *testing.T) {
	complete := fnDef("f", nil, []ast.TypeExpr{namedType("int")}, blockOf(
		ifElse(boolLit("true"),
			blockOf(retOf(intLit("1"))),
			blockOf(retOf(intLit("2"))),
		),
	))
	mustCheck(t, testUnit(false, complete, mainFn()))

	incomplete := fnDef("g", nil, []ast.TypeExpr{namedType("int")}, blockOf(
		ifElse(boolLit("true"), blockOf(retOf(intLit("1"))), nil),
	))
	mustFail(t, testUnit(false, incomplete, mainFn()), "function `g` does not always return")
}

func TestReturnTypeMismatch(t *testing.T) {
	wrongType := fnDef("f", nil, []ast.TypeExpr{namedType("int")},
		blockOf(retOf(boolLit("true"))),
	)
	mustFail(t, testUnit(false, wrongType, mainFn()), "mismatched return types: expected int, got bool")

	noValue := fnDef("f", nil, []ast.TypeExpr{namedType("int")},
		blockOf(retOf()),
	)
	mustFail(t, testUnit(false, noValue, mainFn()), "mismatched return types: expected int, got void")
}

func TestUnusedVariables(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"x"}, nil, intLit("1"))),
	), "unused variable: `x`")

	// The discard name is exempt.
	mustCheck(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, intLit("1"))),
	))

	mustCheck(t, testUnit(true,
		mainFn(
			declOf([]string{"x"}, nil, intLit("1")),
			printOf(ident("x")),
		),
	))
}

func TestDiscardRead(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"y"}, nil, ident("_"))),
	), "cannot use `_` as a value")
}

func TestShadowing(t *testing.T) {
	// Redeclaring a name creates a fresh binding, possibly at another type.
	mustCheck(t, testUnit(false,
		mainFn(
			declOf([]string{"x"}, nil, intLit("1")),
			declOf([]string{"_"}, nil, binary(ast.BinOpAdd, ident("x"), intLit("1"))),
			declOf([]string{"x"}, nil, boolLit("true")),
			declOf([]string{"_"}, nil, unary(ast.UnOpNot, ident("x"))),
		),
	))

	// A shadowed binding still has to be read before it is shadowed.
	mustFail(t, testUnit(false,
		mainFn(
			declOf([]string{"x"}, nil, intLit("1")),
			declOf([]string{"x"}, nil, boolLit("true")),
			declOf([]string{"_"}, nil, unary(ast.UnOpNot, ident("x"))),
		),
	), "unused variable: `x`")
}

func TestBlockScoping(t *testing.T) {
	mustFail(t, testUnit(true,
		mainFn(
			ifElse(boolLit("true"),
				blockOf(
					declOf([]string{"x"}, nil, intLit("1")),
					printOf(ident("x")),
				),
				nil,
			),
			declOf([]string{"_"}, nil, ident("x")),
		),
	), "undefined variable: `x`")
}

func TestUnusedValueInBlock(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(
			binary(ast.BinOpAdd, intLit("1"), intLit("2")),
			skipStmt(),
		),
	), "value of type int evaluated but not used")
}

func TestConditionTypes(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(ifElse(intLit("1"), blockOf(), nil)),
	), "condition must have type bool, got int")

	mustFail(t, testUnit(false,
		mainFn(loopWhile(intLit("1"), blockOf())),
	), "condition must have type bool, got int")
}

func TestForLoop(t *testing.T) {
	mustCheck(t, testUnit(false,
		mainFn(
			declOf([]string{"i"}, nil, intLit("10")),
			loopWhile(
				binary(ast.BinOpGt, ident("i"), intLit("0")),
				blockOf(decOf(ident("i"))),
			),
		),
	))
}

func TestBranchTypeMismatch(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(ifElse(boolLit("true"),
			blockOf(intLit("1")),
			blockOf(boolLit("true")),
		)),
	), "if and else branches have mismatched types: int and bool")
}

func TestUnaryOperandTypes(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, unary(ast.UnOpNeg, boolLit("true")))),
	), "operand of unary - must be an int, got bool")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, unary(ast.UnOpNot, intLit("1")))),
	), "operand of ! must be a bool, got int")
}

func TestBinaryOperandTypes(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, binary(ast.BinOpAdd, intLit("1"), boolLit("true")))),
	), "invalid operand types for +: int and bool")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, binary(ast.BinOpAnd, intLit("1"), boolLit("true")))),
	), "invalid operand types for &&: int and bool")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, binary(ast.BinOpEq, intLit("1"), boolLit("true")))),
	), "invalid operation: mismatched types int and bool")
}

func TestNilComparisons(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, binary(ast.BinOpEq, nilVal(), nilVal()))),
	), "invalid operation: nil compared with nil")

	// nil unifies with any pointer in a comparison.
	mustCheck(t, testUnit(false,
		mainFn(
			declOf([]string{"p"}, nil, newOf("int")),
			declOf([]string{"b"}, nil, binary(ast.BinOpEq, ident("p"), nilVal())),
			declOf([]string{"_"}, nil, unary(ast.UnOpNot, ident("b"))),
		),
	))
}

func TestAddressOf(t *testing.T) {
	pointDef := structDef("Point",
		fieldOf("x", namedType("int")),
		fieldOf("y", namedType("int")),
	)

	q := declOf([]string{"q"}, nil, unary(ast.UnOpAddr, dotOf(ident("p"), "x")))
	mustCheck(t, testUnit(false,
		pointDef,
		mainFn(
			declOf([]string{"p"}, nil, newOf("Point")),
			q,
			declOf([]string{"_"}, nil, unary(ast.UnOpDeref, ident("q"))),
		),
	))

	if got := q.Syms[0].Type.Repr(); got != "*int" {
		t.Errorf("&p.x has type %s, want *int", got)
	}

	mustFail(t, testUnit(false,
		addFn(),
		mainFn(declOf([]string{"_"}, nil, unary(ast.UnOpAddr, callOf("add", intLit("1"), intLit("2"))))),
	), "cannot take the address of a non-addressable expression")
}

func TestDerefNil(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, unary(ast.UnOpDeref, nilVal()))),
	), "cannot dereference a value of type nil")
}

func TestAssignment(t *testing.T) {
	pointDef := func() *ast.StructDef {
		return structDef("Point",
			fieldOf("x", namedType("int")),
			fieldOf("y", namedType("int")),
		)
	}

	mustCheck(t, testUnit(false,
		pointDef(),
		mainFn(
			declOf([]string{"p"}, nil, newOf("Point")),
			assignOf(dotOf(ident("p"), "x"), intLit("3")),
		),
	))

	mustFail(t, testUnit(false,
		pointDef(),
		mainFn(
			declOf([]string{"p"}, nil, newOf("Point")),
			assignOf(dotOf(ident("p"), "x"), boolLit("true")),
		),
	), "cannot assign value of type bool to int")

	mustFail(t, testUnit(false,
		mainFn(assignOf(intLit("1"), intLit("2"))),
	), "cannot assign to a non-addressable expression")

	mustFail(t, testUnit(false,
		mainFn(assignOf(unary(ast.UnOpDeref, nilVal()), intLit("1"))),
	), "cannot dereference a value of type nil")
}

func TestIncDec(t *testing.T) {
	mustCheck(t, testUnit(false,
		mainFn(
			declOf([]string{"i"}, nil, intLit("0")),
			incOf(ident("i")),
		),
	))

	mustFail(t, testUnit(false,
		mainFn(
			declOf([]string{"b"}, nil, boolLit("true")),
			incOf(ident("b")),
		),
	), "operand of ++ must have type int, got bool")

	mustFail(t, testUnit(false,
		mainFn(incOf(intLit("1"))),
	), "operand of ++ is not addressable")

	mustFail(t, testUnit(false,
		mainFn(decOf(boolLit("true"))),
	), "operand of -- is not addressable")
}

func TestFieldAccessErrors(t *testing.T) {
	pointDef := structDef("Point",
		fieldOf("x", namedType("int")),
		fieldOf("y", namedType("int")),
	)

	mustFail(t, testUnit(false,
		pointDef,
		mainFn(
			declOf([]string{"p"}, nil, newOf("Point")),
			declOf([]string{"_"}, nil, dotOf(ident("p"), "z")),
		),
	), "structure Point has no field `z`")

	mustFail(t, testUnit(false,
		mainFn(
			declOf([]string{"x"}, nil, intLit("1")),
			declOf([]string{"_"}, nil, dotOf(ident("x"), "f")),
		),
	), "field access requires a pointer to a structure, got int")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, dotOf(nilVal(), "f"))),
	), "cannot access a field through nil")
}

func TestNewArgument(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, &ast.NewExpr{ExprBase: exprBase(), Arg: intLit("1")})),
	), "argument to new must be a type name")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, newOf("Widget"))),
	), "undefined structure: `Widget`")
}

func TestUndefinedNames(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"_"}, nil, ident("zz"))),
	), "undefined variable: `zz`")

	mustFail(t, testUnit(false,
		mainFn(callOf("nope")),
	), "undefined function: `nope`")
}

func TestPrintImportGating(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(printOf(intLit("1"))),
	), "fmt.Print used but fmt is not imported")

	mustFail(t, testUnit(true,
		mainFn(skipStmt()),
	), "fmt imported but not used")
}

func TestVarDeclarations(t *testing.T) {
	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"x"}, nil)),
	), "variable declaration requires a type or an initializer")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"x", "y"}, nil, intLit("1"))),
	), "cannot initialize 2 variables with 1 values")

	mustFail(t, testUnit(false,
		mainFn(declOf([]string{"x"}, namedType("int"), boolLit("true"))),
	), "mismatched types in declaration: expected int, got bool")

	// An explicitly typed declaration needs no initializer.
	mustCheck(t, testUnit(true,
		mainFn(
			declOf([]string{"x"}, namedType("int")),
			printOf(ident("x")),
		),
	))
}

func TestDuplicateDefinitions(t *testing.T) {
	mustFail(t, testUnit(false,
		structDef("A"),
		structDef("A"),
		mainFn(),
	), "structure defined multiple times: `A`")

	mustFail(t, testUnit(false,
		fnDef("f", nil, nil, blockOf()),
		fnDef("f", nil, nil, blockOf()),
		mainFn(),
	), "function defined multiple times: `f`")

	mustFail(t, testUnit(false,
		structDef("A",
			fieldOf("x", namedType("int")),
			fieldOf("x", namedType("bool")),
		),
		mainFn(),
	), "multiple fields named `x` in structure `A`")

	mustFail(t, testUnit(false,
		fnDef("f",
			[]ast.ParamDecl{paramOf("a", namedType("int")), paramOf("a", namedType("int"))},
			nil, blockOf(),
		),
		mainFn(),
	), "multiple parameters named `a` in function `f`")
}

func TestRecursiveStructures(t *testing.T) {
	mustFail(t, testUnit(false,
		structDef("A", fieldOf("a", namedType("A"))),
		mainFn(),
	), "recursive structure definition: `A`")

	// Indirection through a pointer is always legal.
	mustCheck(t, testUnit(false,
		structDef("Node",
			fieldOf("value", namedType("int")),
			fieldOf("next", pointerTo(namedType("Node"))),
		),
		mainFn(
			declOf([]string{"n"}, nil, newOf("Node")),
			assignOf(dotOf(ident("n"), "value"), intLit("1")),
			assignOf(dotOf(ident("n"), "next"), nilVal()),
		),
	))
}
