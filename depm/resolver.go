package depm

import (
	"minigo/ast"
	"minigo/common"
	"minigo/report"
	"minigo/types"
)

// Resolver owns the declaration tables of one compilation unit: the raw
// declarations registered by the first pass, and the resolved definitions
// memoized lazily on first use.  Structures and functions occupy independent
// symbol spaces.  The resolver also owns the unit-wide registry of every
// variable binding ever created, which drives the final unused-variable
// sweep.  A resolver is only ever used from a single goroutine.
type Resolver struct {
	// The raw declaration tables, keyed by name.
	structDecls map[string]*ast.StructDef
	funcDecls   map[string]*ast.FuncDef

	// The declaration order of structure names, used so the recursive
	// structure check visits declarations deterministically.
	structOrder []string

	// The memoized resolution tables.  Each declaration is resolved at most
	// once no matter how many reference sites trigger resolution.
	structTypes map[string]*types.StructType
	funcs       map[string]*Function

	// The registry of every variable created while checking the unit, in
	// creation order.
	symbols []*common.Symbol
}

// NewResolver creates an empty resolver for one compilation unit.
func NewResolver() *Resolver {
	return &Resolver{
		structDecls: make(map[string]*ast.StructDef),
		funcDecls:   make(map[string]*ast.FuncDef),
		structTypes: make(map[string]*types.StructType),
		funcs:       make(map[string]*Function),
	}
}

/* -------------------------------------------------------------------------- */

// DeclareStruct registers a raw structure declaration.  Registering the same
// name twice is an error.
func (r *Resolver) DeclareStruct(sd *ast.StructDef) error {
	if _, ok := r.structDecls[sd.Name]; ok {
		return report.Raise(sd.NameSpan, "structure defined multiple times: `%s`", sd.Name)
	}

	r.structDecls[sd.Name] = sd
	r.structOrder = append(r.structOrder, sd.Name)
	return nil
}

// DeclareFunc registers a raw function declaration.  Registering the same
// name twice is an error.
func (r *Resolver) DeclareFunc(fd *ast.FuncDef) error {
	if _, ok := r.funcDecls[fd.Name]; ok {
		return report.Raise(fd.NameSpan, "function defined multiple times: `%s`", fd.Name)
	}

	r.funcDecls[fd.Name] = fd
	return nil
}

// FuncDeclared returns whether a function by the given name was declared.
func (r *Resolver) FuncDeclared(name string) bool {
	_, ok := r.funcDecls[name]
	return ok
}

/* -------------------------------------------------------------------------- */

// ResolveStruct resolves a declared structure into its frozen structure type.
// The empty structure type is memoized before any field is processed so that
// self-referential pointer fields resolve to the structure being built.
func (r *Resolver) ResolveStruct(name string, span *report.TextSpan) (*types.StructType, error) {
	if st, ok := r.structTypes[name]; ok {
		return st, nil
	}

	sd, ok := r.structDecls[name]
	if !ok {
		return nil, report.Raise(span, "undefined structure: `%s`", name)
	}

	st := types.NewStructType(name)
	r.structTypes[name] = st

	for _, field := range sd.Fields {
		fieldType, err := r.ResolveTypeExpr(field.Type)
		if err != nil {
			return nil, err
		}

		if !st.AddField(field.Name, fieldType) {
			return nil, report.Raise(field.Span, "multiple fields named `%s` in structure `%s`", field.Name, name)
		}
	}

	return st, nil
}

// ResolveFunction resolves a declared function into its memoized definition:
// fresh parameter bindings and the flattened declared result types.
func (r *Resolver) ResolveFunction(name string, span *report.TextSpan) (*Function, error) {
	if fn, ok := r.funcs[name]; ok {
		return fn, nil
	}

	fd, ok := r.funcDecls[name]
	if !ok {
		return nil, report.Raise(span, "undefined function: `%s`", name)
	}

	fn := &Function{Name: name}

	seen := make(map[string]struct{})
	for _, param := range fd.Params {
		if param.Name != "_" {
			if _, ok := seen[param.Name]; ok {
				return nil, report.Raise(param.Span, "multiple parameters named `%s` in function `%s`", param.Name, name)
			}
			seen[param.Name] = struct{}{}
		}

		paramType, err := r.ResolveTypeExpr(param.Type)
		if err != nil {
			return nil, err
		}

		fn.Params = append(fn.Params, r.NewSymbol(param.Name, param.Span, paramType))
	}

	var returnTypes []types.Type
	for _, rte := range fd.ReturnTypes {
		rt, err := r.ResolveTypeExpr(rte)
		if err != nil {
			return nil, err
		}

		returnTypes = append(returnTypes, rt)
	}
	fn.ReturnTypes = types.Flatten(returnTypes)

	r.funcs[name] = fn
	return fn, nil
}

// ResolveTypeExpr converts a declared type expression into a resolved type,
// resolving referenced structures on demand.
func (r *Resolver) ResolveTypeExpr(te ast.TypeExpr) (types.Type, error) {
	switch v := te.(type) {
	case *ast.PointerTypeExpr:
		elem, err := r.ResolveTypeExpr(v.Elem)
		if err != nil {
			return nil, err
		}

		return &types.PointerType{ElemType: elem}, nil
	case *ast.NamedTypeExpr:
		return r.ResolveNamed(v.Name, v.Span())
	}

	return nil, report.Raise(te.Span(), "unrecognized type expression")
}

// ResolveNamed resolves a type name: a scalar type name or the name of a
// declared structure.
func (r *Resolver) ResolveNamed(name string, span *report.TextSpan) (types.Type, error) {
	switch name {
	case "int":
		return types.PrimTypeInt, nil
	case "bool":
		return types.PrimTypeBool, nil
	case "string":
		return types.PrimTypeString, nil
	}

	return r.ResolveStruct(name, span)
}

/* -------------------------------------------------------------------------- */

// NewSymbol creates a fresh variable binding and records it in the unit-wide
// registry.  Bindings named `_` are not registered: the discard name is
// exempt from the unused-variable sweep.
func (r *Resolver) NewSymbol(name string, span *report.TextSpan, typ types.Type) *common.Symbol {
	sym := &common.Symbol{
		ID:      len(r.symbols),
		Name:    name,
		DefSpan: span,
		Type:    typ,
	}

	if name != "_" {
		r.symbols = append(r.symbols, sym)
	}

	return sym
}

// FirstUnused returns the first registered binding that was never read, or
// nil if every binding was used.
func (r *Resolver) FirstUnused() *common.Symbol {
	for _, sym := range r.symbols {
		if !sym.Used {
			return sym
		}
	}

	return nil
}
