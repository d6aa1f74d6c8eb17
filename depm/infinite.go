package depm

import (
	"minigo/ast"
	"minigo/report"
)

/*
Recursive Structure Checking
----------------------------

A structure may not require infinite inline storage: a structure whose fields
reach back to the structure itself without passing through a pointer can never
be laid out.  This check runs once, before any structure is resolved, working
purely on the raw declarations.

For every declared structure, a depth-first traversal follows its field types.
A field of scalar or pointer type terminates its branch: indirection never
contributes to inline storage, so pointers to a structure (including itself)
are always legal.  A field that directly names another structure pushes that
name onto the current path and recurses into its fields.  Finding a name that
is already on the path is a recursive-structure error; finding a name with no
matching declaration is an undefined-structure error.
*/

// CheckNoRecursiveStructs verifies that no declared structure requires
// infinite inline storage.  Structures are visited in declaration order so
// the first error reported is deterministic.
func (r *Resolver) CheckNoRecursiveStructs() error {
	for _, name := range r.structOrder {
		if err := r.searchFields(r.structDecls[name], []string{name}); err != nil {
			return err
		}
	}

	return nil
}

// searchFields traverses the field types of a raw structure declaration with
// the given path of structure names already being laid out.
func (r *Resolver) searchFields(sd *ast.StructDef, path []string) error {
	for _, field := range sd.Fields {
		if err := r.searchType(field.Type, path); err != nil {
			return err
		}
	}

	return nil
}

// searchType traverses one declared field type.
func (r *Resolver) searchType(te ast.TypeExpr, path []string) error {
	named, ok := te.(*ast.NamedTypeExpr)
	if !ok {
		// Pointer indirection breaks the cycle.
		return nil
	}

	switch named.Name {
	case "int", "bool", "string":
		return nil
	}

	inner, ok := r.structDecls[named.Name]
	if !ok {
		return report.Raise(named.Span(), "undefined structure: `%s`", named.Name)
	}

	for _, pathName := range path {
		if pathName == named.Name {
			return report.Raise(named.Span(), "recursive structure definition: `%s`", named.Name)
		}
	}

	return r.searchFields(inner, append(path, named.Name))
}
