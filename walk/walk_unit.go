package walk

import (
	"minigo/ast"
	"minigo/depm"
	"minigo/report"
)

// CheckUnit runs semantic analysis over one compilation unit and produces its
// fully typed top-level declarations.  Analysis stops at the first error.
//
// Three ordered passes run over the declarations: structures are registered,
// the recursive-structure check runs and functions are registered, and
// finally every declaration is resolved and every function body is checked.
// After the passes, the unit must declare a main function, every variable
// must have been read, and the fmt import must agree with actual use of the
// print builtin.
func CheckUnit(unit *depm.Unit) ([]depm.CheckedDef, error) {
	r := depm.NewResolver()
	w := &Walker{unit: unit, res: r}

	// Pass 1: register raw structure declarations.
	for _, def := range unit.Defs {
		if sd, ok := def.(*ast.StructDef); ok {
			if err := r.DeclareStruct(sd); err != nil {
				return nil, err
			}
		}
	}

	// Structures that would require infinite inline storage are rejected
	// before anything is resolved.
	if err := r.CheckNoRecursiveStructs(); err != nil {
		return nil, err
	}

	// Pass 2: register raw function declarations.  The main function must
	// take no parameters and declare no results, independent of its body.
	for _, def := range unit.Defs {
		fd, ok := def.(*ast.FuncDef)
		if !ok {
			continue
		}

		if err := r.DeclareFunc(fd); err != nil {
			return nil, err
		}

		if fd.Name == "main" {
			if len(fd.Params) > 0 {
				return nil, report.Raise(fd.NameSpan, "main must take no parameters")
			}

			if len(fd.ReturnTypes) > 0 {
				return nil, report.Raise(fd.NameSpan, "main must not declare return values")
			}
		}
	}

	// Pass 3: resolve every declaration in source order and check every
	// function body.
	checked := make([]depm.CheckedDef, 0, len(unit.Defs))
	for _, def := range unit.Defs {
		switch v := def.(type) {
		case *ast.StructDef:
			st, err := r.ResolveStruct(v.Name, v.NameSpan)
			if err != nil {
				return nil, err
			}

			checked = append(checked, depm.CheckedDef{Struct: st})
		case *ast.FuncDef:
			fn, err := r.ResolveFunction(v.Name, v.NameSpan)
			if err != nil {
				return nil, err
			}

			returns, err := w.walkFuncBody(fn, v.Body)
			if err != nil {
				return nil, err
			}

			if len(fn.ReturnTypes) > 0 && !returns {
				span := v.Body.Span()
				if len(v.Body.Stmts) > 0 {
					span = v.Body.Stmts[len(v.Body.Stmts)-1].Span()
				}

				return nil, report.Raise(span, "function `%s` does not always return", v.Name)
			}

			checked = append(checked, depm.CheckedDef{Func: fn, Body: v.Body})
		}
	}

	if !r.FuncDeclared("main") {
		return nil, report.Raise(nil, "missing main function")
	}

	if sym := r.FirstUnused(); sym != nil {
		return nil, report.Raise(sym.DefSpan, "unused variable: `%s`", sym.Name)
	}

	if unit.ImportsFmt && !w.printUsed {
		return nil, report.Raise(nil, "fmt imported but not used")
	}

	return checked, nil
}
