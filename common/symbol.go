package common

import (
	"minigo/report"
	"minigo/types"
)

// Symbol represents a semantic symbol: a named variable binding.  Exactly one
// Symbol exists per declaration; every AST node that references the binding
// holds this one record, so marking it used is visible everywhere.
type Symbol struct {
	// The unique ID of the symbol within its compilation unit.
	ID int

	// The name of the symbol.
	Name string

	// Where the symbol was declared.
	DefSpan *report.TextSpan

	// The type of the value stored in the symbol.
	Type types.Type

	// Whether or not the symbol was actually read.  This is the only field
	// mutated after creation: it is flipped from false to true on the first
	// read reference.
	Used bool
}
