package types

// Equals returns whether two types are structurally equal.  The wildcard type
// absorbs both sides: it is equal to every type including itself.
func Equals(a, b Type) bool {
	if _, ok := b.(WildcardType); ok {
		return true
	}

	return a.equals(b)
}

// EqualMany returns whether two type lists are structurally equal pairwise.
// Lists of mismatched length are never equal.
func EqualMany(as, bs []Type) bool {
	if len(as) != len(bs) {
		return false
	}

	for i, a := range as {
		if !Equals(a, bs[i]) {
			return false
		}
	}

	return true
}

// Flatten splices the elements of any tuple in the given type list into one
// flat ordered list.  Flattening is idempotent: the result never contains a
// tuple.
func Flatten(typs []Type) []Type {
	flat := make([]Type, 0, len(typs))

	for _, typ := range typs {
		if tt, ok := typ.(*TupleType); ok {
			flat = append(flat, Flatten(tt.ElementTypes)...)
		} else {
			flat = append(flat, typ)
		}
	}

	return flat
}

// TupleOf builds the result type of a multi-value sequence: void for an empty
// list, the sole element for a singleton list, and a flattened tuple
// otherwise.
func TupleOf(typs []Type) Type {
	flat := Flatten(typs)

	switch len(flat) {
	case 0:
		return UnitType()
	case 1:
		return flat[0]
	default:
		return &TupleType{ElementTypes: flat}
	}
}

// UnitType returns the `void` type: the empty tuple.
func UnitType() Type {
	return &TupleType{}
}

// IsUnit returns whether the given type is `void`.
func IsUnit(typ Type) bool {
	tt, ok := typ.(*TupleType)
	return ok && len(tt.ElementTypes) == 0
}
