package types

import (
	"strings"

	"minigo/util"
)

// Type represents a minigo data type.
type Type interface {
	// Returns whether this type is equal to the other type.  This does not
	// account for wildcard absorption: it should only be called through the
	// package-level Equals function.
	equals(other Type) bool

	// Returns the size of this type in bytes.
	Size() int

	// Returns the representative string for this type.
	Repr() string
}

/* -------------------------------------------------------------------------- */

// PrimitiveType represents a scalar type.  This must be one of the enumerated
// primitive type values below.
type PrimitiveType int

// Enumeration of the different primitive types.
const (
	PrimTypeInt PrimitiveType = iota
	PrimTypeBool
	PrimTypeString
)

func (pt PrimitiveType) equals(other Type) bool {
	opt, ok := other.(PrimitiveType)
	return ok && pt == opt
}

// All scalars are stored in one machine word.
func (pt PrimitiveType) Size() int {
	return util.PointerSize
}

func (pt PrimitiveType) Repr() string {
	switch pt {
	case PrimTypeInt:
		return "int"
	case PrimTypeBool:
		return "bool"
	default:
		return "string"
	}
}

/* -------------------------------------------------------------------------- */

// PointerType represents a pointer type.
type PointerType struct {
	// The element (content) type of the pointer.
	ElemType Type
}

func (pt *PointerType) equals(other Type) bool {
	if opt, ok := other.(*PointerType); ok {
		return Equals(pt.ElemType, opt.ElemType)
	}

	return false
}

func (pt *PointerType) Size() int {
	return util.PointerSize
}

func (pt *PointerType) Repr() string {
	return "*" + pt.ElemType.Repr()
}

/* -------------------------------------------------------------------------- */

// WildcardType is the type of the `nil` literal.  It is structurally equal to
// every type, which lets `nil` unify with any pointer context.
type WildcardType struct{}

func (wt WildcardType) equals(other Type) bool {
	return true
}

func (wt WildcardType) Size() int {
	return 0
}

func (wt WildcardType) Repr() string {
	return "nil"
}

/* -------------------------------------------------------------------------- */

// TupleType represents the type of a multi-value function result.  Tuples are
// always kept flattened: no element of a tuple is itself a tuple.  The empty
// tuple is the `void` type.
type TupleType struct {
	// The element types of the tuple.
	ElementTypes []Type
}

func (tt *TupleType) equals(other Type) bool {
	ott, ok := other.(*TupleType)
	if !ok || len(tt.ElementTypes) != len(ott.ElementTypes) {
		return false
	}

	for i, elemType := range tt.ElementTypes {
		if !Equals(elemType, ott.ElementTypes[i]) {
			return false
		}
	}

	return true
}

func (tt *TupleType) Size() int {
	size := 0
	for _, elemType := range tt.ElementTypes {
		size += elemType.Size()
	}

	return size
}

func (tt *TupleType) Repr() string {
	if len(tt.ElementTypes) == 0 {
		return "void"
	}

	sb := strings.Builder{}
	sb.WriteRune('[')

	for i, elemType := range tt.ElementTypes {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(elemType.Repr())
	}

	sb.WriteRune(']')
	return sb.String()
}

/* -------------------------------------------------------------------------- */

// StructType represents a declared structure type.  Exactly one StructType
// exists per declared structure name: two struct types are equal only if they
// are the same object.
type StructType struct {
	// The structure's declared name.
	Name string

	// The list of fields of the structure in declaration order.
	Fields []StructField

	// A mapping between field names and their index within the structure.
	indices map[string]int

	// The total size of the structure in bytes.  Written exactly once, while
	// the structure is resolved, and immutable afterwards.
	size int
}

// StructField represents a field of a structure type.
type StructField struct {
	// The field's name.
	Name string

	// The field's type.
	Type Type

	// The field's byte offset within the structure.
	Offset int
}

// NewStructType creates a new, empty structure type with the given name.
func NewStructType(name string) *StructType {
	return &StructType{Name: name, indices: make(map[string]int)}
}

// AddField appends a field to the structure, assigning it the next byte
// offset.  It returns false if a field by the given name already exists.
func (st *StructType) AddField(name string, typ Type) bool {
	if _, ok := st.indices[name]; ok {
		return false
	}

	st.indices[name] = len(st.Fields)
	st.Fields = append(st.Fields, StructField{Name: name, Type: typ, Offset: st.size})
	st.size += typ.Size()
	return true
}

// FieldByName returns the structure field corresponding to the given name if
// one exists.
func (st *StructType) FieldByName(name string) (StructField, bool) {
	if index, ok := st.indices[name]; ok {
		return st.Fields[index], true
	}

	return StructField{}, false
}

func (st *StructType) equals(other Type) bool {
	ost, ok := other.(*StructType)
	return ok && st == ost
}

func (st *StructType) Size() int {
	return st.size
}

func (st *StructType) Repr() string {
	return st.Name
}
