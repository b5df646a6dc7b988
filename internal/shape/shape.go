// Package shape classifies Go types for the representation and equality
// engines.
//
// Both engines decompose values the same way, so the classification lives
// here and is computed once per type. Classification is a pure function of
// the type and the field ceiling.
package shape

import (
	"fmt"
	"reflect"

	"github.com/roach88/expect/internal/naming"
	"github.com/roach88/expect/internal/value"
)

// DefaultMaxFields is the default ceiling on aggregate field count.
const DefaultMaxFields = 6

// Class is the decomposition rule that applies to a type.
type Class int

const (
	Opaque Class = iota
	Char
	Enum
	Bool
	Number
	Text
	Array
	Slice
	Set
	Map
	Aggregate
	Pointer
	Interface
)

var classNames = [...]string{
	Opaque:    "opaque",
	Char:      "char",
	Enum:      "enum",
	Bool:      "bool",
	Number:    "number",
	Text:      "text",
	Array:     "array",
	Slice:     "slice",
	Set:       "set",
	Map:       "map",
	Aggregate: "aggregate",
	Pointer:   "pointer",
	Interface: "interface",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

var (
	charType    = reflect.TypeFor[value.Char]()
	orderedType = reflect.TypeFor[value.Ordered]()
)

// Classify returns the rule for t. maxFields caps aggregate decomposition;
// a struct above the cap is Opaque. A maxFields of 0 means no cap.
//
// Registered enumerations and Char are checked before numbers because both
// are named integer types in Go.
func Classify(t reflect.Type, maxFields int) Class {
	if t == nil {
		return Opaque
	}
	switch {
	case t == charType:
		return Char
	case t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer && t.Implements(orderedType):
		return Set
	case naming.IsEnum(t):
		return Enum
	}

	switch t.Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.String:
		return Text
	case reflect.Array:
		return Array
	case reflect.Slice:
		return Slice
	case reflect.Map:
		return Map
	case reflect.Pointer:
		return Pointer
	case reflect.Interface:
		return Interface
	case reflect.Struct:
		if IsAggregate(t) && !Overflows(t, maxFields) {
			return Aggregate
		}
	}
	return Opaque
}

// IsAggregate reports whether t is a plain data struct: every field
// exported and no methods on either T or *T.
func IsAggregate(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct {
		return false
	}
	if t.NumMethod() > 0 || reflect.PointerTo(t).NumMethod() > 0 {
		return false
	}
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			return false
		}
	}
	return true
}

// FieldArity returns the number of top-level fields of a struct type, or
// -1 for any other type. Embedded structs count as one field.
func FieldArity(t reflect.Type) int {
	if t == nil || t.Kind() != reflect.Struct {
		return -1
	}
	return t.NumField()
}

// Overflows reports whether t is an aggregate with more fields than
// maxFields allows. A maxFields of 0 never overflows.
func Overflows(t reflect.Type, maxFields int) bool {
	return maxFields > 0 && IsAggregate(t) && FieldArity(t) > maxFields
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func IsInteger(k reflect.Kind) bool {
	return IsSigned(k) || IsUnsigned(k)
}

// IsSigned reports whether k is a signed integer kind.
func IsSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// IsUnsigned reports whether k is an unsigned integer kind.
func IsUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// IsFloat reports whether k is a floating-point kind.
func IsFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// Nilable reports whether values of kind k can be nil.
func Nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
