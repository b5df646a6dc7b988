// Package value holds the small carrier types the representation and
// equality engines treat specially.
//
// Go has no distinct character type (a rune is an int32) and no set type,
// so both are provided here. Everything else the engines handle is a plain
// Go value.
package value

import (
	"cmp"
	"reflect"
	"slices"
)

// Char is a single character. A bare rune renders as a number; wrap it in
// Char to have it rendered as a quoted character literal.
type Char rune

// Ordered is implemented by containers that are walked by position.
// Set implements it; the engines use it to recognise sets without knowing
// the element type.
type Ordered interface {
	Len() int
	ElemType() reflect.Type
	Members() []any
}

// Set is a set of distinct values kept in ascending order.
// The zero value is an empty set ready to use.
type Set[T cmp.Ordered] struct {
	items []T
}

// NewSet returns a set holding the distinct values of items.
func NewSet[T cmp.Ordered](items ...T) Set[T] {
	var s Set[T]
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Insert adds v to the set. It reports whether v was not already present.
func (s *Set[T]) Insert(v T) bool {
	i, found := slices.BinarySearch(s.items, v)
	if found {
		return false
	}
	s.items = slices.Insert(s.items, i, v)
	return true
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, found := slices.BinarySearch(s.items, v)
	return found
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s.items)
}

// Items returns the elements in iteration (ascending) order.
func (s Set[T]) Items() []T {
	return slices.Clone(s.items)
}

// ElemType returns the element type of the set.
func (s Set[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Members returns the elements in iteration order, boxed.
func (s Set[T]) Members() []any {
	out := make([]any, len(s.items))
	for i, item := range s.items {
		out[i] = item
	}
	return out
}
