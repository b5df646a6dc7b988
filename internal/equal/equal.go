// Package equal decides structural equality between values.
//
// Equality mirrors the decomposition used for rendering: text by content,
// arrays and slices element-wise, maps by key lookup, plain data structs
// field-wise. Types that define an Equal(T) bool method use it. Any other
// Go-comparable type falls back to ==.
//
// Before comparing, callers probe whether any equality path exists for a
// pair of types with Comparable. An incomparable pair is reported, not
// rejected at build time, so arbitrary operands can be asserted against
// each other.
//
// Sets are compared position by position in iteration order after a size
// check, not by membership. value.Set iterates in sorted order, so this only
// differs from membership for elements that sort equal but are not equal
// (NaN).
package equal

import (
	"fmt"
	"reflect"

	"github.com/roach88/expect/internal/naming"
	"github.com/roach88/expect/internal/shape"
	"github.com/roach88/expect/internal/value"
)

// IncomparableError reports that no equality path exists between two types.
type IncomparableError struct {
	Left   string // Display name of the left type
	Right  string // Display name of the right type
	Reason string // Optional detail, e.g. a field-count overflow
}

// Error implements the error interface.
func (e *IncomparableError) Error() string {
	msg := fmt.Sprintf("cannot compare values of types %s and %s", e.Left, e.Right)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Comparer compares values. A Comparer is immutable once built and safe for
// concurrent use.
type Comparer struct {
	maxFields int
}

// New creates a comparer. maxFields caps aggregate decomposition; 0 means
// no cap.
func New(maxFields int) *Comparer {
	return &Comparer{maxFields: maxFields}
}

type typePair struct {
	a, b reflect.Type
}

// Comparable reports whether an equality path exists between values of
// types a and b. A nil type stands for an untyped nil operand.
// It returns nil when comparable and an *IncomparableError otherwise.
func (c *Comparer) Comparable(a, b reflect.Type) error {
	reason, ok := c.probe(a, b, make(map[typePair]bool))
	if ok {
		return nil
	}
	return &IncomparableError{
		Left:   naming.TypeName(a),
		Right:  naming.TypeName(b),
		Reason: reason,
	}
}

func (c *Comparer) probe(a, b reflect.Type, seen map[typePair]bool) (string, bool) {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return "", true
		}
		other := a
		if other == nil {
			other = b
		}
		return "", shape.Nilable(other.Kind())
	}
	if a != b {
		return "", c.related(a, b)
	}

	key := typePair{a, b}
	if seen[key] {
		return "", true
	}
	seen[key] = true

	if _, ok := equalMethod(a); ok {
		return "", true
	}
	if shape.Overflows(a, c.maxFields) {
		return fmt.Sprintf("%s has %d fields, more than the supported %d",
			naming.TypeName(a), shape.FieldArity(a), c.maxFields), false
	}

	switch shape.Classify(a, c.maxFields) {
	case shape.Char, shape.Enum, shape.Bool, shape.Number, shape.Text, shape.Set, shape.Interface:
		return "", true
	case shape.Array, shape.Slice, shape.Pointer, shape.Map:
		return c.probe(a.Elem(), a.Elem(), seen)
	case shape.Aggregate:
		for i := range a.NumField() {
			f := a.Field(i)
			if reason, ok := c.probe(f.Type, f.Type, seen); !ok {
				if reason == "" {
					reason = fmt.Sprintf("field %s has incomparable type %s", f.Name, naming.TypeName(f.Type))
				}
				return reason, false
			}
		}
		return "", true
	default:
		return "", a.Comparable()
	}
}

// related reports whether two distinct types still share an equality path:
// both text, both integers or both floats. Enumerations and Char are only
// comparable with their own type.
func (c *Comparer) related(a, b reflect.Type) bool {
	ca, cb := shape.Classify(a, c.maxFields), shape.Classify(b, c.maxFields)
	switch {
	case ca == shape.Text && cb == shape.Text:
		return true
	case ca == shape.Number && cb == shape.Number:
		ka, kb := a.Kind(), b.Kind()
		return (shape.IsInteger(ka) && shape.IsInteger(kb)) || (shape.IsFloat(ka) && shape.IsFloat(kb))
	}
	return false
}

// visit identifies a pair of references under comparison. Slices also
// key on length, since a shorter slice over the same array is a
// different value.
type visit struct {
	a, b uintptr
	typ  reflect.Type
	n    int
}

// Equal reports whether a and b are equal. Callers are expected to have
// checked Comparable first; an incomparable pair is simply unequal. Values
// held in interfaces are probed by their dynamic types, so an incomparable
// pair found there is unequal too.
//
// An untyped nil equals a nil or empty slice or map, as a nil slice equals
// an empty one.
func (c *Comparer) Equal(a, b any) bool {
	return c.equal(reflect.ValueOf(a), reflect.ValueOf(b), make(map[visit]bool))
}

func (c *Comparer) equal(x, y reflect.Value, visited map[visit]bool) bool {
	if !x.IsValid() || !y.IsValid() {
		if !x.IsValid() && !y.IsValid() {
			return true
		}
		v := x
		if !v.IsValid() {
			v = y
		}
		return shape.Nilable(v.Kind()) && (v.IsNil() || empty(v))
	}
	if x.Type() != y.Type() {
		return c.relatedEqual(x, y)
	}

	t := x.Type()
	if m, ok := equalMethod(t); ok && x.CanInterface() && y.CanInterface() && !nilPointers(x, y) {
		return m.Func.Call([]reflect.Value{x, y})[0].Bool()
	}

	switch shape.Classify(t, c.maxFields) {
	case shape.Text:
		return x.String() == y.String()
	case shape.Char, shape.Enum, shape.Bool, shape.Number:
		return x.Equal(y)
	case shape.Array:
		return c.elements(x, y, visited)
	case shape.Slice:
		if x.Len() != y.Len() {
			return false
		}
		if revisit(x, y, visited) {
			return true
		}
		return c.elements(x, y, visited)
	case shape.Set:
		return c.set(x, y, visited)
	case shape.Map:
		return c.mapping(x, y, visited)
	case shape.Aggregate:
		for i := range x.NumField() {
			if !c.equal(x.Field(i), y.Field(i), visited) {
				return false
			}
		}
		return true
	case shape.Pointer:
		return c.pointer(x, y, visited)
	case shape.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		xe, ye := x.Elem(), y.Elem()
		if c.Comparable(xe.Type(), ye.Type()) != nil {
			return false
		}
		return c.equal(xe, ye, visited)
	default:
		return native(x, y)
	}
}

func (c *Comparer) elements(x, y reflect.Value, visited map[visit]bool) bool {
	for i := range x.Len() {
		if !c.equal(x.Index(i), y.Index(i), visited) {
			return false
		}
	}
	return true
}

// set compares by size, then pairwise in iteration order.
func (c *Comparer) set(x, y reflect.Value, visited map[visit]bool) bool {
	if !x.CanInterface() || !y.CanInterface() {
		return native(x, y)
	}
	xs, ok := x.Interface().(value.Ordered)
	if !ok {
		return native(x, y)
	}
	ys := y.Interface().(value.Ordered)
	if xs.Len() != ys.Len() {
		return false
	}
	xm, ym := xs.Members(), ys.Members()
	for i := range xm {
		if !c.equal(reflect.ValueOf(xm[i]), reflect.ValueOf(ym[i]), visited) {
			return false
		}
	}
	return true
}

// mapping requires equal size and every key of x present in y with an
// equal value.
func (c *Comparer) mapping(x, y reflect.Value, visited map[visit]bool) bool {
	if x.Len() != y.Len() {
		return false
	}
	if revisit(x, y, visited) {
		return true
	}
	iter := x.MapRange()
	for iter.Next() {
		yv := y.MapIndex(iter.Key())
		if !yv.IsValid() || !c.equal(iter.Value(), yv, visited) {
			return false
		}
	}
	return true
}

func (c *Comparer) pointer(x, y reflect.Value, visited map[visit]bool) bool {
	if x.IsNil() || y.IsNil() {
		return x.IsNil() && y.IsNil()
	}
	if x.Pointer() == y.Pointer() || revisit(x, y, visited) {
		return true
	}
	return c.equal(x.Elem(), y.Elem(), visited)
}

// revisit marks the pair of maps, slices or pointers x and y as under
// comparison and reports whether it already was. A pair met again is
// assumed equal, which ends the walk of a value that contains itself.
func revisit(x, y reflect.Value, visited map[visit]bool) bool {
	if x.Pointer() == 0 || y.Pointer() == 0 {
		return false
	}
	v := visit{a: x.Pointer(), b: y.Pointer(), typ: x.Type()}
	if x.Kind() == reflect.Slice {
		v.n = x.Len()
	}
	if visited[v] {
		return true
	}
	visited[v] = true
	return false
}

// empty reports whether v is a slice or map without elements.
func empty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	}
	return false
}

// relatedEqual compares values of distinct but related types by content:
// text by characters, integers by mathematical value, floats numerically.
func (c *Comparer) relatedEqual(x, y reflect.Value) bool {
	if !c.related(x.Type(), y.Type()) {
		return false
	}
	kx, ky := x.Kind(), y.Kind()
	switch {
	case kx == reflect.String:
		return x.String() == y.String()
	case shape.IsFloat(kx):
		return x.Float() == y.Float()
	case shape.IsSigned(kx) && shape.IsSigned(ky):
		return x.Int() == y.Int()
	case shape.IsUnsigned(kx) && shape.IsUnsigned(ky):
		return x.Uint() == y.Uint()
	case shape.IsSigned(kx):
		return x.Int() >= 0 && uint64(x.Int()) == y.Uint()
	default:
		return y.Int() >= 0 && x.Uint() == uint64(y.Int())
	}
}

// native compares with ==, treating types that panic on comparison (an
// interface holding a func, say) as unequal.
func native(x, y reflect.Value) (eq bool) {
	if !x.Type().Comparable() {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return x.Equal(y)
}

func nilPointers(x, y reflect.Value) bool {
	return x.Kind() == reflect.Pointer && (x.IsNil() || y.IsNil())
}

// equalMethod returns t's Equal method when it has the form
// func (T) Equal(T) bool.
func equalMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := t.MethodByName("Equal")
	if !ok {
		return reflect.Method{}, false
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.NumOut() != 1 || mt.In(1) != t || mt.Out(0).Kind() != reflect.Bool {
		return reflect.Method{}, false
	}
	return m, true
}
