// Package repr renders arbitrary values as diagnostic strings.
//
// The rendering recurses into containers and plain data structs, labelling
// dynamic containers with their type:
//
//	3                      -> 3
//	"bb"                   -> "bb"
//	[]string{"a", "bb"}    -> []string {"a", "bb"}
//	[2]int{1, 2}           -> {1, 2}
//	map[string]int{"a": 1} -> map[string]int {{"a", 1}}
//	point{1, 2}            -> main.point {1, 2}
//	time.Time{}            -> time.Time {...}
//
// Text is wrapped in double quotes verbatim; embedded quotes are not
// escaped.
package repr

import (
	"cmp"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/roach88/expect/internal/naming"
	"github.com/roach88/expect/internal/shape"
	"github.com/roach88/expect/internal/value"
)

const opaqueBody = " {...}"

// ref identifies a map, slice or pointer being rendered, so a value that
// contains itself is cut at the second visit.
type ref struct {
	addr uintptr
	typ  reflect.Type
}

// Printer renders values. A Printer is immutable once built and safe for
// concurrent use.
type Printer struct {
	names     *naming.Resolver
	maxFields int
}

// New creates a printer. maxFields caps aggregate decomposition (0 means no
// cap); enumeration members are looked up through names.
func New(names *naming.Resolver, maxFields int) *Printer {
	if names == nil {
		names = naming.NewResolver(naming.DefaultProbeLimit)
	}
	return &Printer{names: names, maxFields: maxFields}
}

// Sprint returns the representation of v.
func (p *Printer) Sprint(v any) string {
	return p.text(reflect.ValueOf(v))
}

func (p *Printer) write(b *strings.Builder, v reflect.Value, seen map[ref]bool) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}

	t := v.Type()
	switch shape.Classify(t, p.maxFields) {
	case shape.Char:
		b.WriteByte('\'')
		b.WriteRune(rune(v.Int()))
		b.WriteByte('\'')
	case shape.Enum:
		b.WriteString(p.names.EnumName(v))
	case shape.Bool:
		b.WriteString(strconv.FormatBool(v.Bool()))
	case shape.Number:
		b.WriteString(number(v))
	case shape.Text:
		b.WriteByte('"')
		b.WriteString(v.String())
		b.WriteByte('"')
	case shape.Array:
		p.items(b, v, seen)
	case shape.Slice:
		if !p.enter(b, v, seen) {
			return
		}
		defer p.leave(v, seen)
		b.WriteString(naming.TypeName(t))
		b.WriteByte(' ')
		p.items(b, v, seen)
	case shape.Set:
		p.set(b, v, seen)
	case shape.Map:
		if !p.enter(b, v, seen) {
			return
		}
		defer p.leave(v, seen)
		p.mapping(b, v, seen)
	case shape.Aggregate:
		p.aggregate(b, v, seen)
	case shape.Pointer:
		p.pointer(b, v, seen)
	case shape.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		p.write(b, v.Elem(), seen)
	default:
		b.WriteString(naming.TypeName(t))
		b.WriteString(opaqueBody)
	}
}

func (p *Printer) items(b *strings.Builder, v reflect.Value, seen map[ref]bool) {
	b.WriteByte('{')
	for i := range v.Len() {
		if i > 0 {
			b.WriteString(", ")
		}
		p.write(b, v.Index(i), seen)
	}
	b.WriteByte('}')
}

func (p *Printer) set(b *strings.Builder, v reflect.Value, seen map[ref]bool) {
	s, ok := v.Interface().(value.Ordered)
	if !ok {
		b.WriteString(naming.TypeName(v.Type()))
		b.WriteString(opaqueBody)
		return
	}
	b.WriteString("Set[")
	b.WriteString(naming.TypeName(s.ElemType()))
	b.WriteString("] {")
	for i, m := range s.Members() {
		if i > 0 {
			b.WriteString(", ")
		}
		p.write(b, reflect.ValueOf(m), seen)
	}
	b.WriteByte('}')
}

func (p *Printer) mapping(b *strings.Builder, v reflect.Value, seen map[ref]bool) {
	b.WriteString(naming.TypeName(v.Type()))
	b.WriteString(" {")
	for i, e := range p.sortedEntries(v) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('{')
		p.write(b, e.key, seen)
		b.WriteString(", ")
		p.write(b, e.value, seen)
		b.WriteByte('}')
	}
	b.WriteByte('}')
}

func (p *Printer) aggregate(b *strings.Builder, v reflect.Value, seen map[ref]bool) {
	b.WriteString(naming.TypeName(v.Type()))
	b.WriteString(" {")
	for i := range v.NumField() {
		if i > 0 {
			b.WriteString(", ")
		}
		p.write(b, v.Field(i), seen)
	}
	b.WriteByte('}')
}

func (p *Printer) pointer(b *strings.Builder, v reflect.Value, seen map[ref]bool) {
	if v.IsNil() {
		b.WriteString("nil")
		return
	}
	if !p.enter(b, v, seen) {
		return
	}
	defer p.leave(v, seen)

	b.WriteByte('&')
	p.write(b, v.Elem(), seen)
}

// enter marks the map, slice or pointer v as being rendered. When v is
// already being rendered it writes the opaque form instead and returns
// false.
func (p *Printer) enter(b *strings.Builder, v reflect.Value, seen map[ref]bool) bool {
	if v.Pointer() == 0 {
		return true
	}
	r := ref{v.Pointer(), v.Type()}
	if seen[r] {
		b.WriteString(naming.TypeName(v.Type()))
		b.WriteString(opaqueBody)
		return false
	}
	seen[r] = true
	return true
}

func (p *Printer) leave(v reflect.Value, seen map[ref]bool) {
	delete(seen, ref{v.Pointer(), v.Type()})
}

type entry struct {
	key, value reflect.Value
}

// sortedEntries returns the entries of map v ordered by key: numerically
// for numbers, lexically for text, false before true, and by
// representation for anything else.
func (p *Printer) sortedEntries(v reflect.Value) []entry {
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{iter.Key(), iter.Value()})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return p.compareKeys(a.key, b.key)
	})
	return entries
}

func (p *Printer) compareKeys(a, b reflect.Value) int {
	if a.Kind() != b.Kind() {
		return strings.Compare(p.text(a), p.text(b))
	}
	switch k := a.Kind(); {
	case shape.IsSigned(k):
		return cmp.Compare(a.Int(), b.Int())
	case shape.IsUnsigned(k):
		return cmp.Compare(a.Uint(), b.Uint())
	case shape.IsFloat(k):
		return cmp.Compare(a.Float(), b.Float())
	case k == reflect.String:
		return strings.Compare(a.String(), b.String())
	case k == reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case !a.Bool():
			return -1
		default:
			return 1
		}
	case k == reflect.Interface:
		return p.compareKeys(a.Elem(), b.Elem())
	}

	return strings.Compare(p.text(a), p.text(b))
}

func (p *Printer) text(v reflect.Value) string {
	var b strings.Builder
	p.write(&b, v, make(map[ref]bool))
	return b.String()
}

// number formats integers in base 10 and floats in their shortest form,
// so 1.0 renders as "1" and 1.2 as "1.2".
func number(v reflect.Value) string {
	k := v.Kind()
	switch {
	case shape.IsSigned(k):
		return strconv.FormatInt(v.Int(), 10)
	case shape.IsUnsigned(k):
		return strconv.FormatUint(v.Uint(), 10)
	case shape.IsFloat(k):
		return strconv.FormatFloat(v.Float(), 'g', -1, v.Type().Bits())
	default:
		return strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits())
	}
}
