package naming

import (
	"fmt"
	"reflect"
)

// Resolver looks up enumeration member names.
type Resolver struct {
	// ProbeLimit is the highest raw value tried, inclusive.
	ProbeLimit int
}

// NewResolver creates a resolver probing raw values 0 through limit.
// A negative limit falls back to DefaultProbeLimit.
func NewResolver(limit int) *Resolver {
	if limit < 0 {
		limit = DefaultProbeLimit
	}
	return &Resolver{ProbeLimit: limit}
}

// EnumName renders v as "TypeName::Member".
//
// Candidate raw values 0 through ProbeLimit are tried in order; the first
// candidate equal to v names the member. Unknown is returned when no
// candidate matches, when the matching candidate has no registered name, or
// when v's type is not a registered enumeration.
func (r *Resolver) EnumName(v reflect.Value) string {
	if !v.IsValid() {
		return Unknown
	}
	t := v.Type()
	entry, ok := lookupEnum(t)
	if !ok {
		return Unknown
	}

	for raw := 0; raw <= r.ProbeLimit; raw++ {
		candidate := reflect.New(t).Elem()
		if !setRaw(candidate, raw) || !candidate.Equal(v) {
			continue
		}
		member, ok := entry.member(candidate, int64(raw))
		if !ok {
			return Unknown
		}
		return TypeName(t) + "::" + member
	}
	return Unknown
}

func (e enumEntry) member(candidate reflect.Value, raw int64) (string, bool) {
	if !e.stringer {
		name, ok := e.members[raw]
		return name, ok
	}

	if s, ok := candidate.Interface().(fmt.Stringer); ok {
		return normalize(s.String()), true
	}
	if candidate.CanAddr() {
		if s, ok := candidate.Addr().Interface().(fmt.Stringer); ok {
			return normalize(s.String()), true
		}
	}
	return "", false
}

// setRaw stores raw into an integer-kinded value, reporting whether it fits.
func setRaw(v reflect.Value, raw int) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.OverflowInt(int64(raw)) {
			return false
		}
		v.SetInt(int64(raw))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.OverflowUint(uint64(raw)) {
			return false
		}
		v.SetUint(uint64(raw))
	default:
		return false
	}
	return true
}
