// Package naming resolves human-readable names for types and enumeration
// members.
//
// Names come from a process-wide registration table first and fall back to
// the reflect spelling of the type. Go has no enum declaration, so an
// integer type is only treated as an enumeration once it has been
// registered, either with an explicit member table or as a fmt.Stringer
// whose String method names its members.
//
// Registrations normally happen from package-level variable initialisers,
// before main runs. The table is guarded by a mutex, so registration order
// across packages does not matter.
package naming

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// DefaultProbeLimit is the highest raw value tried when looking up an
// enumeration member.
const DefaultProbeLimit = 10

// Unknown is the member name rendered when no candidate value matches.
const Unknown = "?"

type enumEntry struct {
	members  map[int64]string
	stringer bool
}

var (
	mu    sync.RWMutex
	names = make(map[reflect.Type]string)
	enums = make(map[reflect.Type]enumEntry)
)

// incidentalSpace matches whitespace the reflect spelling puts around
// punctuation, e.g. "struct { A int }" or "interface {}".
var incidentalSpace = regexp.MustCompile(`\s*([{};,])\s*`)

// RegisterName overrides the name rendered for t.
// A later registration for the same type replaces the earlier one.
func RegisterName(t reflect.Type, name string) {
	if t == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	names[t] = normalize(name)
}

// RegisterEnum marks t as an enumeration whose members are named by members,
// keyed by raw value. t must have an integer kind.
func RegisterEnum(t reflect.Type, members map[int64]string) error {
	if err := requireInteger(t); err != nil {
		return err
	}
	table := make(map[int64]string, len(members))
	for raw, name := range members {
		table[raw] = normalize(name)
	}

	mu.Lock()
	defer mu.Unlock()
	enums[t] = enumEntry{members: table}
	return nil
}

// RegisterStringer marks t as an enumeration whose members are named by
// its String method. t must have an integer kind and implement fmt.Stringer.
func RegisterStringer(t reflect.Type) error {
	if err := requireInteger(t); err != nil {
		return err
	}
	stringer := reflect.TypeFor[fmt.Stringer]()
	if !t.Implements(stringer) && !reflect.PointerTo(t).Implements(stringer) {
		return fmt.Errorf("type %s does not implement fmt.Stringer", t)
	}

	mu.Lock()
	defer mu.Unlock()
	enums[t] = enumEntry{stringer: true}
	return nil
}

// IsEnum reports whether t has been registered as an enumeration.
func IsEnum(t reflect.Type) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := enums[t]
	return ok
}

// TypeName returns the display name of t: the registered override if any,
// otherwise the normalised reflect spelling. A nil type is named "nil".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	mu.RLock()
	name, ok := names[t]
	mu.RUnlock()
	if ok {
		return name
	}
	return normalize(t.String())
}

// normalize strips incidental whitespace, spells the empty interface in its
// short form and puts the result in Unicode NFC.
func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "interface {}", "any")
	name = incidentalSpace.ReplaceAllString(name, "$1")
	return norm.NFC.String(name)
}

func requireInteger(t reflect.Type) error {
	if t == nil {
		return fmt.Errorf("enumeration type is nil")
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return nil
	default:
		return fmt.Errorf("enumeration type %s must have an integer kind, got %s", t, t.Kind())
	}
}

func lookupEnum(t reflect.Type) (enumEntry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := enums[t]
	return e, ok
}
