// Package xsd implements the external "datatype registry" collaborator of
// §6: a process-wide map from datatype IRI to canonical-lexical, native
// value, and comparison functions. It is populated at init time with the
// handful of XSD datatypes the Turtle serializer's canonical-lexical rule
// (§4.5.6) needs, generalizing the teacher's fixed native wrapper types
// (quad.Int, quad.Float, quad.Bool, quad.Time in quad/value.go) into the
// registry interface the core consumes instead of core code.
package xsd

import (
	"fmt"
	"sync"

	"github.com/rdfkit/rdfkit/term"
)

// Ordering is the result of Datatype.Compare.
type Ordering int

const (
	Less Ordering = -1
	Equal Ordering = 0
	Greater Ordering = 1
	Incomparable Ordering = 2
)

// Datatype is the uniform interface the core invokes for every registered
// datatype; new datatypes may be added (via Register) without core changes.
type Datatype struct {
	ID   term.IRI
	Name string

	// Valid reports whether lexical is a well-formed literal of this datatype.
	Valid func(lexical string) bool
	// CanonicalLexical rewrites lexical into its canonical form. Only called
	// when Valid(lexical) is true.
	CanonicalLexical func(lexical string) string
	// Value converts a valid lexical form into a native Go value.
	Value func(lexical string) (interface{}, error)
	// EqualValue reports value-equality between two lexical forms of this datatype.
	EqualValue func(a, b string) bool
	// Compare orders two lexical forms of this datatype, or returns Incomparable.
	Compare func(a, b string) Ordering
	// Cast converts an arbitrary literal (of any datatype) into a literal
	// of this datatype, reporting ok=false when the source can't be
	// represented in this datatype's value space.
	Cast func(l term.Literal) (term.Literal, bool)
	// Update applies f to a literal's native value and rebuilds a literal
	// of this same datatype from the result. f is never called with an
	// invalid lexical form; Value is used to decode first.
	Update func(l term.Literal, f func(interface{}) interface{}) (term.Literal, error)
}

var (
	mu       sync.RWMutex
	registry = map[term.IRI]Datatype{}
)

// Register adds or replaces a datatype in the process-wide registry.
// Writes are expected only at process initialization; reads are safe for
// concurrent use thereafter.
func Register(dt Datatype) {
	mu.Lock()
	defer mu.Unlock()
	registry[dt.ID] = dt
}

// Lookup returns the registered datatype for iri, if any.
func Lookup(iri term.IRI) (Datatype, bool) {
	mu.RLock()
	defer mu.RUnlock()
	dt, ok := registry[iri]
	return dt, ok
}

// Valid reports whether lexical is valid for iri. Unregistered datatypes are
// treated as always valid (their lexical form is opaque to this registry).
func Valid(iri term.IRI, lexical string) bool {
	dt, ok := Lookup(iri)
	if !ok || dt.Valid == nil {
		return true
	}
	return dt.Valid(lexical)
}

// CanonicalLexical returns the canonical lexical form for a literal, or its
// original lexical form if the datatype isn't registered or rejects it.
func CanonicalLexical(l term.Literal) string {
	dt, ok := Lookup(l.Datatype)
	if !ok || dt.CanonicalLexical == nil || !Valid(l.Datatype, l.Lexical) {
		return l.Lexical
	}
	return dt.CanonicalLexical(l.Lexical)
}

// EqualValue reports value-equality for two literals sharing a datatype;
// literals of different datatypes are never value-equal.
func EqualValue(a, b term.Literal) bool {
	if a.Datatype != b.Datatype {
		return false
	}
	dt, ok := Lookup(a.Datatype)
	if !ok || dt.EqualValue == nil {
		return a.Lexical == b.Lexical
	}
	return dt.EqualValue(a.Lexical, b.Lexical)
}

// Compare orders two literals of the same datatype, or returns Incomparable
// for literals of differing or unregistered datatypes.
func Compare(a, b term.Literal) Ordering {
	if a.Datatype != b.Datatype {
		return Incomparable
	}
	dt, ok := Lookup(a.Datatype)
	if !ok || dt.Compare == nil {
		return Incomparable
	}
	return dt.Compare(a.Lexical, b.Lexical)
}

// NativeValue converts a literal's lexical form using its registered
// datatype, or returns the raw lexical string when unregistered.
func NativeValue(l term.Literal) (interface{}, error) {
	dt, ok := Lookup(l.Datatype)
	if !ok || dt.Value == nil {
		return l.Lexical, nil
	}
	return dt.Value(l.Lexical)
}

// Cast converts l into a literal of the target datatype, or reports
// ok=false when target isn't registered or declines the conversion.
func Cast(target term.IRI, l term.Literal) (term.Literal, bool) {
	dt, ok := Lookup(target)
	if !ok || dt.Cast == nil {
		return term.Literal{}, false
	}
	return dt.Cast(l)
}

// Update applies f to l's native value and rebuilds a literal of l's own
// datatype from the result.
func Update(l term.Literal, f func(interface{}) interface{}) (term.Literal, error) {
	dt, ok := Lookup(l.Datatype)
	if !ok || dt.Update == nil {
		return term.Literal{}, fmt.Errorf("xsd: datatype %s has no registered Update", l.Datatype)
	}
	return dt.Update(l, f)
}
