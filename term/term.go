// Package term implements the RDF 1.1 term model: IRIs, blank nodes, and
// literals, together with the Triple and Quad values built from them.
package term

import (
	"strings"

	"github.com/rdfkit/rdfkit/rdferr"
)

// Term is the value interface implemented by IRI, BlankNode and Literal.
//
// String returns the term in its N-Triples serialization (<iri>, _:label,
// or a quoted literal); it is also the basis of term hashing and
// term-equality, mirroring the teacher's quad.Value contract.
type Term interface {
	String() string
	termSealed()
}

// IRI is an absolute Internationalized Resource Identifier, stored in its
// normalized string form. Equality is byte-exact on that form.
type IRI string

func (t IRI) String() string { return "<" + string(t) + ">" }
func (t IRI) termSealed()    {}

// BlankNode is an opaque local identifier, scoped to its containing graph
// for serialization but globally equal by label within one process.
type BlankNode string

func (t BlankNode) String() string { return "_:" + string(t) }
func (t BlankNode) termSealed()    {}

// Literal is a lexical form plus either a language tag (implying datatype
// rdf:langString) or a datatype IRI (defaulting to xsd:string).
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string // lowercased BCP-47 tag; empty unless this is a language-tagged literal.
}

const (
	xsdString  IRI = "http://www.w3.org/2001/XMLSchema#string"
	rdfLangStr IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// NewLangLiteral builds a language-tagged literal, lowercasing the tag for
// comparison purposes as required by BCP-47.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Datatype: rdfLangStr, Lang: strings.ToLower(lang)}
}

// NewTypedLiteral builds a datatyped literal. An empty datatype defaults to xsd:string.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype == "" {
		datatype = xsdString
	}
	return Literal{Lexical: lexical, Datatype: datatype}
}

// PlainLiteral builds an xsd:string literal with no language tag.
func PlainLiteral(lexical string) Literal { return NewTypedLiteral(lexical, xsdString) }

func (t Literal) IsLangString() bool { return t.Lang != "" }

func (t Literal) String() string {
	var b strings.Builder
	b.WriteByte('"')
	escapeInto(&b, t.Lexical)
	b.WriteByte('"')
	if t.Lang != "" {
		b.WriteByte('@')
		b.WriteString(t.Lang)
		return b.String()
	}
	if t.Datatype != "" && t.Datatype != xsdString {
		b.WriteString("^^")
		b.WriteString(t.Datatype.String())
	}
	return b.String()
}
func (t Literal) termSealed() {}

// Equal implements term-equality: lexical form, datatype and language tag
// must match exactly. Use a datatype registry's value comparator (see
// package xsd) for value-equality instead.
func (t Literal) Equal(o Literal) bool {
	return t.Lexical == o.Lexical && t.Datatype == o.Datatype && t.Lang == o.Lang
}

func escapeInto(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
}

// Equal reports whether two terms are term-equal: same kind, and for
// literals, exact lexical/datatype/language match.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case IRI:
		bv, ok := b.(IRI)
		return ok && av == bv
	case BlankNode:
		bv, ok := b.(BlankNode)
		return ok && av == bv
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

// IsResource reports whether the term may appear as a subject: an IRI or a blank node.
func IsResource(t Term) bool {
	switch t.(type) {
	case IRI, BlankNode:
		return true
	default:
		return false
	}
}

// AsSubject returns t unchanged, or an InvalidTerm error if t is not an IRI
// or BlankNode.
func AsSubject(t Term) (Term, error) {
	if !IsResource(t) {
		return nil, &rdferr.InvalidTerm{Value: t, Position: "subject"}
	}
	return t, nil
}
