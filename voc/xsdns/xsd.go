// Package xsdns holds the XML Schema datatype IRI constants used by the
// Turtle serializer's canonical-lexical rules and the built-in datatype
// registry in package xsd.
package xsdns

import (
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc"
)

// NS is the XSD namespace IRI.
const NS = "http://www.w3.org/2001/XMLSchema#"

// Prefix is the conventional short prefix for NS.
const Prefix = "xsd"

func init() { voc.RegisterPrefix(Prefix, NS) }

const (
	String   term.IRI = NS + "string"
	Boolean  term.IRI = NS + "boolean"
	Integer  term.IRI = NS + "integer"
	Decimal  term.IRI = NS + "decimal"
	Double   term.IRI = NS + "double"
	Float    term.IRI = NS + "float"
	DateTime term.IRI = NS + "dateTime"
	Date     term.IRI = NS + "date"
	AnyURI   term.IRI = NS + "anyURI"
)
