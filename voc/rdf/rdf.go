// Package rdf holds the RDF vocabulary's IRI constants as a compile-time
// convenience over raw IRI strings.
package rdf

import (
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc"
)

// NS is the RDF vocabulary namespace IRI.
const NS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Prefix is the conventional short prefix for NS.
const Prefix = "rdf"

func init() { voc.RegisterPrefix(Prefix, NS) }

const (
	Type     term.IRI = NS + "type"
	Property term.IRI = NS + "Property"
	Statement term.IRI = NS + "Statement"
	Subject  term.IRI = NS + "subject"
	Predicate term.IRI = NS + "predicate"
	Object   term.IRI = NS + "object"
	Bag      term.IRI = NS + "Bag"
	Seq      term.IRI = NS + "Seq"
	Alt      term.IRI = NS + "Alt"
	List     term.IRI = NS + "List"
	First    term.IRI = NS + "first"
	Rest     term.IRI = NS + "rest"
	Nil      term.IRI = NS + "nil"
	LangString term.IRI = NS + "langString"
	HTML     term.IRI = NS + "HTML"
	PlainLiteral term.IRI = NS + "PlainLiteral"
	XMLLiteral term.IRI = NS + "XMLLiteral"
)
