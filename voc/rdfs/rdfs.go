// Package rdfs holds the RDF Schema vocabulary's IRI constants.
package rdfs

import (
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc"
)

// NS is the RDFS vocabulary namespace IRI.
const NS = "http://www.w3.org/2000/01/rdf-schema#"

// Prefix is the conventional short prefix for NS.
const Prefix = "rdfs"

func init() { voc.RegisterPrefix(Prefix, NS) }

const (
	Class      term.IRI = NS + "Class"
	Resource   term.IRI = NS + "Resource"
	Label      term.IRI = NS + "label"
	Comment    term.IRI = NS + "comment"
	SubClassOf term.IRI = NS + "subClassOf"
	SubPropertyOf term.IRI = NS + "subPropertyOf"
	Domain     term.IRI = NS + "domain"
	Range      term.IRI = NS + "range"
	SeeAlso    term.IRI = NS + "seeAlso"
	IsDefinedBy term.IRI = NS + "isDefinedBy"
)
