// Package dc holds the small slice of the Dublin Core vocabulary the Turtle
// serializer's predicate ordering rule (§4.5.4) references.
package dc

import (
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc"
)

// NS is the Dublin Core elements namespace IRI.
const NS = "http://purl.org/dc/elements/1.1/"

// Prefix is the conventional short prefix for NS.
const Prefix = "dc"

func init() { voc.RegisterPrefix(Prefix, NS) }

const (
	Title    term.IRI = NS + "title"
	Creator  term.IRI = NS + "creator"
	Description term.IRI = NS + "description"
)
