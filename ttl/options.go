package ttl

import (
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/rdfs"
)

// Options configures the description-ordering rule of §4.5 step 4: which
// rdf:type values count as "top classes" whose instances are grouped and
// emitted right after the base-IRI description.
type Options struct {
	TopClasses []term.IRI
}

// Option configures Options.
type Option func(*Options)

// WithTopClasses overrides the default top-classes set ({rdfs:Class}).
// Classes are grouped in the order given.
func WithTopClasses(classes ...term.IRI) Option {
	return func(o *Options) { o.TopClasses = classes }
}

func defaultOptions() *Options {
	return &Options{TopClasses: []term.IRI{rdfs.Class}}
}
