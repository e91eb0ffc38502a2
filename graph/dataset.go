package graph

import (
	"github.com/rdfkit/rdfkit/term"
)

// Dataset is an optionally named collection of named Graphs plus one
// unnamed default Graph (§3, §4.3). Every mutator returns a new value, as
// for Graph.
type Dataset struct {
	name   term.Term
	def    *Graph
	named  map[string]*Graph
	nOrder []string
}

// DatasetOption configures NewDataset.
type DatasetOption func(*Dataset)

// WithDatasetName sets the dataset's name.
func WithDatasetName(name term.Term) DatasetOption { return func(d *Dataset) { d.name = name } }

// NewDataset creates an empty Dataset, or one seeded from quads/graphs.
// Accepted seed shapes: term.Quad, []term.Quad, *Graph (becomes a named
// graph if it has a name, else merges into the default graph), []*Graph.
func NewDataset(data interface{}, opts ...DatasetOption) *Dataset {
	d := &Dataset{def: New(nil), named: map[string]*Graph{}}
	if data != nil {
		d.absorb(data)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dataset) absorb(data interface{}) {
	switch v := data.(type) {
	case nil:
		return
	case term.Quad:
		d.addQuad(v)
	case []term.Quad:
		for _, q := range v {
			d.addQuad(q)
		}
	case *Graph:
		d.mergeGraph(v)
	case []*Graph:
		for _, g := range v {
			d.mergeGraph(g)
		}
	case []interface{}:
		for _, item := range v {
			d.absorb(item)
		}
	}
}

func (d *Dataset) addQuad(q term.Quad) {
	t := q.Triple()
	if q.Graph == nil {
		d.def = d.def.Add(t)
		return
	}
	key := q.Graph.String()
	g, ok := d.named[key]
	if !ok {
		g = New(nil, WithName(q.Graph))
		d.nOrder = append(d.nOrder, key)
	}
	d.named[key] = g.Add(t)
}

func (d *Dataset) mergeGraph(g *Graph) {
	if g == nil {
		return
	}
	if g.Name() == nil {
		d.def = d.def.Add(g)
		return
	}
	key := g.Name().String()
	cur, ok := d.named[key]
	if !ok {
		d.named[key] = g
		d.nOrder = append(d.nOrder, key)
		return
	}
	d.named[key] = cur.Add(g)
}

func (d *Dataset) clone() *Dataset {
	out := &Dataset{
		name:   d.name,
		def:    d.def,
		named:  make(map[string]*Graph, len(d.named)),
		nOrder: append([]string(nil), d.nOrder...),
	}
	for k, g := range d.named {
		out.named[k] = g
	}
	return out
}

// Name returns the dataset's name, or nil if unnamed.
func (d *Dataset) Name() term.Term { return d.name }

// DefaultGraph returns the dataset's default (unnamed) graph.
func (d *Dataset) DefaultGraph() *Graph { return d.def }

// Graph returns the named graph for name, or nil if absent.
func (d *Dataset) Graph(name term.Term) *Graph {
	if name == nil {
		return d.def
	}
	return d.named[name.String()]
}

// GraphNames returns the names of every named graph in the dataset.
func (d *Dataset) GraphNames() []term.Term {
	out := make([]term.Term, 0, len(d.nOrder))
	for _, key := range d.nOrder {
		out = append(out, d.named[key].Name())
	}
	return out
}

// Add merges data into the dataset; a nil graph-name in a Quad routes it
// to the default graph (§4.3).
func (d *Dataset) Add(data interface{}) *Dataset {
	out := d.clone()
	out.absorb(data)
	return out
}

// Delete removes quads from the dataset. data may be a term.Quad, a
// []term.Quad, or a []interface{} of those; any other value, including a
// *Graph, is ignored. A named graph left empty is removed.
func (d *Dataset) Delete(data interface{}) *Dataset {
	out := d.clone()
	for _, q := range collectQuads(data) {
		if q.Graph == nil {
			out.def = out.def.Delete(q.Triple())
			continue
		}
		key := q.Graph.String()
		g, ok := out.named[key]
		if !ok {
			continue
		}
		g = g.Delete(q.Triple())
		if g.TripleCount() == 0 {
			delete(out.named, key)
			out.nOrder = removeStr(out.nOrder, key)
		} else {
			out.named[key] = g
		}
	}
	return out
}

func collectQuads(data interface{}) []term.Quad {
	switch v := data.(type) {
	case term.Quad:
		return []term.Quad{v}
	case []term.Quad:
		return v
	case []interface{}:
		var out []term.Quad
		for _, item := range v {
			out = append(out, collectQuads(item)...)
		}
		return out
	default:
		return nil
	}
}

// DeleteGraph removes an entire named graph from the dataset.
func (d *Dataset) DeleteGraph(name term.Term) *Dataset {
	out := d.clone()
	key := name.String()
	delete(out.named, key)
	out.nOrder = removeStr(out.nOrder, key)
	return out
}

// PutGraph replaces the named graph (or, for a nil name, the default
// graph) wholesale.
func (d *Dataset) PutGraph(name term.Term, g *Graph) *Dataset {
	out := d.clone()
	if name == nil {
		out.def = g
		return out
	}
	key := name.String()
	if _, ok := out.named[key]; !ok {
		out.nOrder = append(out.nOrder, key)
	}
	out.named[key] = g
	return out
}

// Quads enumerates every quad in the dataset, default graph first.
func (d *Dataset) Quads() []term.Quad {
	var out []term.Quad
	for _, t := range d.def.Triples() {
		out = append(out, term.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object})
	}
	for _, key := range d.nOrder {
		g := d.named[key]
		for _, t := range g.Triples() {
			out = append(out, term.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object, Graph: g.Name()})
		}
	}
	return out
}

// QuadCount returns the total number of quads across every graph.
func (d *Dataset) QuadCount() int {
	n := d.def.TripleCount()
	for _, key := range d.nOrder {
		n += d.named[key].TripleCount()
	}
	return n
}

// Equal reports whether two datasets have the same name and the same set
// of graphs (by name and triples; unnamed default graphs are compared
// directly).
func (d *Dataset) Equal(o *Dataset) bool {
	if o == nil {
		return d.QuadCount() == 0
	}
	if !term.Equal(d.name, o.name) {
		return false
	}
	if !d.def.Equal(o.def) {
		return false
	}
	if len(d.named) != len(o.named) {
		return false
	}
	for key, g := range d.named {
		og, ok := o.named[key]
		if !ok || !g.Equal(og) {
			return false
		}
	}
	return true
}
