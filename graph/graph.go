package graph

import (
	"sort"

	"github.com/rdfkit/rdfkit/rdflog"
	"github.com/rdfkit/rdfkit/term"
)

var log = rdflog.Component("graph")

// Graph is an optionally named, immutable set of triples indexed by
// subject. Two Graphs are Equal iff their name and triples match; the
// prefix map and base IRI are metadata (§3, §4.2).
type Graph struct {
	name  term.Term // nil means unnamed
	descs map[string]*Description
	// subjOrder preserves first-insertion order of subjects; see
	// Description.predOrder for why Go needs this explicitly.
	subjOrder []string

	prefixes *PrefixMap
	base     string
}

// Option configures New.
type Option func(*Graph)

// WithName sets the graph's name (an IRI or BlankNode).
func WithName(name term.Term) Option { return func(g *Graph) { g.name = name } }

// WithPrefixes seeds the graph's prefix map.
func WithPrefixes(m map[string]string) Option {
	return func(g *Graph) { g.prefixes = NewPrefixMap(m) }
}

// WithBaseIRI sets the graph's base IRI.
func WithBaseIRI(base string) Option { return func(g *Graph) { g.base = base } }

// New creates a Graph, optionally seeded from any combination of
// term.Triple, *Description, *Graph, or slices thereof. When seeded from
// another Graph, prefixes and base IRI are inherited unless an Option
// overrides them; the other graph's name is always dropped (§4.2 new).
func New(data interface{}, opts ...Option) *Graph {
	g := &Graph{descs: make(map[string]*Description)}
	if data != nil {
		g.absorb(data)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph) absorb(data interface{}) {
	switch v := data.(type) {
	case nil:
		return
	case term.Triple:
		g.addTriple(v)
	case []term.Triple:
		for _, t := range v {
			g.addTriple(t)
		}
	case *Description:
		g.mergeDescription(v)
	case []*Description:
		for _, d := range v {
			g.mergeDescription(d)
		}
	case *Graph:
		g.mergeGraph(v, FirstWriterWins)
	case []*Graph:
		for _, o := range v {
			g.mergeGraph(o, FirstWriterWins)
		}
	case []interface{}:
		for _, item := range v {
			g.absorb(item)
		}
	default:
		log.Warningf("ignoring unrecognized seed value of type %T", data)
	}
}

func (g *Graph) addTriple(t term.Triple) {
	key := t.Subject.String()
	d, ok := g.descs[key]
	if !ok {
		d = NewDescription(t.Subject)
		g.descs[key] = d
		g.subjOrder = append(g.subjOrder, key)
	}
	g.descs[key] = d.Add(t.Predicate, t.Object)
}

func (g *Graph) mergeDescription(d *Description) {
	if d == nil {
		return
	}
	key := d.subject.String()
	cur, ok := g.descs[key]
	if !ok {
		g.descs[key] = d.clone()
		g.subjOrder = append(g.subjOrder, key)
		return
	}
	g.descs[key] = NewDescription(cur.subject, cur, d)
}

func (g *Graph) mergeGraph(o *Graph, resolve ConflictFunc) {
	if o == nil {
		return
	}
	for _, key := range o.subjOrder {
		g.mergeDescription(o.descs[key])
	}
	g.prefixes = g.prefixes.merge(o.prefixes, resolve)
	if g.base == "" {
		g.base = o.base
	}
}

func (g *Graph) clone() *Graph {
	out := &Graph{
		name:      g.name,
		descs:     make(map[string]*Description, len(g.descs)),
		subjOrder: append([]string(nil), g.subjOrder...),
		prefixes:  g.prefixes,
		base:      g.base,
	}
	for k, d := range g.descs {
		out.descs[k] = d
	}
	return out
}

// Name returns the graph's name, or nil if unnamed.
func (g *Graph) Name() term.Term { return g.name }

// Add merges data into the graph (§4.2 add); duplicate triples collapse.
// Adding a *Graph merges its prefix map with first-writer-wins.
func (g *Graph) Add(data interface{}) *Graph {
	out := g.clone()
	out.absorb(data)
	return out
}

// Put replaces, for every (s,p) pair present in data, the entire object set
// under (s,p); other (s,p') pairs for the same subject are preserved
// (§4.2 put, S5).
func (g *Graph) Put(data interface{}) *Graph {
	out := g.clone()
	byPredsBySubject := map[string]map[term.IRI][]term.Term{}
	var subjOf = map[string]term.Term{}
	record := func(t term.Triple) {
		key := t.Subject.String()
		subjOf[key] = t.Subject
		m, ok := byPredsBySubject[key]
		if !ok {
			m = map[term.IRI][]term.Term{}
			byPredsBySubject[key] = m
		}
		m[t.Predicate] = append(m[t.Predicate], t.Object)
	}
	for _, t := range collectTriples(data) {
		record(t)
	}
	for key, preds := range byPredsBySubject {
		cur, ok := out.descs[key]
		if !ok {
			cur = NewDescription(subjOf[key])
			out.subjOrder = append(out.subjOrder, key)
		}
		for p, objs := range preds {
			cur = cur.Put(p, objs...)
		}
		out.descs[key] = cur
	}
	return out
}

// collectTriples flattens any absorbable seed value into a triple slice.
func collectTriples(data interface{}) []term.Triple {
	switch v := data.(type) {
	case term.Triple:
		return []term.Triple{v}
	case []term.Triple:
		return v
	case *Description:
		if v == nil {
			return nil
		}
		return v.Triples()
	case []*Description:
		var out []term.Triple
		for _, d := range v {
			out = append(out, collectTriples(d)...)
		}
		return out
	case *Graph:
		if v == nil {
			return nil
		}
		return v.Triples()
	case []interface{}:
		var out []term.Triple
		for _, item := range v {
			out = append(out, collectTriples(item)...)
		}
		return out
	default:
		return nil
	}
}

// Delete removes data from the graph, symmetric to Add; emptied
// descriptions are removed. Deleting a *Graph deletes its triples
// regardless of the two graphs' names.
func (g *Graph) Delete(data interface{}) *Graph {
	out := g.clone()
	for _, t := range collectTriples(data) {
		key := t.Subject.String()
		d, ok := out.descs[key]
		if !ok {
			continue
		}
		d = d.Delete(t.Predicate, t.Object)
		if d.Count() == 0 {
			delete(out.descs, key)
			out.subjOrder = removeStr(out.subjOrder, key)
		} else {
			out.descs[key] = d
		}
	}
	return out
}

// DeleteSubjects removes the entire description for each given subject.
func (g *Graph) DeleteSubjects(subjects ...term.Term) *Graph {
	out := g.clone()
	for _, s := range subjects {
		key := s.String()
		delete(out.descs, key)
		out.subjOrder = removeStr(out.subjOrder, key)
	}
	return out
}

// Update applies Description.Update semantics at the subject level; f may
// return a Description whose subject differs from s, in which case the
// subject is rewritten to s (§4.2 update).
func (g *Graph) Update(s term.Term, init *Description, f func(*Description) *Description) *Graph {
	out := g.clone()
	key := s.String()
	cur, ok := out.descs[key]
	if !ok {
		if init == nil {
			return out
		}
		rewritten := NewDescription(s, init)
		out.descs[key] = rewritten
		out.subjOrder = append(out.subjOrder, key)
		return out
	}
	next := f(cur)
	if next == nil || next.Count() == 0 {
		delete(out.descs, key)
		out.subjOrder = removeStr(out.subjOrder, key)
		return out
	}
	rewritten := NewDescription(s)
	for _, p := range next.predOrder {
		for _, o := range next.preds[p].order {
			rewritten.addOne(p, o)
		}
	}
	out.descs[key] = rewritten
	return out
}

// Fetch returns the Description for s, or nil if absent.
func (g *Graph) Fetch(s term.Term) *Description { return g.descs[s.String()] }

// Get is an alias for Fetch kept for symmetry with Description.Get-style naming.
func (g *Graph) Get(s term.Term) (*Description, bool) {
	d, ok := g.descs[s.String()]
	return d, ok
}

// Pop removes and returns some Description; which one is unspecified.
func (g *Graph) Pop() (*Description, *Graph, bool) {
	if len(g.subjOrder) == 0 {
		return nil, g, false
	}
	key := g.subjOrder[0]
	d := g.descs[key]
	out := g.clone()
	delete(out.descs, key)
	out.subjOrder = removeStr(out.subjOrder, key)
	return d, out, true
}

// Subjects returns every subject with at least one triple.
func (g *Graph) Subjects() []term.Term {
	out := make([]term.Term, 0, len(g.subjOrder))
	for _, key := range g.subjOrder {
		out = append(out, g.descs[key].subject)
	}
	return out
}

// Predicates returns the union of predicates across all descriptions.
func (g *Graph) Predicates() []term.IRI {
	seen := map[term.IRI]bool{}
	var out []term.IRI
	for _, key := range g.subjOrder {
		for _, p := range g.descs[key].Predicates() {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// Objects returns resource objects across all descriptions by default; see
// Description.Objects for the filter contract.
func (g *Graph) Objects(filter func(term.Term) bool) []term.Term {
	seen := map[string]bool{}
	var out []term.Term
	for _, key := range g.subjOrder {
		for _, o := range g.descs[key].Objects(filter) {
			if k := o.String(); !seen[k] {
				seen[k] = true
				out = append(out, o)
			}
		}
	}
	return out
}

// Resources is an alias for Objects(nil).
func (g *Graph) Resources() []term.Term { return g.Objects(nil) }

// Triples enumerates every triple in the graph, in unspecified order.
func (g *Graph) Triples() []term.Triple {
	var out []term.Triple
	for _, key := range g.subjOrder {
		out = append(out, g.descs[key].Triples()...)
	}
	return out
}

// TripleCount returns the total number of triples.
func (g *Graph) TripleCount() int {
	n := 0
	for _, key := range g.subjOrder {
		n += g.descs[key].Count()
	}
	return n
}

// SubjectCount returns the number of distinct subjects with triples.
func (g *Graph) SubjectCount() int { return len(g.subjOrder) }

// Include reports whether (s,p,o) is present.
func (g *Graph) Include(t term.Triple) bool {
	d, ok := g.descs[t.Subject.String()]
	return ok && d.Include(t.Predicate, t.Object)
}

// Take restricts the graph to the given subjects and predicates; a nil
// slice for either means "all" (§4.2 take).
func (g *Graph) Take(subjects []term.Term, predicates []term.IRI) *Graph {
	out := New(nil, WithName(g.name))
	out.prefixes, out.base = g.prefixes, g.base
	keys := g.subjOrder
	if subjects != nil {
		keys = nil
		for _, s := range subjects {
			keys = append(keys, s.String())
		}
	}
	for _, key := range keys {
		d, ok := g.descs[key]
		if !ok {
			continue
		}
		restricted := d.Take(predicates)
		if restricted.Count() > 0 {
			out.descs[key] = restricted
			out.subjOrder = append(out.subjOrder, key)
		}
	}
	return out
}

// Equal reports whether g and o have the same name and the same triples;
// prefix map and base IRI are ignored (§4.2 equal?, Property 4).
func (g *Graph) Equal(o *Graph) bool {
	if o == nil {
		return g.TripleCount() == 0
	}
	if !term.Equal(g.name, o.name) {
		return false
	}
	if len(g.descs) != len(o.descs) {
		return false
	}
	for key, d := range g.descs {
		od, ok := o.descs[key]
		if !ok || !d.Equal(od) {
			return false
		}
	}
	return true
}

// AddPrefixes merges prefixes into the graph's prefix map, resolving
// conflicts with resolve (default: last-writer-wins, per explicit calls).
func (g *Graph) AddPrefixes(m map[string]string, resolve ConflictFunc) *Graph {
	if resolve == nil {
		resolve = LastWriterWins
	}
	out := g.clone()
	out.prefixes = out.prefixes.merge(NewPrefixMap(m), resolve)
	return out
}

// DeletePrefixes removes the given prefixes from the graph's prefix map.
func (g *Graph) DeletePrefixes(prefixes ...string) *Graph {
	out := g.clone()
	out.prefixes = out.prefixes.delete(prefixes...)
	return out
}

// ClearPrefixes empties the graph's prefix map.
func (g *Graph) ClearPrefixes() *Graph {
	out := g.clone()
	out.prefixes = NewPrefixMap(nil)
	return out
}

// Prefixes returns the graph's prefix map.
func (g *Graph) Prefixes() *PrefixMap { return g.prefixes }

// SetBaseIRI sets the graph's base IRI.
func (g *Graph) SetBaseIRI(base string) *Graph {
	out := g.clone()
	out.base = base
	return out
}

// ClearBaseIRI removes the graph's base IRI.
func (g *Graph) ClearBaseIRI() *Graph {
	out := g.clone()
	out.base = ""
	return out
}

// BaseIRI returns the graph's base IRI, or "" if unset.
func (g *Graph) BaseIRI() string { return g.base }

// ClearMetadata drops both the prefix map and the base IRI.
func (g *Graph) ClearMetadata() *Graph {
	out := g.clone()
	out.prefixes, out.base = nil, ""
	return out
}

// Clear empties the graph's triples but keeps name, prefixes and base IRI.
func (g *Graph) Clear() *Graph {
	return &Graph{name: g.name, descs: make(map[string]*Description), prefixes: g.prefixes, base: g.base}
}

func removeStr(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// SortSubjects orders subjects with IRIs before blank nodes, then
// lexically by String() within each kind — the Turtle serializer's
// description ordering rule (§4.5.4) applied to whatever subset of a
// graph's subjects it is grouping at the time.
func SortSubjects(subjects []term.Term) []term.Term {
	out := append([]term.Term(nil), subjects...)
	sort.SliceStable(out, func(i, j int) bool {
		_, iIsBlank := out[i].(term.BlankNode)
		_, jIsBlank := out[j].(term.BlankNode)
		if iIsBlank != jIsBlank {
			return !iIsBlank
		}
		return out[i].String() < out[j].String()
	})
	return out
}
