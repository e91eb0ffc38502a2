// Copyright 2014 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package graph implements the immutable-value core of the RDF data model:
// Description (all statements for one subject), Graph (a named set of
// triples indexed by subject) and Dataset (named graphs plus a default
// graph). Every mutator returns a new value; nothing here is shared
// mutable state, mirroring the teacher's "value, not handle" treatment of
// quad.Quad generalized up three levels.
package graph

import (
	"sort"

	"github.com/rdfkit/rdfkit/term"
)

// objectSet is an ordered set of objects under one predicate: a slice plus
// a membership index, since Go has no native ordered set. Order is
// insertion order and is never part of equality, only of deterministic
// iteration for serialization (see SPEC_FULL.md §9(b)).
type objectSet struct {
	order []term.Term
	index map[string]int
}

func newObjectSet() *objectSet {
	return &objectSet{index: make(map[string]int)}
}

func (s *objectSet) has(o term.Term) bool {
	_, ok := s.index[o.String()]
	return ok
}

func (s *objectSet) add(o term.Term) bool {
	if s.has(o) {
		return false
	}
	s.index[o.String()] = len(s.order)
	s.order = append(s.order, o)
	return true
}

func (s *objectSet) remove(o term.Term) bool {
	key := o.String()
	i, ok := s.index[key]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, key)
	for k, v := range s.index {
		if v > i {
			s.index[k] = v - 1
		}
	}
	return true
}

func (s *objectSet) clone() *objectSet {
	out := newObjectSet()
	for _, o := range s.order {
		out.add(o)
	}
	return out
}

func (s *objectSet) len() int { return len(s.order) }

// Description holds every (predicate, object) pair for one fixed subject.
// The subject never changes across Description's own operations; the zero
// value is invalid, use New.
type Description struct {
	subject term.Term
	preds   map[term.IRI]*objectSet
	// predOrder records first-insertion order of predicates, since Go maps
	// have none; Turtle serialization needs it for the "unsorted tail" tie
	// -break (SPEC_FULL.md §9(b)) and for reproducible multi-predicate output.
	predOrder []term.IRI
}

// NewDescription creates a Description for subject, optionally seeded from
// init: a single (p, o) pair given as two arguments (a term.IRI followed by
// a term.Term), or any number of map[term.IRI][]term.Term,
// map[term.IRI]term.Term, term.Triple, []term.Triple or *Description
// values. Triples and Descriptions whose subject differs from subject are
// dropped with a logged warning (§4.1 new).
func NewDescription(subject term.Term, init ...interface{}) *Description {
	d := &Description{subject: subject, preds: make(map[term.IRI]*objectSet)}
	if len(init) == 2 {
		if p, ok := init[0].(term.IRI); ok {
			if o, ok := init[1].(term.Term); ok {
				d.addOne(p, o)
				return d
			}
		}
	}
	for _, in := range init {
		d.absorb(in)
	}
	return d
}

func (d *Description) absorb(init interface{}) {
	switch v := init.(type) {
	case nil:
		return
	case *Description:
		if v == nil || !term.Equal(v.subject, d.subject) {
			if v != nil {
				log.Warningf("dropping description for subject %v while building description for %v", v.subject, d.subject)
			}
			return
		}
		for _, p := range v.predOrder {
			for _, o := range v.preds[p].order {
				d.addOne(p, o)
			}
		}
	case map[term.IRI][]term.Term:
		for p, os := range v {
			for _, o := range os {
				d.addOne(p, o)
			}
		}
	case map[term.IRI]term.Term:
		for p, o := range v {
			d.addOne(p, o)
		}
	case []term.Triple:
		for _, t := range v {
			if !term.Equal(t.Subject, d.subject) {
				log.Warningf("dropping triple with subject %v while building description for %v", t.Subject, d.subject)
				continue
			}
			d.addOne(t.Predicate, t.Object)
		}
	case term.Triple:
		d.absorb([]term.Triple{v})
	default:
		log.Warningf("ignoring unrecognized init value of type %T for description of %v", init, d.subject)
	}
}

func (d *Description) addOne(p term.IRI, o term.Term) {
	set, ok := d.preds[p]
	if !ok {
		set = newObjectSet()
		d.preds[p] = set
		d.predOrder = append(d.predOrder, p)
	}
	set.add(o)
}

// Subject returns the description's fixed subject.
func (d *Description) Subject() term.Term { return d.subject }

// Add inserts every (p, oᵢ); duplicates collapse. Returns a new Description.
func (d *Description) Add(p term.IRI, objects ...term.Term) *Description {
	out := d.clone()
	for _, o := range objects {
		out.addOne(p, o)
	}
	return out
}

// Put replaces all objects currently under p with objects; other predicates
// are untouched.
func (d *Description) Put(p term.IRI, objects ...term.Term) *Description {
	out := d.clone()
	delete(out.preds, p)
	out.predOrder = removeIRI(out.predOrder, p)
	for _, o := range objects {
		out.addOne(p, o)
	}
	return out
}

// Delete removes the listed (p, oᵢ); if p's object set becomes empty, p is
// removed entirely.
func (d *Description) Delete(p term.IRI, objects ...term.Term) *Description {
	out := d.clone()
	set, ok := out.preds[p]
	if !ok {
		return out
	}
	for _, o := range objects {
		set.remove(o)
	}
	if set.len() == 0 {
		delete(out.preds, p)
		out.predOrder = removeIRI(out.predOrder, p)
	}
	return out
}

// DeletePredicates removes all statements for the given predicates.
func (d *Description) DeletePredicates(preds ...term.IRI) *Description {
	out := d.clone()
	for _, p := range preds {
		delete(out.preds, p)
		out.predOrder = removeIRI(out.predOrder, p)
	}
	return out
}

// Update applies f to p's current objects and replaces them with the
// result; f returning an empty slice removes p. If p is absent, init (if
// non-nil) is inserted instead and f is never called. If p is absent and
// init is nil, the description is returned unchanged.
func (d *Description) Update(p term.IRI, init []term.Term, f func([]term.Term) []term.Term) *Description {
	cur, ok := d.Get(p)
	if !ok {
		if init == nil {
			return d
		}
		return d.Put(p, init...)
	}
	next := f(cur)
	if len(next) == 0 {
		return d.DeletePredicates(p)
	}
	return d.Put(p, next...)
}

// Get returns the objects under p in insertion order, and whether p is present.
func (d *Description) Get(p term.IRI) ([]term.Term, bool) {
	set, ok := d.preds[p]
	if !ok {
		return nil, false
	}
	out := make([]term.Term, len(set.order))
	copy(out, set.order)
	return out, true
}

// First returns the first object under p, and whether p is present.
func (d *Description) First(p term.IRI) (term.Term, bool) {
	set, ok := d.preds[p]
	if !ok || set.len() == 0 {
		return nil, false
	}
	return set.order[0], true
}

// Pop removes and returns some (p, o) pair; which one is unspecified.
// Returns ok=false on an empty description.
func (d *Description) Pop() (p term.IRI, o term.Term, out *Description, ok bool) {
	if len(d.predOrder) == 0 {
		return "", nil, d, false
	}
	p = d.predOrder[0]
	set := d.preds[p]
	o = set.order[0]
	return p, o, d.Delete(p, o), true
}

// Predicates returns the set of predicates with at least one object.
func (d *Description) Predicates() []term.IRI {
	out := make([]term.IRI, len(d.predOrder))
	copy(out, d.predOrder)
	return out
}

// Objects returns resource objects (IRI, BlankNode) across all predicates
// by default; a filter, if given, controls which objects (including
// literals) are included.
func (d *Description) Objects(filter func(term.Term) bool) []term.Term {
	if filter == nil {
		filter = term.IsResource
	}
	var out []term.Term
	seen := map[string]bool{}
	for _, p := range d.predOrder {
		for _, o := range d.preds[p].order {
			if !filter(o) {
				continue
			}
			if seen[o.String()] {
				continue
			}
			seen[o.String()] = true
			out = append(out, o)
		}
	}
	return out
}

// Resources is an alias for Objects(nil): every resource object.
func (d *Description) Resources() []term.Term { return d.Objects(nil) }

// Take restricts the description to the given predicates; a nil slice means "all".
func (d *Description) Take(preds []term.IRI) *Description {
	if preds == nil {
		return d.clone()
	}
	out := NewDescription(d.subject)
	want := map[term.IRI]bool{}
	for _, p := range preds {
		want[p] = true
	}
	for _, p := range d.predOrder {
		if want[p] {
			for _, o := range d.preds[p].order {
				out.addOne(p, o)
			}
		}
	}
	return out
}

// Count returns the total number of (p, o) pairs.
func (d *Description) Count() int {
	n := 0
	for _, set := range d.preds {
		n += set.len()
	}
	return n
}

// Include reports whether (p, o) is present.
func (d *Description) Include(p term.IRI, o term.Term) bool {
	set, ok := d.preds[p]
	return ok && set.has(o)
}

// Describes reports whether s is this description's subject.
func (d *Description) Describes(s term.Term) bool { return term.Equal(d.subject, s) }

// Equal reports structural equality: same subject, same (p,o) pairs.
func (d *Description) Equal(o *Description) bool {
	if o == nil {
		return d.Count() == 0
	}
	if !term.Equal(d.subject, o.subject) {
		return false
	}
	if len(d.preds) != len(o.preds) {
		return false
	}
	for p, set := range d.preds {
		oset, ok := o.preds[p]
		if !ok || oset.len() != set.len() {
			return false
		}
		for _, obj := range set.order {
			if !oset.has(obj) {
				return false
			}
		}
	}
	return true
}

// Triples enumerates every (subject, p, o) triple in unspecified order.
func (d *Description) Triples() []term.Triple {
	out := make([]term.Triple, 0, d.Count())
	for _, p := range d.predOrder {
		for _, o := range d.preds[p].order {
			out = append(out, term.Triple{Subject: d.subject, Predicate: p, Object: o})
		}
	}
	return out
}

// Values projects predicate -> native Go values, via an optional
// (position, term) -> value mapping function; without one, each object's
// string form is used.
func (d *Description) Values(mapper func(position string, t term.Term) interface{}) map[term.IRI][]interface{} {
	if mapper == nil {
		mapper = func(_ string, t term.Term) interface{} { return t.String() }
	}
	out := make(map[term.IRI][]interface{}, len(d.preds))
	for _, p := range d.predOrder {
		var vs []interface{}
		for _, o := range d.preds[p].order {
			vs = append(vs, mapper("object", o))
		}
		out[p] = vs
	}
	return out
}

func (d *Description) clone() *Description {
	out := &Description{
		subject:   d.subject,
		preds:     make(map[term.IRI]*objectSet, len(d.preds)),
		predOrder: append([]term.IRI(nil), d.predOrder...),
	}
	for p, set := range d.preds {
		out.preds[p] = set.clone()
	}
	return out
}

// OrderPredicates returns preds with the predicates named in first ordered
// as given (those present among preds, in first's order), then every
// remaining predicate lexicographically — the deterministic tie-break
// SPEC_FULL.md §9(b) requires in place of an insertion-order-aware map.
// The Turtle serializer uses this for its rdf:type/rdfs:label/dc:title
// predicate ordering rule (§4.5.4).
func OrderPredicates(preds []term.IRI, first ...term.IRI) []term.IRI {
	firstSet := map[term.IRI]int{}
	for i, p := range first {
		firstSet[p] = i
	}
	rest := make([]term.IRI, 0, len(preds))
	for _, p := range preds {
		if _, ok := firstSet[p]; !ok {
			rest = append(rest, p)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	var out []term.IRI
	for _, p := range first {
		for _, cand := range preds {
			if cand == p {
				out = append(out, p)
				break
			}
		}
	}
	return append(out, rest...)
}

func removeIRI(s []term.IRI, v term.IRI) []term.IRI {
	for i, x := range s {
		if x == v {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}
