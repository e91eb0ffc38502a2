package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/term"
)

var (
	s  = term.IRI("http://ex/s")
	p1 = term.IRI("http://ex/p1")
	p2 = term.IRI("http://ex/p2")
	o1 = term.IRI("http://ex/o1")
	o2 = term.IRI("http://ex/o2")
	o3 = term.IRI("http://ex/o3")
)

func TestDescriptionAddIdempotent(t *testing.T) {
	d := NewDescription(s).Add(p1, o1)
	again := d.Add(p1, o1)
	assert.True(t, d.Equal(again))
	assert.Equal(t, 1, again.Count())
}

func TestDescriptionPutReplacesOnlyThatPredicate(t *testing.T) {
	// S5: start {(s,p1,o1),(s,p2,o2)}; put (s,p1,o3) -> {(s,p1,o3),(s,p2,o2)}.
	d := NewDescription(s).Add(p1, o1).Add(p2, o2)
	out := d.Put(p1, o3)
	got, ok := out.Get(p1)
	require.True(t, ok)
	assert.Equal(t, []term.Term{o3}, got)
	got2, ok := out.Get(p2)
	require.True(t, ok)
	assert.Equal(t, []term.Term{o2}, got2)
}

func TestDescriptionDeleteEmptiesPredicate(t *testing.T) {
	d := NewDescription(s).Add(p1, o1)
	out := d.Delete(p1, o1)
	_, ok := out.Get(p1)
	assert.False(t, ok)
	assert.Equal(t, 0, out.Count())
}

func TestDescriptionUpdate(t *testing.T) {
	d := NewDescription(s).Add(p1, o1)
	out := d.Update(p1, nil, func(cur []term.Term) []term.Term { return append(cur, o2) })
	got, _ := out.Get(p1)
	assert.ElementsMatch(t, []term.Term{o1, o2}, got)

	// absent predicate with init inserts init without calling f.
	called := false
	out2 := d.Update(p2, []term.Term{o3}, func([]term.Term) []term.Term { called = true; return nil })
	assert.False(t, called)
	got2, ok := out2.Get(p2)
	require.True(t, ok)
	assert.Equal(t, []term.Term{o3}, got2)

	// absent predicate, no init: unchanged.
	out3 := d.Update(p2, nil, func([]term.Term) []term.Term { return nil })
	assert.True(t, out3.Equal(d))
}

func TestDescriptionNewDropsMismatchedSubject(t *testing.T) {
	other := term.IRI("http://ex/other")
	d := NewDescription(s, []term.Triple{{Subject: other, Predicate: p1, Object: o1}})
	assert.Equal(t, 0, d.Count())
}

func TestDescriptionObjectsExcludesLiteralsByDefault(t *testing.T) {
	d := NewDescription(s).Add(p1, o1).Add(p1, term.NewTypedLiteral("x", ""))
	objs := d.Objects(nil)
	assert.Equal(t, []term.Term{o1}, objs)

	all := d.Objects(func(term.Term) bool { return true })
	assert.Len(t, all, 2)
}

func TestDescriptionTake(t *testing.T) {
	d := NewDescription(s).Add(p1, o1).Add(p2, o2)
	out := d.Take([]term.IRI{p1})
	_, ok := out.Get(p2)
	assert.False(t, ok)
	got, ok := out.Get(p1)
	require.True(t, ok)
	assert.Equal(t, []term.Term{o1}, got)
}
