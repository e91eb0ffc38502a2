package bgp

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
)

func mustIRI(t *testing.T, s string) term.IRI { t.Helper(); return term.IRI(s) }

func TestSelfJoin(t *testing.T) {
	// S3: {(ex:a ex:p ex:a), (ex:a ex:p ex:b)}, pattern {?x ex:p ?x} => {?x -> ex:a}.
	a, b, p := term.IRI("ex:a"), term.IRI("ex:b"), term.IRI("ex:p")
	g := graph.New([]term.Triple{
		{Subject: a, Predicate: p, Object: a},
		{Subject: a, Predicate: p, Object: b},
	})
	q, err := New(nil, T(Var("x"), p, Var("x")))
	require.NoError(t, err)

	sols := Match(g, q)
	require.Len(t, sols, 1)
	assert.Equal(t, a, sols[0][Var("x")])
}

func TestStreamMatchesMaterialize(t *testing.T) {
	var triples []term.Triple
	for i := 0; i < 25; i++ {
		triples = append(triples, term.Triple{
			Subject:   term.IRI("ex:s"),
			Predicate: term.IRI("ex:p"),
			Object:    term.NewTypedLiteral(string(rune('a'+i)), ""),
		})
	}
	g := graph.New(triples)
	q, err := New(nil, T(Var("s"), term.IRI("ex:p"), Var("o")))
	require.NoError(t, err)

	materialized := Match(g, q)

	c := Stream(context.Background(), g, q)
	var streamed []Solution
	for c.Next() {
		streamed = append(streamed, c.Solution())
	}
	require.NoError(t, c.Close())

	assert.Equal(t, solutionSet(materialized), solutionSet(streamed))
}

func TestZeroPatternQueryYieldsEmptySolution(t *testing.T) {
	q, err := New(nil)
	require.NoError(t, err)
	g := graph.New(nil)
	sols := Match(g, q)
	require.Len(t, sols, 1)
	assert.Empty(t, sols[0])
}

func TestLiteralInSubjectIsInvalidQuery(t *testing.T) {
	_, err := New(nil, T(term.NewTypedLiteral("x", ""), term.IRI("ex:p"), Var("o")))
	require.Error(t, err)
}

func TestPathBuilder(t *testing.T) {
	s, p1, p2, o := term.IRI("ex:s"), term.IRI("ex:p1"), term.IRI("ex:p2"), term.IRI("ex:o")
	mid := term.BlankNode("m")
	g := graph.New([]term.Triple{
		{Subject: s, Predicate: p1, Object: mid},
		{Subject: mid, Predicate: p2, Object: o},
	})
	q, err := New(nil, Path(s, p1, p2, Var("end")))
	require.NoError(t, err)
	sols := Match(g, q)
	require.Len(t, sols, 1)
	assert.Equal(t, o, sols[0][Var("end")])
	// the path midpoint is internal, never exposed as a free variable.
	assert.Len(t, q.FreeVars(), 1)
}

func TestFanOut(t *testing.T) {
	s, p := term.IRI("ex:s"), term.IRI("ex:p")
	o1, o2 := term.IRI("ex:o1"), term.IRI("ex:o2")
	g := graph.New([]term.Triple{{Subject: s, Predicate: p, Object: o1}, {Subject: s, Predicate: p, Object: o2}})
	q, err := New(nil, Fan(s, p, o1, o2, term.IRI("ex:missing")))
	require.NoError(t, err)
	sols := Match(g, q)
	assert.Len(t, sols, 0) // conjunctive: all three patterns must hold simultaneously and ex:missing never does
}

func TestTakeBoundsWork(t *testing.T) {
	var triples []term.Triple
	for i := 0; i < 10000; i++ {
		triples = append(triples, term.Triple{
			Subject:   term.IRI("ex:s"),
			Predicate: term.IRI("ex:p"),
			Object:    term.NewTypedLiteral(string(rune(i)), ""),
		})
	}
	g := graph.New(triples)
	q, err := New(nil, T(Var("s"), Var("p"), Var("o")))
	require.NoError(t, err)
	c := Stream(context.Background(), g, q)
	got := Take(c, 1)
	assert.Len(t, got, 1)
}

func solutionSet(sols []Solution) []string {
	var out []string
	for _, s := range sols {
		keys := make([]Var, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		str := ""
		for _, k := range keys {
			str += string(k) + "=" + s[k].String() + ";"
		}
		out = append(out, str)
	}
	sort.Strings(out)
	return out
}
