package ttl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/rdf"
)

func TestParseBasicTriple(t *testing.T) {
	g, err := ParseString(`@prefix ex: <http://ex/> .
ex:s ex:p ex:o .
`)
	require.NoError(t, err)
	require.Equal(t, 1, g.TripleCount())
	tr := g.Triples()[0]
	assert.Equal(t, term.IRI("http://ex/s"), tr.Subject)
	assert.Equal(t, term.IRI("http://ex/p"), tr.Predicate)
	assert.Equal(t, term.IRI("http://ex/o"), tr.Object)
}

func TestParsePredicateObjectListAndTypeKeyword(t *testing.T) {
	g, err := ParseString(`@prefix ex: <http://ex/> .
ex:s a ex:Thing ; ex:p ex:o1, ex:o2 .
`)
	require.NoError(t, err)
	assert.Equal(t, 3, g.TripleCount())
}

func TestParseCollectionAndBlankNodePropertyList(t *testing.T) {
	g, err := ParseString(`@prefix ex: <http://ex/> .
ex:s ex:p ( ex:a ex:b ) .
ex:s2 ex:p [ ex:q ex:r ] .
`)
	require.NoError(t, err)
	assert.True(t, g.TripleCount() > 0)
}

func TestWriteGraphRendersPrefixedNamesAndTypeKeyword(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("http://ex/s"), Predicate: term.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: term.IRI("http://ex/Thing")},
	}, graph.WithPrefixes(map[string]string{"ex": "http://ex/"}))

	out, err := Marshal(g)
	require.NoError(t, err)
	assert.Contains(t, out, "ex:s a ex:Thing")
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("http://ex/s"), Predicate: term.IRI("http://ex/p"), Object: term.NewTypedLiteral("42", "http://www.w3.org/2001/XMLSchema#integer")},
		{Subject: term.BlankNode("b0"), Predicate: term.IRI("http://ex/p"), Object: term.IRI("http://ex/o")},
	})
	out, err := Marshal(g)
	require.NoError(t, err)

	got, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, graph.Isomorphic(g, got))
}

func TestWriteGraphInlinesSinglyReferencedBlankNode(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("http://ex/s"), Predicate: term.IRI("http://ex/p"), Object: term.BlankNode("b0")},
		{Subject: term.BlankNode("b0"), Predicate: term.IRI("http://ex/q"), Object: term.IRI("http://ex/o")},
	})
	out, err := Marshal(g)
	require.NoError(t, err)
	assert.NotContains(t, out, "_:b0")
	assert.Contains(t, out, "[")
}

func TestMalformedTurtleIsError(t *testing.T) {
	_, err := ParseString("this is not turtle")
	assert.Error(t, err)
}

// TestWriteGraphRendersListSugar covers spec.md's S2 scenario and Testable
// Property 7: a well-formed rdf:first/rdf:rest chain referenced from a
// triple renders as "( ... )" at that triple's object position, with no
// rdf:first/rdf:rest triples surviving in the output.
func TestWriteGraphRendersListSugar(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("http://ex/s"), Predicate: term.IRI("http://ex/p"), Object: term.BlankNode("b0")},
		{Subject: term.BlankNode("b0"), Predicate: rdf.First, Object: term.PlainLiteral("a")},
		{Subject: term.BlankNode("b0"), Predicate: rdf.Rest, Object: term.BlankNode("b1")},
		{Subject: term.BlankNode("b1"), Predicate: rdf.First, Object: term.PlainLiteral("b")},
		{Subject: term.BlankNode("b1"), Predicate: rdf.Rest, Object: rdf.Nil},
	}, graph.WithPrefixes(map[string]string{"ex": "http://ex/"}))

	out, err := Marshal(g)
	require.NoError(t, err)
	assert.Contains(t, out, `ex:s ex:p ( "a" "b" )`)
	assert.NotContains(t, out, "rdf:first")
	assert.NotContains(t, out, "rdf:rest")
	assert.NotContains(t, out, "_:b0")
	assert.NotContains(t, out, "_:b1")
}

// TestWriteGraphOrphanListFallsBackToPropertyList covers a well-formed list
// that no triple ever points into (objRefCount of its head is 0): it has no
// point of use to sugar "(...)" into, so its triples must still be emitted,
// as an ordinary nested blank-node property list, rather than silently
// dropped.
func TestWriteGraphOrphanListFallsBackToPropertyList(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.BlankNode("b0"), Predicate: rdf.First, Object: term.PlainLiteral("a")},
		{Subject: term.BlankNode("b0"), Predicate: rdf.Rest, Object: term.BlankNode("b1")},
		{Subject: term.BlankNode("b1"), Predicate: rdf.First, Object: term.PlainLiteral("b")},
		{Subject: term.BlankNode("b1"), Predicate: rdf.Rest, Object: rdf.Nil},
	})

	out, err := Marshal(g)
	require.NoError(t, err)

	got, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, g.TripleCount(), got.TripleCount())
	assert.True(t, graph.Isomorphic(g, got))
}
