package nt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
)

func TestS1NTriplesParse(t *testing.T) {
	in := `<http://ex/s> <http://ex/p> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .` + "\n"
	triples, err := ReadTriples(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, triples, 1)
	tr := triples[0]
	assert.Equal(t, term.IRI("http://ex/s"), tr.Subject)
	assert.Equal(t, term.IRI("http://ex/p"), tr.Predicate)
	lit, ok := tr.Object.(term.Literal)
	require.True(t, ok)
	assert.Equal(t, "42", lit.Lexical)
	assert.Equal(t, term.IRI("http://www.w3.org/2001/XMLSchema#integer"), lit.Datatype)
}

func TestCommentsAndBlankLinesSkipped(t *testing.T) {
	in := "# a comment\n\n<http://ex/s> <http://ex/p> <http://ex/o> .\n"
	triples, err := ReadTriples(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, triples, 1)
}

func TestNQuadsGraphRouting(t *testing.T) {
	in := `<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .` + "\n" +
		`<http://ex/s> <http://ex/p> <http://ex/o2> .` + "\n"
	quads, err := ReadQuads(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, quads, 2)
	assert.Equal(t, term.IRI("http://ex/g"), quads[0].Graph)
	assert.Nil(t, quads[1].Graph)
}

func TestMalformedLineIsInvalidFormat(t *testing.T) {
	_, err := ReadTriples(strings.NewReader("not a triple\n"))
	require.Error(t, err)
}

func TestWriteReadRoundTrip(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("http://ex/s"), Predicate: term.IRI("http://ex/p"), Object: term.NewLangLiteral("hi\nthere", "en")},
		{Subject: term.BlankNode("b0"), Predicate: term.IRI("http://ex/p"), Object: term.IRI("http://ex/o")},
	})
	var buf bytes.Buffer
	require.NoError(t, WriteTriples(&buf, g))

	got, err := ReadTriples(&buf)
	require.NoError(t, err)
	out := graph.New(got)
	assert.True(t, g.Equal(out))
}

func TestDecoderEOF(t *testing.T) {
	d := NewDecoder(strings.NewReader(""))
	_, err := d.Next()
	assert.Equal(t, io.EOF, err)
}
