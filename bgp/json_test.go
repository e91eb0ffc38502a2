package bgp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
)

type fixedResolver map[string]string

func (r fixedResolver) ResolveTerm(token string) (string, error) {
	if full, ok := r[token]; ok {
		return full, nil
	}
	return "", assertUnresolvable(token)
}

func assertUnresolvable(token string) error {
	return &unresolvedTokenErr{token}
}

type unresolvedTokenErr struct{ token string }

func (e *unresolvedTokenErr) Error() string { return "unresolvable token: " + e.token }

func TestFromJSONBuildsMatchingBGP(t *testing.T) {
	res := fixedResolver{"foaf:name": "http://xmlns.com/foaf/0.1/name"}
	data := []byte(`[{"S":{"var":"x"},"P":{"value":"foaf:name"},"O":{"var":"n"}}]`)

	q, err := FromJSON(data, res)
	require.NoError(t, err)

	g := graph.New([]term.Triple{
		{Subject: term.IRI("ex:alice"), Predicate: term.IRI("http://xmlns.com/foaf/0.1/name"), Object: term.NewTypedLiteral("Alice", "")},
	})
	sols := Match(g, q)
	require.Len(t, sols, 1)
	assert.Equal(t, term.IRI("ex:alice"), sols[0][Var("x")])
}

func TestFromJSONAbsoluteIRINeedsNoResolver(t *testing.T) {
	data := []byte(`[{"S":{"var":"s"},"P":{"value":"http://ex/p"},"O":{"value":"http://ex/o"}}]`)
	q, err := FromJSON(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []Var{"s"}, q.FreeVars())
}

func TestFromJSONMalformedJSON(t *testing.T) {
	_, err := FromJSON([]byte("not json"), nil)
	assert.Error(t, err)
}

func TestFromJSONUnresolvableToken(t *testing.T) {
	data := []byte(`[{"S":{"var":"s"},"P":{"value":"not a token"},"O":{"var":"o"}}]`)
	_, err := FromJSON(data, fixedResolver{})
	assert.Error(t, err)
}
