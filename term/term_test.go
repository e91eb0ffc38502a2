package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralEqualityIsExact(t *testing.T) {
	a := NewLangLiteral("hello", "EN")
	b := NewLangLiteral("hello", "en")
	assert.True(t, a.Equal(b), "language tags compare case-insensitively per BCP-47 lowercasing")

	c := NewTypedLiteral("42", "http://www.w3.org/2001/XMLSchema#integer")
	d := NewTypedLiteral("42", "")
	assert.False(t, c.Equal(d))
}

func TestEqualAcrossKinds(t *testing.T) {
	assert.True(t, Equal(IRI("http://ex/a"), IRI("http://ex/a")))
	assert.False(t, Equal(IRI("http://ex/a"), BlankNode("a")))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(IRI("http://ex/a"), nil))
}

func TestIsResource(t *testing.T) {
	assert.True(t, IsResource(IRI("http://ex/a")))
	assert.True(t, IsResource(BlankNode("b")))
	assert.False(t, IsResource(PlainLiteral("x")))
}

func TestAsSubjectRejectsLiteral(t *testing.T) {
	_, err := AsSubject(PlainLiteral("x"))
	require.Error(t, err)
	_, err = AsSubject(IRI("http://ex/a"))
	require.NoError(t, err)
}

func TestLiteralStringEscaping(t *testing.T) {
	l := PlainLiteral("a\"b\\c\nd")
	assert.Equal(t, `"a\"b\\c\nd"`, l.String())
}

type fixedResolver map[string]string

func (r fixedResolver) ResolveTerm(token string) (string, error) {
	if full, ok := r[token]; ok {
		return full, nil
	}
	return "", assertUnresolved(token)
}

type unresolvedErr struct{ token string }

func (e *unresolvedErr) Error() string { return "unresolved: " + e.token }

func assertUnresolved(token string) error { return &unresolvedErr{token} }

func TestCoerceNetworkIRIBypassesResolver(t *testing.T) {
	got, err := Coerce("http://ex/a", fixedResolver{})
	require.NoError(t, err)
	assert.Equal(t, IRI("http://ex/a"), got)
}

func TestCoercePrefersResolverForCurieShapedToken(t *testing.T) {
	res := fixedResolver{"rdf:type": "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"}
	got, err := Coerce("rdf:type", res)
	require.NoError(t, err)
	assert.Equal(t, IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), got)
}

func TestCoerceFallsBackToLiteralIRIWhenResolverDeclines(t *testing.T) {
	got, err := Coerce("urn:isbn:0451450523", fixedResolver{})
	require.NoError(t, err)
	assert.Equal(t, IRI("urn:isbn:0451450523"), got)
}

func TestCoerceRejectsNonIRIShapedString(t *testing.T) {
	_, err := Coerce("not a term", nil)
	require.Error(t, err)
}
