package xsd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/xsdns"
	"github.com/rdfkit/rdfkit/xsd"
)

func TestIntegerCanonicalLexical(t *testing.T) {
	assert.True(t, xsd.Valid(xsdns.Integer, "+007"))
	l := term.NewTypedLiteral("+007", xsdns.Integer)
	assert.Equal(t, "7", xsd.CanonicalLexical(l))
}

func TestDoubleCanonicalLexicalUsesExponentForm(t *testing.T) {
	l := term.NewTypedLiteral("1.0", xsdns.Double)
	assert.Equal(t, "1E+00", xsd.CanonicalLexical(l))
}

func TestBooleanEqualValueAcrossLexicalForms(t *testing.T) {
	a := term.NewTypedLiteral("1", xsdns.Boolean)
	b := term.NewTypedLiteral("true", xsdns.Boolean)
	assert.True(t, xsd.EqualValue(a, b))
}

func TestCompareIncomparableAcrossDatatypes(t *testing.T) {
	a := term.NewTypedLiteral("1", xsdns.Integer)
	b := term.NewTypedLiteral("1", xsdns.Double)
	assert.Equal(t, xsd.Incomparable, xsd.Compare(a, b))
}

func TestCompareOrdersIntegers(t *testing.T) {
	a := term.NewTypedLiteral("3", xsdns.Integer)
	b := term.NewTypedLiteral("10", xsdns.Integer)
	assert.Equal(t, xsd.Less, xsd.Compare(a, b))
}

func TestUnregisteredDatatypeIsAlwaysValid(t *testing.T) {
	assert.True(t, xsd.Valid(term.IRI("http://ex/custom"), "anything at all"))
}

func TestNativeValueParsesInteger(t *testing.T) {
	l := term.NewTypedLiteral("42", xsdns.Integer)
	v, err := xsd.NativeValue(l)
	assert.NoError(t, err)
	assert.EqualValues(t, 42, v)
}

func TestCastIntegerToDouble(t *testing.T) {
	l := term.NewTypedLiteral("42", xsdns.Integer)
	out, ok := xsd.Cast(xsdns.Double, l)
	assert.True(t, ok)
	assert.Equal(t, xsdns.Double, out.Datatype)
	assert.Equal(t, "4.2E+01", out.Lexical)
}

func TestCastRejectsUnparsableSource(t *testing.T) {
	l := term.NewTypedLiteral("not a number", xsdns.String)
	_, ok := xsd.Cast(xsdns.Integer, l)
	assert.False(t, ok)
}

func TestUpdateIntegerAppliesNativeFunction(t *testing.T) {
	l := term.NewTypedLiteral("7", xsdns.Integer)
	out, err := xsd.Update(l, func(v interface{}) interface{} { return v.(int64) + 1 })
	assert.NoError(t, err)
	assert.Equal(t, "8", out.Lexical)
	assert.Equal(t, xsdns.Integer, out.Datatype)
}

func TestUpdateUnregisteredDatatypeErrors(t *testing.T) {
	l := term.NewTypedLiteral("x", term.IRI("http://ex/custom"))
	_, err := xsd.Update(l, func(v interface{}) interface{} { return v })
	assert.Error(t, err)
}
