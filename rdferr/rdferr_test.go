package rdferr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidIRIUnwraps(t *testing.T) {
	inner := errors.New("bad scheme")
	err := &InvalidIRI{Value: "not-an-iri", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "not-an-iri")
}

func TestInvalidFormatLineColumnFormatting(t *testing.T) {
	assert.Equal(t, "turtle:3:5: unexpected token", (&InvalidFormat{Format: "turtle", Line: 3, Column: 5, Reason: "unexpected token"}).Error())
	assert.Equal(t, "turtle:3: unexpected token", (&InvalidFormat{Format: "turtle", Line: 3, Reason: "unexpected token"}).Error())
	assert.Equal(t, "turtle: unexpected token", (&InvalidFormat{Format: "turtle", Reason: "unexpected token"}).Error())
}

func TestIOErrorUnwraps(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := &IOError{Op: "open", Path: "/tmp/x", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "/tmp/x")
}

func TestInvalidQueryMessage(t *testing.T) {
	err := &InvalidQuery{Reason: "literal not allowed in subject position"}
	assert.Equal(t, "invalid query: literal not allowed in subject position", err.Error())
}
