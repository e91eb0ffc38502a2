package iri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAbsoluteRefPassesThrough(t *testing.T) {
	got, err := ResolveIRI("http://example.org/base/", "http://other.org/x")
	require.NoError(t, err)
	assert.Equal(t, "http://other.org/x", got)
}

func TestResolveRelativePath(t *testing.T) {
	got, err := ResolveIRI("http://example.org/a/b/", "c")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a/b/c", got)
}

func TestResolveAbsolutePathReplacesBasePath(t *testing.T) {
	got, err := ResolveIRI("http://example.org/a/b/", "/c")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/c", got)
}

func TestResolveDotSegments(t *testing.T) {
	got, err := ResolveIRI("http://example.org/a/b/c", "../d")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a/d", got)
}

func TestResolveFragmentOnly(t *testing.T) {
	got, err := ResolveIRI("http://example.org/a/b", "#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a/b#frag", got)
}

func TestResolveEmptyBaseErrors(t *testing.T) {
	_, err := ResolveIRI("", "relative")
	assert.Error(t, err)
}
