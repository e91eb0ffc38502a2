package rdfio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/term"
)

func TestReadWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nt")

	in := `<http://ex/s> <http://ex/p> <http://ex/o> .` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	g, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, g.TripleCount())

	out := filepath.Join(dir, "copy.nt")
	require.NoError(t, WriteFile(g, out))

	g2, err := ReadFile(out)
	require.NoError(t, err)
	assert.True(t, g.Equal(g2))
}

func TestReadFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.xyz")
	require.NoError(t, os.WriteFile(path, []byte("nothing"), 0o644))

	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileMissingPath(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.nt"))
	assert.Error(t, err)
}

func TestWithFormatOverridesExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	in := `<http://ex/s> <http://ex/p> <http://ex/o> .` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	g, err := ReadFile(path, WithFormat("ntriples"))
	require.NoError(t, err)
	assert.Equal(t, 1, g.TripleCount())
}

func TestReadFileAppliesBaseAndName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nt")
	in := `<http://ex/s> <http://ex/p> <http://ex/o> .` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	name := term.IRI("http://ex/graph")
	g, err := ReadFile(path, WithBase("http://ex/"), WithName(name))
	require.NoError(t, err)
	assert.Equal(t, "http://ex/", g.BaseIRI())
	assert.Equal(t, name, g.Name())
}

func TestNQuadsDatasetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.nq")
	in := `<http://ex/s> <http://ex/p> <http://ex/o> <http://ex/g> .` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	ds, err := ReadDatasetFile(path)
	require.NoError(t, err)
	require.Equal(t, 1, ds.QuadCount())

	out := filepath.Join(dir, "copy.nq")
	require.NoError(t, WriteDatasetFile(ds, out))

	ds2, err := ReadDatasetFile(out)
	require.NoError(t, err)
	assert.True(t, ds.Equal(ds2))
}

func TestFormatsListsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, f := range Formats() {
		names[f.Name] = true
	}
	assert.True(t, names["ntriples"])
	assert.True(t, names["nquads"])
	assert.True(t, names["turtle"])
}
