package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatCommandConvertsFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.nt")
	out := filepath.Join(dir, "data.ttl")
	require.NoError(t, os.WriteFile(in, []byte(
		`<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n"), 0o644))

	cmd := NewCatCommand()
	var outBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetArgs([]string{in, out})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, outBuf.String(), "1")
	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestCatCommandAppliesPrefixFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.nt")
	out := filepath.Join(dir, "data.ttl")
	require.NoError(t, os.WriteFile(in, []byte(
		`<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n"), 0o644))

	cmd := NewCatCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{in, out, "--prefix", "ex=http://ex/", "--graph", "http://ex/g"})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(got), "@prefix ex: <http://ex/>")
	assert.Contains(t, string(got), "ex:s ex:p ex:o")
}

func TestCatCommandRejectsMalformedPrefixFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.nt")
	out := filepath.Join(dir, "data.ttl")
	require.NoError(t, os.WriteFile(in, []byte(
		`<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n"), 0o644))

	cmd := NewCatCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{in, out, "--prefix", "not-a-pair"})
	assert.Error(t, cmd.Execute())
}

func TestCatCommandUnknownInputFails(t *testing.T) {
	dir := t.TempDir()
	cmd := NewCatCommand()
	cmd.SetArgs([]string{filepath.Join(dir, "missing.nt"), filepath.Join(dir, "out.nt")})
	cmd.SetOut(new(bytes.Buffer))
	assert.Error(t, cmd.Execute())
}
