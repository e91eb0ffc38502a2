package command

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestGraph(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "data.nt")
	require.NoError(t, os.WriteFile(path, []byte(
		`<http://ex/s> <http://ex/p> <http://ex/o> .`+"\n"), 0o644))
	return path
}

func writeTestPattern(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "pattern.json")
	pattern := `[{"S":{"var":"s"},"P":{"value":"http://ex/p"},"O":{"var":"o"}}]`
	require.NoError(t, os.WriteFile(path, []byte(pattern), 0o644))
	return path
}

func TestQueryCommandMaterializing(t *testing.T) {
	dir := t.TempDir()
	graphPath := writeTestGraph(t, dir)
	patternPath := writeTestPattern(t, dir)

	cmd := NewQueryCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{graphPath, "--pattern", patternPath})
	require.NoError(t, cmd.Execute())

	var sol map[string]string
	scanner := bufio.NewScanner(&out)
	require.True(t, scanner.Scan())
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &sol))
	assert.Equal(t, "http://ex/o", sol["o"])
}

func TestQueryCommandStreaming(t *testing.T) {
	dir := t.TempDir()
	graphPath := writeTestGraph(t, dir)
	patternPath := writeTestPattern(t, dir)

	cmd := NewQueryCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{graphPath, "--pattern", patternPath, "--stream"})
	require.NoError(t, cmd.Execute())

	var sol map[string]string
	scanner := bufio.NewScanner(&out)
	require.True(t, scanner.Scan())
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &sol))
	assert.Equal(t, "http://ex/o", sol["o"])
}

func TestQueryCommandMissingPatternFlag(t *testing.T) {
	dir := t.TempDir()
	graphPath := writeTestGraph(t, dir)

	cmd := NewQueryCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{graphPath})
	assert.Error(t, cmd.Execute())
}
