package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewHTTPCommand's RunE blocks forever serving the API (like the teacher's
// own http command), so this only checks command wiring: flag defaults and
// required arguments, not an actual accept loop.
func TestHTTPCommandFlags(t *testing.T) {
	cmd := NewHTTPCommand()
	host, err := cmd.Flags().GetString("host")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8064", host)

	graphs, err := cmd.Flags().GetStringSlice("graph")
	require.NoError(t, err)
	assert.Empty(t, graphs)
}

func TestHTTPCommandMissingGraphFileFails(t *testing.T) {
	cmd := NewHTTPCommand()
	require.NoError(t, cmd.Flags().Set("graph", "/nonexistent/does-not-exist.nt"))
	assert.Error(t, cmd.RunE(cmd, nil))
}
