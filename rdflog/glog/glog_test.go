package glog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdfkit/rdfkit/rdflog"
)

func TestInitRegistersLoggerWithRdflog(t *testing.T) {
	// init() already ran on package load; SetV must reach this Logger's
	// SetV (and, through it, glog's own "-v" flag) rather than only
	// rdflog's internal verbosity counter.
	rdflog.SetV(1)
	assert.True(t, Logger{}.V(1))
	rdflog.SetV(0)
}
