// Package glog wires github.com/golang/glog in as rdflog's backing Logger,
// registering itself via init so a blank import (as cmd/rdfkit does) is
// enough to switch rdfkit's log output from the stdlog default to glog.
package glog

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/golang/glog"
	"github.com/rdfkit/rdfkit/rdflog"
)

func init() {
	rdflog.SetLogger(Logger{})
}

// Logger adapts glog to the rdflog.Logger interface.
type Logger struct{}

// depth skips glog.*Depth past this method, rdflog's private dispatcher
// (infof/warningf/errorf/fatalf) and the exported rdflog function or
// componentLogger method that called it, landing the reported file:line on
// whichever rdfkit call site actually logged — three frames of our own
// indirection above glog's internal caller, one more than a Logger with no
// dispatcher layer would need.
const depth = 4

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(depth, fmt.Sprintf(format, args...))
}
func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(depth, fmt.Sprintf(format, args...))
}
func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(depth, fmt.Sprintf(format, args...))
}
func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(depth, fmt.Sprintf(format, args...))
}

// V reports glog's own verbosity threshold, independent of rdflog.V.
func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

// SetV pushes v into glog's "-v" flag so rdflog.SetV actually raises glog's
// verbosity at runtime, rather than requiring the process to be restarted
// with a different command-line flag.
func (Logger) SetV(v int) {
	if err := flag.Set("v", strconv.Itoa(v)); err != nil {
		glog.Warningf("rdflog/glog: could not set glog verbosity to %d: %v", v, err)
	}
}
