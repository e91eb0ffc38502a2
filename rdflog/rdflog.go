// Copyright 2016 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rdflog provides a pluggable logging interface for the rdfkit
// packages, plus a thin component-tagging convenience on top of it.
//
// Unlike a server binary, rdfkit is meant to be embedded: an application
// linking rdfkit should not see Info-level chatter on its stderr unless it
// opts in with SetV. Warningf, Errorf and Fatalf always reach the installed
// Logger; Infof only does once verbosity has been raised to at least 1.
package rdflog

import "log"

// Logger is the rdflog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

var logger Logger = stdlog{}

// SetLogger sets the package-wide logging implementation.
func SetLogger(l Logger) { logger = l }

var verbosity int

// V returns whether the current verbosity is at or above the specified level.
func V(level int) bool { return verbosity >= level }

// SetV sets the verbosity level. Level 0, the default, suppresses Infof.
// If the installed Logger also implements verboseSetter, SetV forwards the
// new level to it too, so a Logger backed by its own verbosity mechanism
// (rdflog/glog's glog.Level, say) can stay in sync with rdflog's.
func SetV(level int) {
	verbosity = level
	if vs, ok := logger.(verboseSetter); ok {
		vs.SetV(level)
	}
}

// verboseSetter is an optional Logger extension: a Logger backed by a
// system with its own verbosity knob implements it so SetV can drive both
// at once instead of only rdflog's own gate.
type verboseSetter interface{ SetV(level int) }

// Infof logs information level messages, but only once SetV has raised the
// verbosity to at least 1. Callers that must always emit a message
// regardless of verbosity should use Warningf instead.
func Infof(format string, args ...interface{}) { infof(format, args...) }

// Warningf logs warning level messages.
func Warningf(format string, args ...interface{}) { warningf(format, args...) }

// Errorf logs error level messages.
func Errorf(format string, args ...interface{}) { errorf(format, args...) }

// Fatalf logs a fatal message and terminates the program.
func Fatalf(format string, args ...interface{}) { fatalf(format, args...) }

func infof(format string, args ...interface{}) {
	if logger != nil && verbosity >= 1 {
		logger.Infof(format, args...)
	}
}

func warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

func errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

func fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
	}
}

// Component returns a Logger that prefixes every message with "name: ",
// formalizing the convention rdfkit packages otherwise hand-wrote at each
// call site (e.g. "graph: dropping description for ..."). A componentLogger
// dispatches through the same infof/warningf/errorf/fatalf funcs as the
// package-level functions, so it honors the installed Logger and the Infof
// verbosity gate identically, and adds no extra call-stack frame relative
// to calling the package-level functions directly.
func Component(name string) Logger { return componentLogger{prefix: name + ": "} }

type componentLogger struct{ prefix string }

func (c componentLogger) Infof(format string, args ...interface{}) {
	infof(c.prefix+format, args...)
}

func (c componentLogger) Warningf(format string, args ...interface{}) {
	warningf(c.prefix+format, args...)
}

func (c componentLogger) Errorf(format string, args ...interface{}) {
	errorf(c.prefix+format, args...)
}

func (c componentLogger) Fatalf(format string, args ...interface{}) {
	fatalf(c.prefix+format, args...)
}

// stdlog wraps the standard library logger. It is the default Logger until
// something (typically rdflog/glog's init) calls SetLogger.
type stdlog struct{}

func (stdlog) Infof(format string, args ...interface{})    { log.Printf(format, args...) }
func (stdlog) Warningf(format string, args ...interface{}) { log.Printf("WARN: "+format, args...) }
func (stdlog) Errorf(format string, args ...interface{})   { log.Printf("ERROR: "+format, args...) }
func (stdlog) Fatalf(format string, args ...interface{})   { log.Fatalf("FATAL: "+format, args...) }
