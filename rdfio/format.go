// Package rdfio implements the §6 "File I/O" external surface: format
// dispatch by file extension (or an explicit option), wired over the
// nt and ttl packages. Grounded on the teacher's quad.Format registry
// (quad/formats.go): a name/extension-keyed table of Reader/Writer
// constructors, generalized here to this module's Graph/Dataset pair
// instead of the teacher's single QuadReader/QuadWriter.
package rdfio

import (
	"fmt"
	"io"

	"github.com/rdfkit/rdfkit/graph"
)

// Format describes one supported serialization: how to decode a Graph or
// Dataset from it, and how to encode one back out.
type Format struct {
	Name string
	Ext  []string

	ReadGraph    func(io.Reader) (*graph.Graph, error)
	WriteGraph   func(io.Writer, *graph.Graph) error
	ReadDataset  func(io.Reader) (*graph.Dataset, error)
	WriteDataset func(io.Writer, *graph.Dataset) error
}

var (
	byName = map[string]*Format{}
	byExt  = map[string]*Format{}
)

// RegisterFormat adds f to the process-wide format table, indexed by name
// and every extension it declares. Writes are expected only at package
// init; reads are safe for concurrent use thereafter.
func RegisterFormat(f Format) {
	byName[f.Name] = &f
	for _, ext := range f.Ext {
		byExt[ext] = &f
	}
}

// FormatByName returns a registered format by its short name (e.g. "turtle").
func FormatByName(name string) (*Format, bool) {
	f, ok := byName[name]
	return f, ok
}

// FormatByExt returns a registered format by its file extension (e.g. ".ttl").
func FormatByExt(ext string) (*Format, bool) {
	f, ok := byExt[ext]
	return f, ok
}

// Formats lists every registered format.
func Formats() []Format {
	out := make([]Format, 0, len(byName))
	for _, f := range byName {
		out = append(out, *f)
	}
	return out
}

func formatError(nameOrExt string) error {
	return fmt.Errorf("rdfio: unknown format %q", nameOrExt)
}
