package rdfio

import (
	"io"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/nt"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/ttl"
)

func init() {
	RegisterFormat(Format{
		Name: "ntriples",
		Ext:  []string{".nt"},
		ReadGraph: func(r io.Reader) (*graph.Graph, error) {
			ts, err := nt.ReadTriples(r)
			if err != nil {
				return nil, err
			}
			return graph.New(ts), nil
		},
		WriteGraph: nt.WriteTriples,
	})

	RegisterFormat(Format{
		Name: "nquads",
		Ext:  []string{".nq"},
		ReadDataset: func(r io.Reader) (*graph.Dataset, error) {
			qs, err := nt.ReadQuads(r)
			if err != nil {
				return nil, err
			}
			return graph.NewDataset(qs), nil
		},
		WriteDataset: nt.WriteQuads,
		// A .nq document with no named graphs still parses as a Dataset whose
		// default graph holds every quad; ReadGraph below projects that down
		// for callers that only want the default graph.
		ReadGraph: func(r io.Reader) (*graph.Graph, error) {
			qs, err := nt.ReadQuads(r)
			if err != nil {
				return nil, err
			}
			var triples []term.Triple
			for _, q := range qs {
				if q.Graph == nil {
					triples = append(triples, q.Triple())
				}
			}
			return graph.New(triples), nil
		},
	})

	RegisterFormat(Format{
		Name:       "turtle",
		Ext:        []string{".ttl"},
		ReadGraph:  ttl.Parse,
		WriteGraph: func(w io.Writer, g *graph.Graph) error { return ttl.WriteGraph(w, g) },
	})
}
