package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/term"
)

func TestDatasetRoutesByGraphName(t *testing.T) {
	gname := term.IRI("http://ex/g")
	q1 := term.Quad{Subject: s, Predicate: p1, Object: o1}
	q2 := term.Quad{Subject: s, Predicate: p1, Object: o2, Graph: gname}
	ds := NewDataset([]term.Quad{q1, q2})

	assert.Equal(t, 1, ds.DefaultGraph().TripleCount())
	named := ds.Graph(gname)
	require.NotNil(t, named)
	assert.Equal(t, 1, named.TripleCount())
}

func TestDatasetDeleteWithoutGraphNameHitsDefaultOnly(t *testing.T) {
	gname := term.IRI("http://ex/g")
	tr := term.Triple{Subject: s, Predicate: p1, Object: o1}
	ds := NewDataset([]term.Quad{
		{Subject: s, Predicate: p1, Object: o1},
		{Subject: s, Predicate: p1, Object: o1, Graph: gname},
	})
	out := ds.Delete(term.Quad{Subject: tr.Subject, Predicate: tr.Predicate, Object: tr.Object})
	assert.Equal(t, 0, out.DefaultGraph().TripleCount())
	assert.Equal(t, 1, out.Graph(gname).TripleCount())
}

func TestDatasetEqual(t *testing.T) {
	gname := term.IRI("http://ex/g")
	q := term.Quad{Subject: s, Predicate: p1, Object: o1, Graph: gname}
	a := NewDataset([]term.Quad{q})
	b := NewDataset([]term.Quad{q})
	assert.True(t, a.Equal(b))
}
