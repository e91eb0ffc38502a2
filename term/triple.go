package term

import "fmt"

// Triple is a (subject, predicate, object) statement. Subject admits IRI or
// BlankNode; Predicate admits only IRI; Object admits any Term.
type Triple struct {
	Subject   Term
	Predicate IRI
	Object    Term
}

func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Equal reports term-equality across all three positions.
func (t Triple) Equal(o Triple) bool {
	return Equal(t.Subject, o.Subject) && t.Predicate == o.Predicate && Equal(t.Object, o.Object)
}

// DefaultGraph is the sentinel Quad.Graph value denoting the default graph.
var DefaultGraph Term

// Quad is a Triple plus a graph name; a nil Graph means the default graph.
type Quad struct {
	Subject   Term
	Predicate IRI
	Object    Term
	Graph     Term
}

func (q Quad) Triple() Triple { return Triple{Subject: q.Subject, Predicate: q.Predicate, Object: q.Object} }

func (q Quad) String() string {
	if q.Graph == nil {
		return fmt.Sprintf("%s %s %s .", q.Subject, q.Predicate, q.Object)
	}
	return fmt.Sprintf("%s %s %s %s .", q.Subject, q.Predicate, q.Object, q.Graph)
}

func (q Quad) Equal(o Quad) bool {
	return q.Triple().Equal(o.Triple()) && Equal(q.Graph, o.Graph)
}
