package nt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/xsdns"
)

// WriteTriples writes g's triples as N-Triples, one statement per line, in
// the order Graph.Triples returns them (unspecified, per §4.2).
func WriteTriples(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.Triples() {
		if err := writeStatement(bw, t.Subject, t.Predicate, t.Object, nil); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteQuads writes ds as N-Quads: the default graph's triples with no
// fourth term, followed by each named graph's triples with their graph
// name as the fourth term.
func WriteQuads(w io.Writer, ds *graph.Dataset) error {
	bw := bufio.NewWriter(w)
	for _, q := range ds.Quads() {
		if err := writeStatement(bw, q.Subject, q.Predicate, q.Object, q.Graph); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeStatement(w *bufio.Writer, s term.Term, p term.IRI, o term.Term, g term.Term) error {
	if _, err := fmt.Fprintf(w, "%s %s %s", renderTerm(s), renderTerm(p), renderTerm(o)); err != nil {
		return err
	}
	if g != nil {
		if _, err := fmt.Fprintf(w, " %s", renderTerm(g)); err != nil {
			return err
		}
	}
	_, err := w.WriteString(" .\n")
	return err
}

func renderTerm(t term.Term) string {
	switch v := t.(type) {
	case term.IRI:
		return "<" + escapeIRI(string(v)) + ">"
	case term.BlankNode:
		return "_:" + string(v)
	case term.Literal:
		return renderLiteral(v)
	default:
		return t.String()
	}
}

func renderLiteral(l term.Literal) string {
	var b strings.Builder
	b.WriteByte('"')
	escapeLexical(&b, l.Lexical)
	b.WriteByte('"')
	switch {
	case l.Lang != "":
		b.WriteByte('@')
		b.WriteString(l.Lang)
	case l.Datatype != "" && l.Datatype != xsdns.String:
		b.WriteString("^^<")
		b.WriteString(escapeIRI(string(l.Datatype)))
		b.WriteByte('>')
	}
	return b.String()
}

func escapeLexical(b *strings.Builder, s string) {
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
}

func escapeIRI(s string) string {
	if !strings.ContainsAny(s, "\\<>\"{}|^`") && !strings.ContainsRune(s, ' ') {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '<', '>', '"', '{', '}', '|', '^', '`', ' ':
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
