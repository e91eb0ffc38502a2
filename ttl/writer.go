// Package ttl implements the Turtle serializer and parser of §4.5: a
// preprocessing pass for RDF-list sugar and blank-node inlining, ordered
// description emission, and the literal canonicalization rules of §4.5.6.
package ttl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/rdflog"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/dc"
	"github.com/rdfkit/rdfkit/voc/rdf"
	"github.com/rdfkit/rdfkit/voc/rdfs"
	"github.com/rdfkit/rdfkit/voc/xsdns"
	"github.com/rdfkit/rdfkit/xsd"
)

var log = rdflog.Component("ttl")

// WriteGraph serializes g as a Turtle document.
func WriteGraph(w io.Writer, g *graph.Graph, opts ...Option) error {
	o := defaultOptions()
	for _, fn := range opts {
		fn(o)
	}
	tw := &writer{
		w:        bufio.NewWriter(w),
		g:        g,
		opts:     o,
		a:        analyze(g),
		prefixes: g.Prefixes(),
	}
	if err := tw.writeDirectives(); err != nil {
		return err
	}
	if err := tw.writeDescriptions(); err != nil {
		return err
	}
	return tw.w.Flush()
}

// Marshal returns g's Turtle serialization as a string.
func Marshal(g *graph.Graph, opts ...Option) (string, error) {
	var b strings.Builder
	if err := WriteGraph(&b, g, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

type writer struct {
	w        *bufio.Writer
	g        *graph.Graph
	opts     *Options
	a        *analysis
	prefixes *graph.PrefixMap
}

func (tw *writer) writeDirectives() error {
	base := tw.g.BaseIRI()
	any := false
	if base != "" {
		if !strings.HasSuffix(base, "/") && !strings.HasSuffix(base, "#") {
			log.Warningf("base IRI %q does not end in '/' or '#'", base)
		}
		if _, err := fmt.Fprintf(tw.w, "@base <%s> .\n", base); err != nil {
			return err
		}
		any = true
	}
	for _, pair := range tw.prefixes.Pairs() {
		if _, err := fmt.Fprintf(tw.w, "@prefix %s: <%s> .\n", pair[0], pair[1]); err != nil {
			return err
		}
		any = true
	}
	if any {
		if _, err := tw.w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

// orderedSubjects implements §4.5 step 4: base-IRI subject first, then
// descriptions grouped by top class (in the order the classes are
// configured), then everything else, each group sorted IRIs-before-blanks
// then lexically. Blank nodes consumed by list sugar or by inlining at a
// single point of use never appear here at all.
func (tw *writer) orderedSubjects() []term.Term {
	all := tw.g.Subjects()
	emitted := map[term.Term]bool{}

	skip := func(s term.Term) bool {
		if emitted[s] {
			return true
		}
		bn, ok := s.(term.BlankNode)
		if !ok {
			return false
		}
		if tw.a.listMembers[bn] {
			return true
		}
		return tw.a.objRefCount[bn] == 1
	}

	var order []term.Term
	if base := tw.g.BaseIRI(); base != "" {
		baseSubj := term.IRI(base)
		for _, s := range all {
			if term.Equal(s, baseSubj) && !skip(s) {
				order = append(order, s)
				emitted[s] = true
				break
			}
		}
	}

	for _, class := range tw.opts.TopClasses {
		var group []term.Term
		for _, s := range all {
			if skip(s) {
				continue
			}
			if d := tw.g.Fetch(s); d != nil && d.Include(rdf.Type, class) {
				group = append(group, s)
			}
		}
		for _, s := range graph.SortSubjects(group) {
			order = append(order, s)
			emitted[s] = true
		}
	}

	var rest []term.Term
	for _, s := range all {
		if !skip(s) {
			rest = append(rest, s)
		}
	}
	order = append(order, graph.SortSubjects(rest)...)
	return order
}

func (tw *writer) writeDescriptions() error {
	for _, s := range tw.orderedSubjects() {
		d := tw.g.Fetch(s)
		if d == nil {
			continue
		}
		if err := tw.writeDescription(d); err != nil {
			return err
		}
	}
	return nil
}

func (tw *writer) writeDescription(d *graph.Description) error {
	if bn, ok := d.Subject().(term.BlankNode); ok && tw.a.objRefCount[bn] == 0 {
		_, err := tw.w.WriteString(tw.renderPropertyList(bn) + " .\n\n")
		return err
	}
	if _, err := tw.w.WriteString(tw.renderSubject(d.Subject())); err != nil {
		return err
	}
	preds := graph.OrderPredicates(d.Predicates(), rdf.Type, rdfs.Label, dc.Title)
	for i, p := range preds {
		sep := " "
		if i > 0 {
			sep = " ;\n    "
		}
		if _, err := tw.w.WriteString(sep); err != nil {
			return err
		}
		objs, _ := d.Get(p)
		if err := tw.writeVerbObjects(p, objs); err != nil {
			return err
		}
	}
	_, err := tw.w.WriteString(" .\n\n")
	return err
}

func (tw *writer) writeVerbObjects(p term.IRI, objs []term.Term) error {
	verb := tw.renderIRI(p)
	if p == rdf.Type {
		verb = "a"
	}
	if _, err := fmt.Fprintf(tw.w, "%s ", verb); err != nil {
		return err
	}
	for i, o := range objs {
		if i > 0 {
			if _, err := tw.w.WriteString(", "); err != nil {
				return err
			}
		}
		if _, err := tw.w.WriteString(tw.renderTerm(o)); err != nil {
			return err
		}
	}
	return nil
}

// renderSubject renders a top-level description's subject: IRI rules for
// an IRI; for a blank node, either a bracketed property list standing in
// for the whole statement (a root, never referenced elsewhere) or a
// _:label (named, referenced more than once — list heads and inlinable
// blanks never reach orderedSubjects at all).
func (tw *writer) renderSubject(s term.Term) string {
	bn, ok := s.(term.BlankNode)
	if !ok {
		return tw.renderIRI(s.(term.IRI))
	}
	if tw.a.objRefCount[bn] == 0 {
		return tw.renderPropertyList(bn)
	}
	return "_:" + string(bn)
}

// renderPropertyList renders bn's own description inline as "[ ... ]",
// consuming it entirely; used both for root blank-node subjects and for
// inlinable blank-node objects.
func (tw *writer) renderPropertyList(bn term.BlankNode) string {
	d := tw.g.Fetch(bn)
	if d == nil || d.Count() == 0 {
		return "[]"
	}
	preds := graph.OrderPredicates(d.Predicates(), rdf.Type, rdfs.Label, dc.Title)
	var b strings.Builder
	b.WriteString("[ ")
	for i, p := range preds {
		if i > 0 {
			b.WriteString(" ; ")
		}
		if p == rdf.Type {
			b.WriteString("a ")
		} else {
			b.WriteString(tw.renderIRI(p))
			b.WriteByte(' ')
		}
		objs, _ := d.Get(p)
		for j, o := range objs {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(tw.renderTerm(o))
		}
	}
	b.WriteString(" ]")
	return b.String()
}

// renderTerm renders any term in object position, applying the list-sugar
// and inlining rules of §4.5 step 5.
func (tw *writer) renderTerm(t term.Term) string {
	switch v := t.(type) {
	case term.IRI:
		if v == rdf.Nil {
			return "()"
		}
		return tw.renderIRI(v)
	case term.BlankNode:
		if items, ok := tw.a.listItems[v]; ok {
			return tw.renderList(items)
		}
		if tw.a.objRefCount[v] == 1 {
			return tw.renderPropertyList(v)
		}
		return "_:" + string(v)
	case term.Literal:
		return tw.renderLiteral(v)
	default:
		return t.String()
	}
}

func (tw *writer) renderList(items []term.Term) string {
	var b strings.Builder
	b.WriteString("(")
	for _, it := range items {
		b.WriteByte(' ')
		b.WriteString(tw.renderTerm(it))
	}
	b.WriteString(" )")
	return b.String()
}

// renderIRI picks a prefixed name, a base-relative reference, or a full
// <iri>, in that order of preference (§4.5 step 5).
func (tw *writer) renderIRI(v term.IRI) string {
	s := string(v)
	if prefix, local, ok := tw.prefixes.PrefixFor(s); ok && isValidLocalPart(local) {
		return prefix + ":" + local
	}
	if base := tw.g.BaseIRI(); base != "" && strings.HasPrefix(s, base) {
		if rel := s[len(base):]; rel != "" {
			return "<" + rel + ">"
		}
	}
	return "<" + s + ">"
}

func isValidLocalPart(local string) bool {
	if local == "" {
		return false
	}
	return !strings.ContainsAny(local, "/#?[]{}()'`\"\\<> \t")
}

func (tw *writer) renderLiteral(l term.Literal) string {
	if l.Lang != "" {
		return quoteString(l.Lexical) + "@" + l.Lang
	}
	if isCanonicalizable(l.Datatype) && xsd.Valid(l.Datatype, l.Lexical) {
		return xsd.CanonicalLexical(l)
	}
	if l.Datatype == "" || l.Datatype == xsdns.String {
		return quoteString(l.Lexical)
	}
	return quoteString(l.Lexical) + "^^" + tw.renderIRI(l.Datatype)
}

func isCanonicalizable(dt term.IRI) bool {
	switch dt {
	case xsdns.Boolean, xsdns.Integer, xsdns.Double, xsdns.Decimal:
		return true
	default:
		return false
	}
}

// quoteString applies the §4.5 escape policy, switching to the
// triple-quoted long form when the lexical form contains a literal
// newline or carriage return.
func quoteString(s string) string {
	var b strings.Builder
	if strings.ContainsAny(s, "\n\r") {
		b.WriteString(`"""`)
		for _, r := range s {
			switch r {
			case '\\':
				b.WriteString(`\\`)
			case '"':
				b.WriteString(`\"`)
			default:
				b.WriteRune(r)
			}
		}
		b.WriteString(`"""`)
		return b.String()
	}
	b.WriteByte('"')
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
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
