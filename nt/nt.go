// Package nt implements the N-Triples and N-Quads readers and writers of
// §6: line-oriented formats, one statement per line, with a leading "#"
// marking a comment line. It is deliberately the external-collaborator
// tokenizer the spec calls "straightforward" — no grammar library, a
// cursor over one line at a time — grounded on the retrieved pack's
// geoknoesis-rdf-go ntriples.go cursor style, adapted to this module's
// term.Term values and rdferr error taxonomy in place of that package's
// own model/error types.
package nt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rdfkit/rdfkit/rdferr"
	"github.com/rdfkit/rdfkit/term"
)

// Decoder reads one term.Quad per Next call from an N-Triples or N-Quads
// document. Quads decoded from N-Triples always have a nil Graph.
type Decoder struct {
	sc     *bufio.Scanner
	line   int
	quads  bool
	format string
}

// NewDecoder returns a Decoder for N-Triples input.
func NewDecoder(r io.Reader) *Decoder { return newDecoder(r, false) }

// NewQuadDecoder returns a Decoder for N-Quads input.
func NewQuadDecoder(r io.Reader) *Decoder { return newDecoder(r, true) }

func newDecoder(r io.Reader, quads bool) *Decoder {
	format := "ntriples"
	if quads {
		format = "nquads"
	}
	return &Decoder{sc: bufio.NewScanner(r), quads: quads, format: format}
}

// Next returns the next statement, or io.EOF when the document is
// exhausted. A malformed line surfaces as *rdferr.InvalidFormat carrying
// the 1-based line number.
func (d *Decoder) Next() (term.Quad, error) {
	for d.sc.Scan() {
		d.line++
		line := strings.TrimSpace(d.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		q, err := d.parseLine(line)
		if err != nil {
			return term.Quad{}, err
		}
		return q, nil
	}
	if err := d.sc.Err(); err != nil {
		return term.Quad{}, &rdferr.IOError{Op: "read", Err: err}
	}
	return term.Quad{}, io.EOF
}

func (d *Decoder) errorf(format string, args ...interface{}) error {
	return &rdferr.InvalidFormat{Format: d.format, Line: d.line, Reason: fmt.Sprintf(format, args...)}
}

func (d *Decoder) parseLine(line string) (term.Quad, error) {
	c := &cursor{s: line}
	subj, err := c.parseSubject()
	if err != nil {
		return term.Quad{}, d.errorf("%v", err)
	}
	predIRI, err := c.parseIRI()
	if err != nil {
		return term.Quad{}, d.errorf("predicate: %v", err)
	}
	obj, err := c.parseObject()
	if err != nil {
		return term.Quad{}, d.errorf("object: %v", err)
	}
	var gname term.Term
	if d.quads {
		gname, err = c.parseOptionalGraph()
		if err != nil {
			return term.Quad{}, d.errorf("graph: %v", err)
		}
	}
	c.skipWS()
	if !c.consume('.') {
		return term.Quad{}, d.errorf("expected '.' terminating the statement")
	}
	return term.Quad{Subject: subj, Predicate: term.IRI(predIRI), Object: obj, Graph: gname}, nil
}

// ReadTriples parses an entire N-Triples document into a slice of triples.
func ReadTriples(r io.Reader) ([]term.Triple, error) {
	d := NewDecoder(r)
	var out []term.Triple
	for {
		q, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, q.Triple())
	}
}

// ReadQuads parses an entire N-Quads document into a slice of quads.
func ReadQuads(r io.Reader) ([]term.Quad, error) {
	d := NewQuadDecoder(r)
	var out []term.Quad
	for {
		q, err := d.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
}

// cursor is a hand-rolled scanner over a single line's bytes; N-Triples
// grammar is regular enough per-statement that a byte cursor beats a
// generated lexer for a format this small.
type cursor struct {
	s   string
	pos int
}

func (c *cursor) skipWS() {
	for c.pos < len(c.s) {
		switch c.s[c.pos] {
		case ' ', '\t':
			c.pos++
		default:
			return
		}
	}
}

func (c *cursor) consume(b byte) bool {
	c.skipWS()
	if c.pos < len(c.s) && c.s[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) parseSubject() (term.Term, error) {
	c.skipWS()
	if c.pos >= len(c.s) {
		return nil, fmt.Errorf("unexpected end of line")
	}
	switch c.s[c.pos] {
	case '<':
		iri, err := c.parseIRI()
		return term.IRI(iri), err
	case '_':
		return c.parseBlankNode()
	default:
		return nil, fmt.Errorf("expected IRI or blank node in subject position")
	}
}

func (c *cursor) parseObject() (term.Term, error) {
	c.skipWS()
	if c.pos >= len(c.s) {
		return nil, fmt.Errorf("unexpected end of line")
	}
	switch c.s[c.pos] {
	case '<':
		iri, err := c.parseIRI()
		return term.IRI(iri), err
	case '_':
		return c.parseBlankNode()
	case '"':
		return c.parseLiteral()
	default:
		return nil, fmt.Errorf("expected IRI, blank node or literal in object position")
	}
}

// parseOptionalGraph parses the fourth N-Quads term, if any; its absence
// (the next non-space byte is '.') means the default graph.
func (c *cursor) parseOptionalGraph() (term.Term, error) {
	c.skipWS()
	if c.pos >= len(c.s) || c.s[c.pos] == '.' {
		return nil, nil
	}
	switch c.s[c.pos] {
	case '<':
		iri, err := c.parseIRI()
		return term.IRI(iri), err
	case '_':
		return c.parseBlankNode()
	default:
		return nil, fmt.Errorf("expected IRI or blank node in graph position")
	}
}

func (c *cursor) parseIRI() (string, error) {
	if !c.consume('<') {
		return "", fmt.Errorf("expected '<'")
	}
	start := c.pos
	for c.pos < len(c.s) && c.s[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.s) {
		return "", fmt.Errorf("unterminated IRI")
	}
	raw := c.s[start:c.pos]
	c.pos++
	return unescapeIRI(raw), nil
}

func (c *cursor) parseBlankNode() (term.BlankNode, error) {
	if !strings.HasPrefix(c.s[c.pos:], "_:") {
		return "", fmt.Errorf("expected '_:'")
	}
	c.pos += 2
	start := c.pos
	for c.pos < len(c.s) && !isDelim(c.s[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		return "", fmt.Errorf("blank node label missing")
	}
	return term.BlankNode(c.s[start:c.pos]), nil
}

func (c *cursor) parseLiteral() (term.Literal, error) {
	if !c.consume('"') {
		return term.Literal{}, fmt.Errorf("expected '\"'")
	}
	var b strings.Builder
	for c.pos < len(c.s) {
		ch := c.s[c.pos]
		if ch == '"' {
			c.pos++
			break
		}
		if ch == '\\' {
			r, n, err := unescapeOne(c.s[c.pos:])
			if err != nil {
				return term.Literal{}, err
			}
			b.WriteRune(r)
			c.pos += n
			continue
		}
		b.WriteByte(ch)
		c.pos++
	}
	lexical := b.String()
	if strings.HasPrefix(c.s[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.s) && !isDelim(c.s[c.pos]) {
			c.pos++
		}
		return term.NewLangLiteral(lexical, c.s[start:c.pos]), nil
	}
	if strings.HasPrefix(c.s[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return term.Literal{}, err
		}
		return term.NewTypedLiteral(lexical, term.IRI(dt)), nil
	}
	return term.PlainLiteral(lexical), nil
}

func isDelim(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '.':
		return true
	default:
		return false
	}
}

func unescapeIRI(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\\' {
			r, n, err := unescapeOne(s[i:])
			if err == nil {
				b.WriteRune(r)
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// unescapeOne decodes one N-Triples string escape at the start of s
// (which must begin with '\\'), returning the decoded rune and the number
// of input bytes it consumed.
func unescapeOne(s string) (rune, int, error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("unterminated escape")
	}
	switch s[1] {
	case 't':
		return '\t', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 'f':
		return '\f', 2, nil
	case '"':
		return '"', 2, nil
	case '\'':
		return '\'', 2, nil
	case '\\':
		return '\\', 2, nil
	case 'u':
		if len(s) < 6 {
			return 0, 0, fmt.Errorf("truncated \\u escape")
		}
		v, err := strconv.ParseUint(s[2:6], 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid \\u escape: %v", err)
		}
		return rune(v), 6, nil
	case 'U':
		if len(s) < 10 {
			return 0, 0, fmt.Errorf("truncated \\U escape")
		}
		v, err := strconv.ParseUint(s[2:10], 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid \\U escape: %v", err)
		}
		return rune(v), 10, nil
	default:
		return 0, 0, fmt.Errorf("unknown escape \\%c", s[1])
	}
}
