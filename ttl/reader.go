package ttl

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/iri"
	"github.com/rdfkit/rdfkit/rdferr"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/rdf"
	"github.com/rdfkit/rdfkit/voc/xsdns"
)

// Parse reads a Turtle document and returns the Graph it describes. The
// parser accepts directives (@prefix/@base and their SPARQL-style
// PREFIX/BASE spellings), predicate-object lists, blank-node property
// lists, RDF collections, and literals with language tags, datatypes, or
// the bare numeric/boolean forms — everything WriteGraph can produce,
// plus the common subset of the wider Turtle grammar.
func Parse(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &rdferr.IOError{Op: "read", Err: err}
	}
	p := &parser{s: string(data), line: 1, prefixes: map[string]string{}, g: graph.New(nil)}
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	out := p.g
	if len(p.prefixes) > 0 {
		out = out.AddPrefixes(p.prefixes, graph.LastWriterWins)
	}
	if p.base != "" {
		out = out.SetBaseIRI(p.base)
	}
	return out, nil
}

// ParseString is a convenience wrapper over Parse for in-memory documents.
func ParseString(s string) (*graph.Graph, error) { return Parse(strings.NewReader(s)) }

type parser struct {
	s        string
	pos      int
	line     int
	prefixes map[string]string
	base     string
	g        *graph.Graph
	bnodeSeq int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &rdferr.InvalidFormat{Format: "turtle", Line: p.line, Reason: fmt.Sprintf(format, args...)}
}

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) advance() byte {
	b := p.s[p.pos]
	p.pos++
	if b == '\n' {
		p.line++
	}
	return b
}

func (p *parser) skipWS() {
	for !p.eof() {
		switch b := p.peek(); {
		case b == '#':
			for !p.eof() && p.peek() != '\n' {
				p.advance()
			}
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			p.advance()
		default:
			return
		}
	}
}

func (p *parser) consume(b byte) bool {
	p.skipWS()
	if p.peek() == b {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(b byte, what string) error {
	if !p.consume(b) {
		return p.errorf("expected %s", what)
	}
	return nil
}

// hasKeyword reports, after skipping whitespace, whether the upcoming bytes
// match kw case-insensitively and are not followed by a name character.
func (p *parser) hasKeyword(kw string) bool {
	p.skipWS()
	if p.pos+len(kw) > len(p.s) {
		return false
	}
	if !strings.EqualFold(p.s[p.pos:p.pos+len(kw)], kw) {
		return false
	}
	after := p.pos + len(kw)
	if after < len(p.s) && isNameChar(rune(p.s[after])) {
		return false
	}
	return true
}

func (p *parser) parseDocument() error {
	for {
		p.skipWS()
		if p.eof() {
			return nil
		}
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
}

func (p *parser) parseStatement() error {
	switch {
	case p.peekByte('@'):
		return p.parseAtDirective()
	case p.hasKeyword("PREFIX"):
		p.pos += len("PREFIX")
		return p.parsePrefixBody(false)
	case p.hasKeyword("BASE"):
		p.pos += len("BASE")
		return p.parseBaseBody(false)
	default:
		return p.parseTriples()
	}
}

func (p *parser) peekByte(b byte) bool {
	p.skipWS()
	return p.peek() == b
}

func (p *parser) parseAtDirective() error {
	p.advance() // '@'
	switch {
	case p.hasKeyword("prefix"):
		p.pos += len("prefix")
		return p.parsePrefixBody(true)
	case p.hasKeyword("base"):
		p.pos += len("base")
		return p.parseBaseBody(true)
	default:
		return p.errorf("unknown directive")
	}
}

func (p *parser) parsePrefixBody(requireDot bool) error {
	p.skipWS()
	name := p.readPrefixLabel()
	if !p.consume(':') {
		return p.errorf("expected ':' after prefix name")
	}
	ns, err := p.readIRIRef()
	if err != nil {
		return err
	}
	resolved, err := iri.ResolveIRI(p.base, ns)
	if err != nil {
		return err
	}
	p.prefixes[name] = resolved
	if requireDot {
		return p.expect('.', "'.' terminating @prefix")
	}
	p.consume('.')
	return nil
}

func (p *parser) parseBaseBody(requireDot bool) error {
	ref, err := p.readIRIRef()
	if err != nil {
		return err
	}
	resolved, err := iri.ResolveIRI(p.base, ref)
	if err != nil {
		return err
	}
	p.base = resolved
	if requireDot {
		return p.expect('.', "'.' terminating @base")
	}
	p.consume('.')
	return nil
}

func (p *parser) parseTriples() error {
	subj, err := p.parseSubject()
	if err != nil {
		return err
	}
	// A bare blank-node property list may stand as a complete statement
	// with no predicateObjectList at all.
	p.skipWS()
	if p.peek() == '.' {
		p.advance()
		return nil
	}
	if err := p.parsePredicateObjectList(subj); err != nil {
		return err
	}
	return p.expect('.', "'.' terminating the statement")
}

func (p *parser) parsePredicateObjectList(subj term.Term) error {
	for {
		verb, err := p.parseVerb()
		if err != nil {
			return err
		}
		if err := p.parseObjectList(subj, verb); err != nil {
			return err
		}
		if !p.consume(';') {
			return nil
		}
		p.skipWS()
		if p.peek() == '.' || p.peek() == ']' {
			return nil
		}
	}
}

func (p *parser) parseObjectList(subj term.Term, verb term.IRI) error {
	if _, err := term.AsSubject(subj); err != nil {
		return p.errorf("%v", err)
	}
	for {
		obj, err := p.parseObject()
		if err != nil {
			return err
		}
		p.g = p.g.Add(term.Triple{Subject: subj, Predicate: verb, Object: obj})
		if !p.consume(',') {
			return nil
		}
	}
}

func (p *parser) parseVerb() (term.IRI, error) {
	p.skipWS()
	if p.hasKeyword("a") {
		p.pos++
		return rdf.Type, nil
	}
	return p.parseIRI()
}

func (p *parser) parseSubject() (term.Term, error) {
	p.skipWS()
	switch p.peek() {
	case '[':
		return p.parseBlankNodePropertyList()
	case '(':
		return p.parseCollection()
	case '_':
		return p.parseBlankNodeLabel()
	default:
		return p.parseIRI()
	}
}

func (p *parser) parseObject() (term.Term, error) {
	p.skipWS()
	switch p.peek() {
	case '[':
		return p.parseBlankNodePropertyList()
	case '(':
		return p.parseCollection()
	case '_':
		return p.parseBlankNodeLabel()
	case '"', '\'':
		return p.parseLiteral()
	default:
		if isDigit(rune(p.peek())) || p.peek() == '+' || p.peek() == '-' {
			return p.parseNumericLiteral()
		}
		if p.hasKeyword("true") || p.hasKeyword("false") {
			return p.parseBooleanLiteral()
		}
		return p.parseIRI()
	}
}

func (p *parser) freshBlank() term.BlankNode {
	p.bnodeSeq++
	return term.BlankNode(fmt.Sprintf("ttl%d", p.bnodeSeq))
}

func (p *parser) parseBlankNodePropertyList() (term.Term, error) {
	p.advance() // '['
	bn := p.freshBlank()
	p.skipWS()
	if p.peek() == ']' {
		p.advance()
		return bn, nil // an empty "[]" describes nothing; nothing to add
	}
	if err := p.parsePredicateObjectList(bn); err != nil {
		return nil, err
	}
	if err := p.expect(']', "']' closing a blank-node property list"); err != nil {
		return nil, err
	}
	return bn, nil
}

func (p *parser) parseCollection() (term.Term, error) {
	p.advance() // '('
	var items []term.Term
	for {
		p.skipWS()
		if p.peek() == ')' {
			p.advance()
			break
		}
		item, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return rdf.Nil, nil
	}
	head := p.freshBlank()
	cur := head
	for i, item := range items {
		var rest term.Term
		if i == len(items)-1 {
			rest = rdf.Nil
		} else {
			rest = p.freshBlank()
		}
		p.g = p.g.Add(term.Triple{Subject: cur, Predicate: rdf.First, Object: item})
		p.g = p.g.Add(term.Triple{Subject: cur, Predicate: rdf.Rest, Object: rest})
		if rb, ok := rest.(term.BlankNode); ok {
			cur = rb
		}
	}
	return head, nil
}

func (p *parser) parseBlankNodeLabel() (term.Term, error) {
	if !strings.HasPrefix(p.s[p.pos:], "_:") {
		return nil, p.errorf("expected blank node label")
	}
	p.pos += 2
	start := p.pos
	for !p.eof() && isNameChar(rune(p.peek())) {
		p.advance()
	}
	if start == p.pos {
		return nil, p.errorf("blank node label missing")
	}
	return term.BlankNode(p.s[start:p.pos]), nil
}

func (p *parser) parseIRI() (term.IRI, error) {
	p.skipWS()
	if p.peek() == '<' {
		ref, err := p.readIRIRef()
		if err != nil {
			return "", err
		}
		resolved, err := iri.ResolveIRI(p.base, ref)
		if err != nil {
			return "", err
		}
		return term.IRI(resolved), nil
	}
	return p.parsePrefixedName()
}

func (p *parser) parsePrefixedName() (term.IRI, error) {
	start := p.pos
	prefix := p.readPrefixLabel()
	if p.peek() != ':' {
		p.pos = start
		return "", p.errorf("expected a prefixed name or IRI reference")
	}
	p.advance() // ':'
	local := p.readLocalPart()
	ns, ok := p.prefixes[prefix]
	if !ok {
		return "", p.errorf("undefined prefix %q", prefix)
	}
	return term.IRI(ns + local), nil
}

// readPrefixLabel reads a prefix name, which may be empty — the default
// prefix ":" has no label before the colon.
func (p *parser) readPrefixLabel() string {
	start := p.pos
	for !p.eof() && isNameChar(rune(p.peek())) {
		p.advance()
	}
	return p.s[start:p.pos]
}

// readLocalPart reads a PN_LOCAL. Trailing '.' is excluded since it is
// almost always the statement terminator, not part of the local name.
func (p *parser) readLocalPart() string {
	start := p.pos
	for !p.eof() && (isNameChar(rune(p.peek())) || p.peek() == '.') {
		p.advance()
	}
	for p.pos > start && p.s[p.pos-1] == '.' {
		p.pos--
	}
	return p.s[start:p.pos]
}

func isNameChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (p *parser) readIRIRef() (string, error) {
	if !p.consume('<') {
		return "", p.errorf("expected '<'")
	}
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated IRI reference")
		}
		c := p.advance()
		if c == '>' {
			break
		}
		if c == '\\' {
			r, err := p.readUnicodeEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func (p *parser) readUnicodeEscape() (rune, error) {
	if p.eof() {
		return 0, p.errorf("truncated escape")
	}
	kind := p.advance()
	n := 4
	if kind == 'U' {
		n = 8
	} else if kind != 'u' {
		return rune(kind), nil
	}
	if p.pos+n > len(p.s) {
		return 0, p.errorf("truncated \\%c escape", kind)
	}
	hex := p.s[p.pos : p.pos+n]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, p.errorf("invalid \\%c escape: %v", kind, err)
	}
	p.pos += n
	return rune(v), nil
}

func (p *parser) parseLiteral() (term.Term, error) {
	lexical, err := p.readQuotedString()
	if err != nil {
		return nil, err
	}
	switch {
	case p.peek() == '@':
		p.advance()
		start := p.pos
		for !p.eof() && (isNameChar(rune(p.peek())) || p.peek() == '-') {
			p.advance()
		}
		return term.NewLangLiteral(lexical, p.s[start:p.pos]), nil
	case strings.HasPrefix(p.s[p.pos:], "^^"):
		p.pos += 2
		dt, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return term.NewTypedLiteral(lexical, dt), nil
	default:
		return term.PlainLiteral(lexical), nil
	}
}

func (p *parser) readQuotedString() (string, error) {
	q := p.advance()
	long := false
	if p.peek() == q && p.pos+1 < len(p.s) && p.s[p.pos+1] == q {
		p.advance()
		p.advance()
		long = true
	}
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string literal")
		}
		if long {
			if strings.HasPrefix(p.s[p.pos:], string(q)+string(q)+string(q)) {
				p.pos += 3
				break
			}
		} else if p.peek() == q {
			p.advance()
			break
		}
		c := p.advance()
		if c == '\\' {
			r, err := p.readStringEscape()
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			continue
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

// readStringEscape decodes a string escape immediately after a consumed
// backslash.
func (p *parser) readStringEscape() (rune, error) {
	if p.eof() {
		return 0, p.errorf("truncated escape")
	}
	c := p.advance()
	switch c {
	case 't':
		return '\t', nil
	case 'b':
		return '\b', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'f':
		return '\f', nil
	case '"':
		return '"', nil
	case '\'':
		return '\'', nil
	case '\\':
		return '\\', nil
	case 'u', 'U':
		n := 4
		if c == 'U' {
			n = 8
		}
		if p.pos+n > len(p.s) {
			return 0, p.errorf("truncated \\%c escape", c)
		}
		v, err := strconv.ParseUint(p.s[p.pos:p.pos+n], 16, 32)
		if err != nil {
			return 0, p.errorf("invalid \\%c escape: %v", c, err)
		}
		p.pos += n
		return rune(v), nil
	default:
		return 0, p.errorf("unknown escape \\%c", c)
	}
}

func (p *parser) parseNumericLiteral() (term.Term, error) {
	start := p.pos
	if p.peek() == '+' || p.peek() == '-' {
		p.advance()
	}
	for !p.eof() && isDigit(rune(p.peek())) {
		p.advance()
	}
	isDouble, isDecimal := false, false
	if p.peek() == '.' && p.pos+1 < len(p.s) && isDigit(rune(p.s[p.pos+1])) {
		isDecimal = true
		p.advance()
		for !p.eof() && isDigit(rune(p.peek())) {
			p.advance()
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		isDouble, isDecimal = true, false
		p.advance()
		if p.peek() == '+' || p.peek() == '-' {
			p.advance()
		}
		for !p.eof() && isDigit(rune(p.peek())) {
			p.advance()
		}
	}
	lexical := p.s[start:p.pos]
	dt := xsdns.Integer
	switch {
	case isDouble:
		dt = xsdns.Double
	case isDecimal:
		dt = xsdns.Decimal
	}
	return term.NewTypedLiteral(lexical, dt), nil
}

func (p *parser) parseBooleanLiteral() (term.Term, error) {
	start := p.pos
	for !p.eof() && isNameChar(rune(p.peek())) {
		p.advance()
	}
	return term.NewTypedLiteral(p.s[start:p.pos], xsdns.Boolean), nil
}
