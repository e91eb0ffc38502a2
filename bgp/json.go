package bgp

import (
	"encoding/json"
	"fmt"

	"github.com/rdfkit/rdfkit/term"
)

// PatternElement is the wire form of one Stmt position: a bare variable
// name ("var") or a coercible term value ("value") — an absolute IRI, a
// vocabulary token resolved through the Resolver passed to FromJSON, or a
// quoted literal lexical form. Exactly one of the two should be set.
type PatternElement struct {
	Var   string `json:"var,omitempty"`
	Value string `json:"value,omitempty"`
}

// PatternStmt is the wire form of one triple-pattern statement, consumed
// by FromJSON. It mirrors T's (s, p, o) shape; fan-out and path statements
// have no JSON form since they're sugar the builder expands at construction
// time, before a BGP ever has a wire representation.
type PatternStmt struct {
	S, P, O PatternElement
}

func (e PatternElement) raw() interface{} {
	if e.Var != "" {
		return Var(e.Var)
	}
	return e.Value
}

// FromJSON decodes a BGP from a JSON array of PatternStmt and builds it via
// New, resolving vocabulary tokens through res. This is the wire format the
// HTTP query endpoint and the CLI's query subcommand both accept, keeping
// the module's own pattern syntax — not SPARQL — as the on-the-wire query
// language (spec.md §1).
func FromJSON(data []byte, res term.Resolver) (*BGP, error) {
	var stmts []PatternStmt
	if err := json.Unmarshal(data, &stmts); err != nil {
		return nil, fmt.Errorf("bgp: decoding pattern JSON: %w", err)
	}
	built := make([]Stmt, 0, len(stmts))
	for _, st := range stmts {
		built = append(built, T(st.S.raw(), st.P.raw(), st.O.raw()))
	}
	return New(res, built...)
}
