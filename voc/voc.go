// Package voc implements the external "vocabulary namespace" collaborator
// of §6: a process-wide registry of short prefix labels mapped to IRI
// namespaces, and a Namespace convenience type exposing the
// Resolver.ResolveTerm contract the term coercion layer consumes.
package voc

import (
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	prefixes map[string]string
)

// RegisterPrefix associates a prefix with a base vocabulary IRI, process-wide.
func RegisterPrefix(prefix, ns string) {
	mu.Lock()
	defer mu.Unlock()
	if prefixes == nil {
		prefixes = make(map[string]string)
	}
	prefixes[prefix] = ns
}

// ShortIRI replaces a known vocabulary's base IRI with its prefix, e.g.
// "http://www.w3.org/1999/02/22-rdf-syntax-ns#type" -> "rdf:type".
func ShortIRI(iri string) string {
	mu.RLock()
	defer mu.RUnlock()
	for prefix, ns := range prefixes {
		if strings.HasPrefix(iri, ns) {
			return prefix + ":" + iri[len(ns):]
		}
	}
	return iri
}

// FullIRI expands a "prefix:local" token using the registry.
func FullIRI(token string) (string, bool) {
	prefix, local, ok := strings.Cut(token, ":")
	if !ok {
		return "", false
	}
	mu.RLock()
	ns, ok := prefixes[prefix]
	mu.RUnlock()
	if !ok {
		return "", false
	}
	return ns + local, true
}

// List enumerates all registered prefix/namespace pairs.
func List() [][2]string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([][2]string, 0, len(prefixes))
	for prefix, ns := range prefixes {
		out = append(out, [2]string{prefix, ns})
	}
	return out
}

// Namespace is a compile-time convenience over a single IRI namespace: a
// base IRI plus a resolver that expands "local" tokens into absolute IRIs.
// It implements term.Resolver.
type Namespace struct {
	Base string
}

// NewNamespace builds a Namespace rooted at base, registering it under prefix
// in the process-wide registry for ShortIRI/FullIRI use.
func NewNamespace(prefix, base string) Namespace {
	RegisterPrefix(prefix, base)
	return Namespace{Base: base}
}

func (n Namespace) IRI(local string) string { return n.Base + local }

// ResolveTerm implements term.Resolver: a "prefix:local" token whose prefix
// is in the process-wide registry expands through it; any other token is
// resolved relative to this namespace's base IRI.
func (n Namespace) ResolveTerm(token string) (string, error) {
	if full, ok := FullIRI(token); ok {
		return full, nil
	}
	return n.Base + token, nil
}
