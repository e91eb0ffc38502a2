package graph

import "sort"

// PrefixMap is a bidirectional mapping between short prefix labels and IRI
// namespaces, used only by serialization (§4.2, §9): Graph equality ignores
// it entirely.
type PrefixMap struct {
	byPrefix map[string]string
	order    []string
}

// NewPrefixMap builds a PrefixMap from a prefix -> namespace mapping.
func NewPrefixMap(m map[string]string) *PrefixMap {
	pm := &PrefixMap{byPrefix: make(map[string]string, len(m))}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		pm.set(k, m[k])
	}
	return pm
}

func (pm *PrefixMap) set(prefix, ns string) {
	if _, ok := pm.byPrefix[prefix]; !ok {
		pm.order = append(pm.order, prefix)
	}
	pm.byPrefix[prefix] = ns
}

// Lookup returns the namespace for prefix, if registered.
func (pm *PrefixMap) Lookup(prefix string) (string, bool) {
	if pm == nil {
		return "", false
	}
	ns, ok := pm.byPrefix[prefix]
	return ns, ok
}

// PrefixFor returns the registered prefix with the longest namespace that
// is a prefix of iri, and the local part, if any namespace matches.
func (pm *PrefixMap) PrefixFor(iri string) (prefix, local string, ok bool) {
	if pm == nil {
		return "", "", false
	}
	bestLen := -1
	for _, p := range pm.order {
		ns := pm.byPrefix[p]
		if len(ns) > 0 && len(iri) >= len(ns) && iri[:len(ns)] == ns {
			if len(ns) > bestLen {
				bestLen, prefix, local, ok = len(ns), p, iri[len(ns):], true
			}
		}
	}
	return
}

// Pairs returns the registered prefix/namespace pairs in registration order
// (NewPrefixMap registers its keys sorted by prefix name; a merge appends
// newly seen prefixes after the existing ones).
func (pm *PrefixMap) Pairs() [][2]string {
	if pm == nil {
		return nil
	}
	out := make([][2]string, 0, len(pm.order))
	for _, p := range pm.order {
		out = append(out, [2]string{p, pm.byPrefix[p]})
	}
	return out
}

// ConflictFunc resolves a prefix registered with two different namespaces;
// it returns the namespace to keep.
type ConflictFunc func(prefix, existing, incoming string) string

// LastWriterWins is the default explicit-call conflict policy (§4.2 add_prefixes).
func LastWriterWins(_ string, _, incoming string) string { return incoming }

// FirstWriterWins is the default implicit-merge conflict policy (§4.2 add, S4).
func FirstWriterWins(_ string, existing, _ string) string { return existing }

// merge returns a new PrefixMap containing pm's entries plus other's,
// resolving prefix conflicts with resolve.
func (pm *PrefixMap) merge(other *PrefixMap, resolve ConflictFunc) *PrefixMap {
	out := &PrefixMap{byPrefix: map[string]string{}}
	if pm != nil {
		for _, p := range pm.order {
			out.set(p, pm.byPrefix[p])
		}
	}
	if other != nil {
		for _, p := range other.order {
			if existing, ok := out.byPrefix[p]; ok {
				out.byPrefix[p] = resolve(p, existing, other.byPrefix[p])
			} else {
				out.set(p, other.byPrefix[p])
			}
		}
	}
	return out
}

// Delete removes the given prefixes, returning a new PrefixMap.
func (pm *PrefixMap) delete(prefixes ...string) *PrefixMap {
	out := &PrefixMap{byPrefix: map[string]string{}}
	skip := map[string]bool{}
	for _, p := range prefixes {
		skip[p] = true
	}
	if pm != nil {
		for _, p := range pm.order {
			if !skip[p] {
				out.set(p, pm.byPrefix[p])
			}
		}
	}
	return out
}
