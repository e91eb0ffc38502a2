package bgp

import "github.com/rdfkit/rdfkit/rdflog"

var log = rdflog.Component("bgp")

// plan reorders patterns for selectivity: at each step it greedily picks
// the remaining pattern with the fewest variables not yet bound by an
// earlier pick, preferring patterns with no variables at all and
// patterns whose variables are already covered (§4.4 step 1). Ties break
// by original position, keeping the plan deterministic. Reordering affects
// performance only; Match and Stream must agree on the resulting multiset
// regardless of plan order.
func plan(patterns []TriplePattern) []TriplePattern {
	remaining := append([]TriplePattern(nil), patterns...)
	bound := map[Var]bool{}
	out := make([]TriplePattern, 0, len(patterns))
	for len(remaining) > 0 {
		bestIdx, bestCost := -1, -1
		for i, p := range remaining {
			cost := unboundCount(p, bound)
			if bestIdx == -1 || cost < bestCost {
				bestIdx, bestCost = i, cost
			}
		}
		chosen := remaining[bestIdx]
		out = append(out, chosen)
		for _, v := range chosen.vars() {
			bound[v] = true
		}
		remaining = append(remaining[:bestIdx:bestIdx], remaining[bestIdx+1:]...)
	}
	if rdflog.V(1) {
		log.Infof("planned pattern order: %v", out)
	}
	return out
}

func unboundCount(p TriplePattern, bound map[Var]bool) int {
	n := 0
	for _, v := range p.vars() {
		if !bound[v] {
			n++
		}
	}
	return n
}
