package bgp

import (
	"context"
	"runtime"

	"github.com/rdfkit/rdfkit/graph"
)

// Cursor is a finite, single-consumer lazy solution sequence (§4.4
// "streaming", §5). Pulling one solution via Next does only the join work
// needed to produce it; abandoning the Cursor via Close (or simply letting
// it be garbage collected without draining) cancels the backing goroutine
// and releases all interior state, which is this module's only suspension
// construct.
type Cursor struct {
	cancel context.CancelFunc
	ch     chan Solution
	cur    Solution
	closed bool
}

// Stream evaluates a BGP against g, returning a Cursor that produces
// solutions one at a time in the planner's chosen order. Both Stream and
// Match share the same search routine, so they agree on the solution
// multiset by construction (§8 properties 5 and 8); Stream differs only in
// when the work happens.
func Stream(ctx context.Context, g *graph.Graph, b *BGP) *Cursor {
	mStreamOpen.Inc()
	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan Solution)
	planned := plan(b.patterns)
	go func() {
		defer close(ch)
		search(ctx, g, planned, Solution{}, func(s Solution) bool {
			select {
			case ch <- s.restrict(b.free):
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()
	c := &Cursor{cancel: cancel, ch: ch}
	runtime.SetFinalizer(c, func(c *Cursor) { c.cancel() })
	return c
}

// Next advances the cursor, reporting whether a further solution is
// available through Solution. It returns false once the sequence is
// exhausted or the cursor has been closed.
func (c *Cursor) Next() bool {
	if c.closed {
		return false
	}
	s, ok := <-c.ch
	if !ok {
		return false
	}
	c.cur = s
	mStreamSolutions.Inc()
	return true
}

// Solution returns the most recent solution produced by Next.
func (c *Cursor) Solution() Solution { return c.cur }

// Close cancels the backing search and releases the goroutine. Safe to
// call multiple times; safe to call without having drained the sequence.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.cancel()
	for range c.ch {
		// drain so the producer's blocked send (if any) unblocks and exits.
	}
	return nil
}

// Take pulls up to n solutions from c and closes it, a convenience for
// callers that only need a bounded prefix (§8 property 8, §8 S6).
func Take(c *Cursor, n int) []Solution {
	defer c.Close()
	out := make([]Solution, 0, n)
	for len(out) < n && c.Next() {
		out = append(out, c.Solution())
	}
	return out
}
