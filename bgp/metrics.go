package bgp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instrumentation for the BGP matcher, grounded on the teacher's
// graph/kv/metrics.go promauto style.
var (
	mMatchSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "rdfkit_bgp_match_seconds",
		Help: "Time to fully materialize a BGP match.",
	})
	mMatchSolutions = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "rdfkit_bgp_match_solutions",
		Help: "Number of solutions produced by a materializing BGP match.",
	})
	mCandidatesPerPattern = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "rdfkit_bgp_pattern_candidates",
		Help: "Number of candidate triples considered for a single pattern position.",
	}, []string{"position"})
	mStreamOpen = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfkit_bgp_stream_open_count",
		Help: "Number of streaming BGP Cursors opened.",
	})
	mStreamSolutions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdfkit_bgp_stream_solutions_total",
		Help: "Number of solutions pulled from streaming BGP Cursors.",
	})
)

func observeCandidates(position string, n int) {
	mCandidatesPerPattern.WithLabelValues(position).Observe(float64(n))
}
