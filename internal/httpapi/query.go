package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/rdfkit/rdfkit/bgp"
	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/voc"
	_ "github.com/rdfkit/rdfkit/voc/dc"
	_ "github.com/rdfkit/rdfkit/voc/rdf"
	_ "github.com/rdfkit/rdfkit/voc/rdfs"
	_ "github.com/rdfkit/rdfkit/voc/xsdns"
)

// globalResolver resolves "prefix:local" tokens against the process-wide
// vocabulary registry (package voc), so a query's JSON pattern can use
// "rdf:type" as well as absolute IRIs.
type globalResolver struct{}

func (globalResolver) ResolveTerm(token string) (string, error) {
	if full, ok := voc.FullIRI(token); ok {
		return full, nil
	}
	return "", fmt.Errorf("unresolvable vocabulary token %q", token)
}

// ServeQuery handles GET /graphs/:name/query?bgp=<json-array-of-patterns>,
// running a BGP against the named graph and returning the solution
// multiset. ?stream=1 runs the streaming strategy instead of the
// materializing one; both must agree by construction (spec.md §8
// property 5), so the choice only affects how the work is scheduled.
func (api *API) ServeQuery(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	mHTTPRequests.WithLabelValues("query").Inc()
	g, ok := api.graphNamed(params.ByName("name"))
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownGraph(params.ByName("name")))
		return
	}

	raw := r.URL.Query().Get("bgp")
	if raw == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing bgp query parameter"))
		return
	}
	query, err := bgp.FromJSON([]byte(raw), globalResolver{})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	stream, _ := strconv.ParseBool(r.URL.Query().Get("stream"))
	solutions := runQuery(r.Context(), g, query, stream)
	writeResult(w, solutions)
}

func encodeSolution(s bgp.Solution) map[string]string {
	out := make(map[string]string, len(s))
	for v, t := range s {
		out[string(v)] = renderObject(t)
	}
	return out
}

// runQuery evaluates query against g using either matcher strategy; both
// must yield the same solution multiset (spec.md §8 property 5), so the
// only observable difference is when the work happens.
func runQuery(ctx context.Context, g *graph.Graph, query *bgp.BGP, stream bool) []map[string]string {
	if !stream {
		solutions := bgp.Match(g, query)
		out := make([]map[string]string, len(solutions))
		for i, s := range solutions {
			out[i] = encodeSolution(s)
		}
		return out
	}

	cur := bgp.Stream(ctx, g, query)
	defer cur.Close()
	var out []map[string]string
	for cur.Next() {
		out = append(out, encodeSolution(cur.Solution()))
	}
	return out
}
