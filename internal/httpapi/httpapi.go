// Package httpapi implements a read-only HTTP data-access surface over a
// Dataset (SPEC_FULL.md "Read-only HTTP data-access API"): GET endpoints to
// list a named graph's triples and to run a BGP query against it, encoded
// as the module's own pattern JSON rather than SPARQL — the SPARQL client
// itself stays out of scope per spec.md §1.
//
// Grounded on the teacher's internal/http package: httprouter routing,
// a LogRequest/CORS middleware chain, and a jsonResponse error envelope,
// adapted from cayley's graph.Handle/QuadStore surface to this module's
// immutable Dataset.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/rdflog"
)

var log = rdflog.Component("httpapi")

func errUnknownGraph(name string) error {
	return fmt.Errorf("no such graph %q", name)
}

// API serves read-only routes over a fixed Dataset snapshot. Since every
// value in this module is immutable, the API never needs a lock: swapping
// in a new Dataset (e.g. after a reload) means constructing a new API.
type API struct {
	ds *graph.Dataset
}

// New builds an API serving ds.
func New(ds *graph.Dataset) *API { return &API{ds: ds} }

// Router builds the httprouter.Router exposing this API's routes.
func (api *API) Router() *httprouter.Router {
	r := httprouter.New()
	r.GET("/graphs/:name/triples", CORS(LogRequest(api.ServeTriples)))
	r.GET("/graphs/:name/query", CORS(LogRequest(api.ServeQuery)))
	r.GET("/healthz", CORS(LogRequest(api.ServeHealth)))
	r.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// ServeHealth reports liveness and the loaded dataset's quad count, mirroring
// the teacher's internal/http/health.go.
func (api *API) ServeHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeResult(w, map[string]interface{}{
		"status":      "ok",
		"quad_count":  api.ds.QuadCount(),
		"graph_count": len(api.ds.GraphNames()),
	})
}

// graphNamed returns the default graph for name "default", or the named
// graph otherwise; ok is false when a non-default name isn't present in
// the dataset.
func (api *API) graphNamed(name string) (*graph.Graph, bool) {
	if name == "default" {
		return api.ds.DefaultGraph(), true
	}
	for _, n := range api.ds.GraphNames() {
		if n.String() == name {
			return api.ds.Graph(n), true
		}
	}
	return nil, false
}

func writeResult(w http.ResponseWriter, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(map[string]interface{}{"result": result})
}

func writeError(w http.ResponseWriter, code int, err error) {
	log.Warningf("%v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": err.Error()})
}

// LogRequest wraps a handler with a start/complete log pair, mirroring the
// teacher's internal/http.LogRequest.
func LogRequest(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		start := time.Now()
		log.Infof("started %s %s", req.Method, req.URL.Path)
		h(w, req, params)
		log.Infof("completed %s %s in %v", req.Method, req.URL.Path, time.Since(start))
	}
}

// CORS allows cross-origin reads, mirroring the teacher's CORSFunc.
func CORS(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {
		if origin := req.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		}
		h(w, req, params)
	}
}
