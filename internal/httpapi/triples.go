package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/rdfkit/rdfkit/term"
)

type triplesResponse struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// ServeTriples handles GET /graphs/:name/triples, listing every triple in
// the named graph ("default" selects the dataset's default graph).
func (api *API) ServeTriples(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	mHTTPRequests.WithLabelValues("triples").Inc()
	g, ok := api.graphNamed(params.ByName("name"))
	if !ok {
		writeError(w, http.StatusNotFound, errUnknownGraph(params.ByName("name")))
		return
	}
	triples := g.Triples()
	out := make([]triplesResponse, 0, len(triples))
	for _, t := range triples {
		out = append(out, triplesResponse{
			Subject:   renderObject(t.Subject),
			Predicate: string(t.Predicate),
			Object:    renderObject(t.Object),
		})
	}
	writeResult(w, out)
}

// renderObject renders an IRI as its bare IRI string and any other term in
// its N-Triples form.
func renderObject(t term.Term) string {
	if iri, ok := t.(term.IRI); ok {
		return string(iri)
	}
	return t.String()
}
