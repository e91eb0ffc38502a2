package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
)

func testDataset() *graph.Dataset {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("ex:alice"), Predicate: term.IRI("ex:knows"), Object: term.IRI("ex:bob")},
	})
	return graph.NewDataset(nil).PutGraph(nil, g)
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	var env struct {
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Result, into))
}

func TestServeHealth(t *testing.T) {
	api := New(testDataset())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	decodeResult(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 1, body["quad_count"])
}

func TestServeTriplesDefaultGraph(t *testing.T) {
	api := New(testDataset())
	req := httptest.NewRequest(http.MethodGet, "/graphs/default/triples", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var triples []triplesResponse
	decodeResult(t, rec, &triples)
	require.Len(t, triples, 1)
	assert.Equal(t, "ex:alice", triples[0].Subject)
	assert.Equal(t, "ex:knows", triples[0].Predicate)
	assert.Equal(t, "ex:bob", triples[0].Object)
}

func TestServeTriplesUnknownGraph(t *testing.T) {
	api := New(testDataset())
	req := httptest.NewRequest(http.MethodGet, "/graphs/nope/triples", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeQueryMaterializingAndStreamingAgree(t *testing.T) {
	api := New(testDataset())
	pattern := `[{"S":{"var":"s"},"P":{"value":"ex:knows"},"O":{"var":"o"}}]`

	req := httptest.NewRequest(http.MethodGet, "/graphs/default/query?bgp="+pattern, nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var materialized []map[string]string
	decodeResult(t, rec, &materialized)

	reqStream := httptest.NewRequest(http.MethodGet, "/graphs/default/query?stream=1&bgp="+pattern, nil)
	recStream := httptest.NewRecorder()
	api.Router().ServeHTTP(recStream, reqStream)
	require.Equal(t, http.StatusOK, recStream.Code)
	var streamed []map[string]string
	decodeResult(t, recStream, &streamed)

	require.Len(t, materialized, 1)
	assert.Equal(t, materialized, streamed)
	assert.Equal(t, "ex:alice", materialized[0]["s"])
	assert.Equal(t, "ex:bob", materialized[0]["o"])
}

func TestServeQueryMissingBGPParameter(t *testing.T) {
	api := New(testDataset())
	req := httptest.NewRequest(http.MethodGet, "/graphs/default/query", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeQueryCurieToken(t *testing.T) {
	g := graph.New([]term.Triple{
		{Subject: term.IRI("ex:alice"), Predicate: term.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type"), Object: term.IRI("ex:Person")},
	})
	api := New(graph.NewDataset(nil).PutGraph(nil, g))
	pattern := `[{"S":{"var":"s"},"P":{"value":"rdf:type"},"O":{"var":"o"}}]`

	req := httptest.NewRequest(http.MethodGet, "/graphs/default/query?bgp="+pattern, nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sols []map[string]string
	decodeResult(t, rec, &sols)
	require.Len(t, sols, 1)
	assert.Equal(t, "ex:Person", sols[0]["o"])
}
