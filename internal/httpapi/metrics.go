package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var mHTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rdfkit_httpapi_requests_total",
	Help: "Number of requests served per endpoint.",
}, []string{"endpoint"})
