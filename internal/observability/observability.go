// Package observability holds the Prometheus collectors shared by the API,
// the providers and the weather service.
package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_advisor_requests_total",
			Help: "Total API requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_advisor_upstream_requests_total",
			Help: "Total provider calls by provider, endpoint and status.",
		},
		[]string{"provider", "endpoint", "status"},
	)

	RiskLevels = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_advisor_risk_levels_total",
			Help: "Derived risk levels by level and activity mode.",
		},
		[]string{"level", "mode"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, UpstreamRequests, RiskLevels)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StatusError is the status label for calls that never got a response.
const StatusError = "error"

// ObserveUpstream counts one provider call. A zero status means the request failed
// before a response arrived.
func ObserveUpstream(provider, endpoint string, status int) {
	label := StatusError
	if status > 0 {
		label = strconv.Itoa(status)
	}
	UpstreamRequests.WithLabelValues(provider, endpoint, label).Inc()
}
