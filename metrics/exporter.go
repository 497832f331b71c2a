package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handle registers the Prometheus exporter on mux at /metrics.
func Handle(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
