package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	APIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console", Name: "api_requests_total", Help: "Gateway requests by method, path and status",
	}, []string{"method", "path", "status"})
	APIDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "console", Name: "api_request_seconds", Help: "Gateway request latency",
		Buckets: prometheus.DefBuckets,
	})
	Reloads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console", Name: "reload_total", Help: "Domain reloads",
	}, []string{"domain"})
	ReloadErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "console", Name: "reload_errors_total", Help: "Failed domain reloads",
	}, []string{"domain"})
)

func init() {
	prometheus.MustRegister(APIRequests, APIDuration, Reloads, ReloadErrors)
}

func Handler() http.Handler { return promhttp.Handler() }

// ObserveAPIRequest records one gateway round trip. status 0 means the
// request failed before any response arrived.
func ObserveAPIRequest(method, path string, status int, d time.Duration) {
	APIRequests.WithLabelValues(method, NormalizePath(path), strconv.Itoa(status)).Inc()
	APIDuration.Observe(d.Seconds())
}

// NormalizePath collapses numeric id segments to {id} so the path label
// stays low-cardinality.
func NormalizePath(p string) string {
	parts := strings.Split(p, "/")
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		if _, err := strconv.ParseInt(seg, 10, 64); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

func ObserveReload(domain string, err error) {
	Reloads.WithLabelValues(domain).Inc()
	if err != nil {
		ReloadErrors.WithLabelValues(domain).Inc()
	}
}
