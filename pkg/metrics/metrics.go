// Package metrics provides Prometheus metrics for the conversion service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "figma_codegen_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "figma_codegen_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Conversion pipeline metrics
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "figma_codegen_conversions_total",
			Help: "Total number of conversion requests",
		},
		[]string{"format", "status"},
	)

	conversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "figma_codegen_conversion_duration_seconds",
			Help:    "Conversion pipeline duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)

	conversionScreens = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "figma_codegen_conversion_screens",
			Help:    "Number of screens per successful conversion",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
		},
	)

	archiveBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "figma_codegen_archive_bytes",
			Help:    "Size of generated archives in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)

	pipelineWarningsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "figma_codegen_pipeline_warnings_total",
			Help: "Total normalization warnings by code",
		},
		[]string{"code"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordConversion records one conversion attempt. Status is "success" or the
// error code reported to the caller.
func RecordConversion(format, status string, duration time.Duration) {
	conversionsTotal.WithLabelValues(format, status).Inc()
	conversionDuration.WithLabelValues(format).Observe(duration.Seconds())
}

// RecordArchive records the shape of a successful conversion's output.
func RecordArchive(screens, sizeBytes int) {
	conversionScreens.Observe(float64(screens))
	archiveBytes.Observe(float64(sizeBytes))
}

// RecordPipelineWarning records one normalization warning.
func RecordPipelineWarning(code string) {
	pipelineWarningsTotal.WithLabelValues(code).Inc()
}

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		RecordHTTPRequest(r.Method, r.URL.Path, rw.statusCode, time.Since(start))
	})
}
