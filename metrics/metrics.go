package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Preview outcomes
const (
	PreviewSuccess       = "success"
	PreviewInvalid       = "invalid"
	PreviewNotConfigured = "not_configured"
	PreviewFailed        = "failed"
)

var (
	// Registry holds the storefront Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "void_apparel",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "void_apparel",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	previewRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "void_apparel",
			Subsystem: "preview",
			Name:      "requests_total",
			Help:      "Preview generation requests by outcome.",
		},
		[]string{"outcome"},
	)

	previewDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "void_apparel",
			Subsystem: "preview",
			Name:      "downstream_duration_seconds",
			Help:      "Duration of calls to the image-generation API.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 9), // 250ms to ~64s
		},
	)

	stalePreviews = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "void_apparel",
			Subsystem: "preview",
			Name:      "stale_results_total",
			Help:      "Session preview results discarded because a newer request exists.",
		},
	)

	cartOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "void_apparel",
			Subsystem: "cart",
			Name:      "operations_total",
			Help:      "Cart mutations by operation.",
		},
		[]string{"operation"},
	)

	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "void_apparel",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Total number of orders placed.",
		},
	)

	orderRevenue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "void_apparel",
			Subsystem: "orders",
			Name:      "revenue_cents_total",
			Help:      "Sum of placed order totals in cents.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		previewRequests,
		previewDuration,
		stalePreviews,
		cartOperations,
		ordersPlaced,
		orderRevenue,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		path := routeLabel(r.Pattern)
		method := strings.ToUpper(r.Method)
		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordPreview records the outcome of one preview request.
// duration is the downstream call time and is ignored when no call was made.
func RecordPreview(outcome string, duration time.Duration) {
	previewRequests.WithLabelValues(outcome).Inc()
	if outcome == PreviewSuccess || outcome == PreviewFailed {
		previewDuration.Observe(duration.Seconds())
	}
}

// RecordStalePreview counts a discarded out-of-order preview result.
func RecordStalePreview() {
	stalePreviews.Inc()
}

// RecordCartOperation counts one cart mutation.
func RecordCartOperation(operation string) {
	cartOperations.WithLabelValues(operation).Inc()
}

// RecordOrder counts a placed order and its total.
func RecordOrder(totalCents int64) {
	ordersPlaced.Inc()
	if totalCents > 0 {
		orderRevenue.Add(float64(totalCents))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// UnmatchedRoute labels requests no route pattern matched
const UnmatchedRoute = "unmatched"

// routeLabel turns the pattern ServeMux matched, like "GET /api/products/{id}",
// into the path label. The method is dropped since it has its own label.
func routeLabel(pattern string) string {
	if pattern == "" {
		return UnmatchedRoute
	}
	if i := strings.IndexByte(pattern, ' '); i >= 0 {
		pattern = strings.TrimLeft(pattern[i+1:], " \t")
	}
	return pattern
}
