package metrics

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, UnmatchedRoute, routeLabel(""))
	assert.Equal(t, "/ping", routeLabel("GET /ping"))
	assert.Equal(t, "/api/products/{id}", routeLabel("GET /api/products/{id}"))
	assert.Equal(t, "/api/session/cart/{id}", routeLabel("/api/session/cart/{id}"))
}

func TestInstrumentHandler_LabelsWithRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/teapot/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := InstrumentHandler(mux)

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/teapot/{id}", "418"))
	for _, id := range []string{"7", "8", "9"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/teapot/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	}
	assert.Equal(t, before+3, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/teapot/{id}", "418")))
}

func TestInstrumentHandler_UnmatchedPathsShareOneSeries(t *testing.T) {
	h := InstrumentHandler(http.NewServeMux())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", UnmatchedRoute, "404"))
	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/junk%d/x", i), nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	}
	assert.Equal(t, before+5, testutil.ToFloat64(httpRequests.WithLabelValues("GET", UnmatchedRoute, "404")))

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NotContains(t, rr.Body.String(), "/junk")
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(previewRequests.WithLabelValues(PreviewInvalid))
	RecordPreview(PreviewInvalid, 0)
	assert.Equal(t, before+1, testutil.ToFloat64(previewRequests.WithLabelValues(PreviewInvalid)))

	placed := testutil.ToFloat64(ordersPlaced)
	RecordOrder(17000)
	assert.Equal(t, placed+1, testutil.ToFloat64(ordersPlaced))

	ops := testutil.ToFloat64(cartOperations.WithLabelValues("add"))
	RecordCartOperation("add")
	assert.Equal(t, ops+1, testutil.ToFloat64(cartOperations.WithLabelValues("add")))
}

func TestHandler_Exposes(t *testing.T) {
	RecordStalePreview()
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "void_apparel_preview_stale_results_total")
}
