package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestListingCacheCounters(t *testing.T) {
	hits := testutil.ToFloat64(listingCacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(listingCacheLookups.WithLabelValues("miss"))

	IncListingCache(true)
	IncListingCache(false)
	IncListingCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(listingCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(listingCacheLookups.WithLabelValues("miss")))
}

func TestHandlerExposesRequests(t *testing.T) {
	Register()
	ObserveRequest(http.MethodGet, "/api/properties", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `stayease_http_requests_total{method="GET",route="/api/properties",status="200"}`)
}
