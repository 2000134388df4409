package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayease",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stayease",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayease",
			Name:      "bookings_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	bookingStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayease",
			Name:      "booking_status_changes_total",
			Help:      "Count of host decisions over bookings.",
		},
		[]string{"status"},
	)

	reviewsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayease",
			Name:      "reviews_created_total",
			Help:      "Count of reviews posted.",
		},
	)

	waitlistSignups = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayease",
			Name:      "waitlist_signups_total",
			Help:      "Count of waitlist signups.",
		},
	)

	listingCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayease",
			Name:      "listing_cache_lookups_total",
			Help:      "Listing cache lookups by result.",
		},
		[]string{"result"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			bookingsCreated,
			bookingStatusChanges,
			reviewsCreated,
			waitlistSignups,
			listingCacheLookups,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func IncBookingCreated(status string) {
	bookingsCreated.WithLabelValues(status).Inc()
}

func IncBookingStatusChange(status string) {
	bookingStatusChanges.WithLabelValues(status).Inc()
}

func IncReviewCreated() {
	reviewsCreated.Inc()
}

func IncWaitlistSignup() {
	waitlistSignups.Inc()
}

func IncListingCache(hit bool) {
	if hit {
		listingCacheLookups.WithLabelValues("hit").Inc()
		return
	}
	listingCacheLookups.WithLabelValues("miss").Inc()
}
