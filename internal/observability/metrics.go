package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis failures by operation so cache degradation
	// is visible even though callers fail open.
	RedisErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamevents_redis_errors_total",
			Help: "Total number of Redis errors by operation",
		},
		[]string{"operation"},
	)

	// UserRegistrations counts successful account creations.
	UserRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "streamevents_user_registrations_total",
			Help: "Total number of successful user registrations",
		},
	)

	// LoginAttempts counts login attempts by result (success, failure).
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamevents_login_attempts_total",
			Help: "Total number of login attempts by result",
		},
		[]string{"result"},
	)

	// EventsCreated counts created events by category.
	EventsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamevents_events_created_total",
			Help: "Total number of events created by category",
		},
		[]string{"category"},
	)

	// CacheRequests counts cache lookups by outcome (hit, miss).
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streamevents_cache_requests_total",
			Help: "Total number of cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)
