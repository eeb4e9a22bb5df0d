package metrics

import (
	"time"

	"github.com/vibescout/vibescout/internal/observability"
)

// Application-level metrics following Prometheus conventions
var (
	// Discovery attempt metrics
	AttemptsTotal   = "discovery_attempts_total"
	AttemptDuration = "discovery_attempt_duration_ms"

	// Fallback metrics
	FallbacksTotal = "discovery_fallbacks_total"

	// Hand-off slot metrics
	HandoffsTotal = "discovery_handoffs_total"

	// Cache metrics
	CacheLookupsTotal = "discovery_cache_lookups_total"

	// Health check metrics
	HealthCheckTotal    = "app_health_check_total"
	HealthCheckDuration = "app_health_check_duration_ms"

	// Server lifecycle metrics
	ServerStartTime = "app_server_start_time_seconds"
	ServerUptime    = "app_server_uptime_seconds"
)

// RecordAttempt records a resolved discovery attempt with its terminal state.
func RecordAttempt(state string, duration time.Duration) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			AttemptsTotal,
			1,
			map[string]string{
				"state": state,
			},
		)

		_ = observability.TelemetrySystem.Histogram(
			AttemptDuration,
			duration,
			map[string]string{
				"state": state,
			},
		)
	}
}

// RecordFallback records a locally generated fallback, labeled by the failure
// that triggered it.
func RecordFallback(reason string) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			FallbacksTotal,
			1,
			map[string]string{
				"reason": reason,
			},
		)
	}
}

// RecordHandoff records a hand-off slot write.
func RecordHandoff(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			HandoffsTotal,
			1,
			map[string]string{
				"status": status,
			},
		)
	}
}

// RecordCacheLookup records a result cache lookup.
func RecordCacheLookup(hit bool) {
	status := "hit"
	if !hit {
		status = "miss"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			CacheLookupsTotal,
			1,
			map[string]string{
				"status": status,
			},
		)
	}
}

// RecordHealthCheck records a health check execution
func RecordHealthCheck(checkName string, healthy bool, duration time.Duration) {
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}

	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Counter(
			HealthCheckTotal,
			1,
			map[string]string{
				"check":  checkName,
				"status": status,
			},
		)

		_ = observability.TelemetrySystem.Histogram(
			HealthCheckDuration,
			duration,
			map[string]string{
				"check": checkName,
			},
		)
	}
}

// SetServerStartTime records the server start time (Unix timestamp)
func SetServerStartTime(timestamp int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ServerStartTime,
			float64(timestamp),
			nil,
		)
	}
}

// SetServerUptime records the server uptime in seconds
func SetServerUptime(seconds int64) {
	if observability.TelemetrySystem != nil {
		_ = observability.TelemetrySystem.Gauge(
			ServerUptime,
			float64(seconds),
			nil,
		)
	}
}
