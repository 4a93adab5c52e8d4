// Package metrics holds the Prometheus collectors of the party registry.
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for party operations.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeConflict = "conflict"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Metrics provides observability for validation, geocoding and persistence.
// All methods are safe to call on a nil receiver.
type Metrics struct {
	Registry *prometheus.Registry

	// Party operations by kind, operation and outcome
	Operations *prometheus.CounterVec

	// Individual field failures reported by the validation pass
	ValidationFailures *prometheus.CounterVec

	// Geocode lookups by status and whether they came from cache
	GeocodeLookups *prometheus.CounterVec

	// Latency of geocode provider calls
	GeocodeLatency prometheus.Histogram

	// Notifications by outcome
	Notifications *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry, together with the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_party_operations_total",
			Help: "Party operations by kind, operation and outcome",
		}, []string{"kind", "operation", "outcome"}),

		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_validation_failures_total",
			Help: "Field validation failures by kind and field",
		}, []string{"kind", "field"}),

		GeocodeLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_geocode_lookups_total",
			Help: "Geocode lookups by result status and source",
		}, []string{"status", "source"}), // source: "provider", "cache"

		GeocodeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "agenda_geocode_duration_seconds",
			Help:    "Duration of geocode provider calls including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		Notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agenda_notifications_total",
			Help: "Registration confirmations by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementOperation records the outcome of a party operation.
func (m *Metrics) IncrementOperation(kind, operation, outcome string) {
	if m != nil {
		m.Operations.WithLabelValues(kind, operation, outcome).Inc()
	}
}

// IncrementValidationFailures records one failure per field.
func (m *Metrics) IncrementValidationFailures(kind string, fields map[string]string) {
	if m == nil {
		return
	}
	for field := range fields {
		m.ValidationFailures.WithLabelValues(kind, field).Inc()
	}
}

// IncrementGeocodeLookup records a lookup result.
func (m *Metrics) IncrementGeocodeLookup(status, source string) {
	if m != nil {
		m.GeocodeLookups.WithLabelValues(status, source).Inc()
	}
}

// ObserveGeocodeLatency records the duration of a provider call.
func (m *Metrics) ObserveGeocodeLatency(d time.Duration) {
	if m != nil {
		m.GeocodeLatency.Observe(d.Seconds())
	}
}

// IncrementNotification records a notification outcome.
func (m *Metrics) IncrementNotification(outcome string) {
	if m != nil {
		m.Notifications.WithLabelValues(outcome).Inc()
	}
}

// RegisterDBStats exposes the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	if m == nil || db == nil {
		return nil
	}

	return m.Registry.Register(collectors.NewDBStatsCollector(db, name))
}
