package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// Metrics groups the ledger and HTTP collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	transactionsCreated *prometheus.CounterVec
	amountBooked        *prometheus.CounterVec
	alertsRaised        *prometheus.CounterVec
	numberingRetries    prometheus.Counter
	balanceCache        *prometheus.CounterVec
	balanceCacheStale   prometheus.Counter

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New builds the collectors and registers them on reg. A nil reg leaves them unregistered,
// which tests use to avoid clashing on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transactionsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_transactions_created_total",
			Help: "Ledger rows committed, by type and currency.",
		}, []string{"type", "currency"}),
		amountBooked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_amount_booked_minor_units_total",
			Help: "Sum of committed amounts in minor units, by type and currency.",
		}, []string{"type", "currency"}),
		alertsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_alerts_raised_total",
			Help: "Advisory alerts returned to operators, by level and type.",
		}, []string{"level", "type"}),
		numberingRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledger_numbering_retries_total",
			Help: "Write units retried after a transaction number collision.",
		}),
		balanceCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_balance_cache_lookups_total",
			Help: "Balance cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		balanceCacheStale: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ledger_balance_cache_stale_writes_total",
			Help: "Computed balances not cached because the account was invalidated meanwhile.",
		}),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
	if reg != nil {
		reg.MustRegister(
			m.transactionsCreated, m.amountBooked, m.alertsRaised, m.numberingRetries, m.balanceCache, m.balanceCacheStale,
			m.httpInFlight, m.httpRequestsTotal, m.httpRequestDuration,
		)
	}
	return m
}

// Handler exposes the default gatherer.
func Handler() http.Handler {
	return promhttp.Handler()
}

// TransactionCommitted records committed ledger rows.
func (m *Metrics) TransactionCommitted(txns ...domain.Transaction) {
	if m == nil {
		return
	}
	for _, t := range txns {
		m.transactionsCreated.WithLabelValues(string(t.Type), string(t.Currency)).Inc()
		m.amountBooked.WithLabelValues(string(t.Type), string(t.Currency)).Add(float64(t.Amount))
	}
}

// AlertsRaised records advisory alerts.
func (m *Metrics) AlertsRaised(alerts []domain.Alert) {
	if m == nil {
		return
	}
	for _, a := range alerts {
		m.alertsRaised.WithLabelValues(string(a.Level), a.Type).Inc()
	}
}

// NumberingRetry records one retried write unit.
func (m *Metrics) NumberingRetry() {
	if m == nil {
		return
	}
	m.numberingRetries.Inc()
}

// BalanceCacheLookup records a cache lookup outcome: "hit", "miss" or "error".
func (m *Metrics) BalanceCacheLookup(result string) {
	if m == nil {
		return
	}
	m.balanceCache.WithLabelValues(result).Inc()
}

// BalanceCacheStaleWrite records a balance dropped instead of cached.
func (m *Metrics) BalanceCacheStaleWrite() {
	if m == nil {
		return
	}
	m.balanceCacheStale.Inc()
}

// HTTPStarted marks a request in flight.
func (m *Metrics) HTTPStarted() {
	if m == nil {
		return
	}
	m.httpInFlight.Inc()
}

// HTTPFinished records a completed request.
func (m *Metrics) HTTPFinished(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpInFlight.Dec()
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}
