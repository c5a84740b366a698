// Package metrics exposes the Prometheus counters of the registration flow.
package metrics

import (
	"registrar/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Outcome labels.
const (
	OutcomeAccepted           = "accepted"
	OutcomeConfirmed          = "confirmed"
	OutcomeAuthenticated      = "authenticated"
	OutcomeConflict           = "conflict"
	OutcomeWeakPassword       = "weak_password"
	OutcomePasswordTooLong    = "password_too_long"
	OutcomeDeliveryFailed     = "delivery_failed"
	OutcomeNotFound           = "not_found"
	OutcomeExpired            = "expired"
	OutcomeMismatch           = "mismatch"
	OutcomeInProgress         = "in_progress"
	OutcomePersistenceFailed  = "persistence_failed"
	OutcomeLocked             = "locked"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// Store labels for swept entries.
const (
	StorePending  = "pending_registrations"
	StoreAttempts = "login_attempts"
)

// Metrics holds the service counters.
type Metrics struct {
	register *prometheus.CounterVec
	confirm  *prometheus.CounterVec
	login    *prometheus.CounterVec
	swept    *prometheus.CounterVec
}

// NewRegistry creates a registry with the standard Go and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return registry
}

// New creates the counters and registers them with reg.
// Panics if registration fails (following prometheus convention).
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		register: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registrar_register_total",
			Help: "Registration requests by outcome",
		}, []string{"outcome"}),
		confirm: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registrar_confirm_total",
			Help: "Confirmation requests by outcome",
		}, []string{"outcome"}),
		login: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registrar_login_total",
			Help: "Login requests by outcome",
		}, []string{"outcome"}),
		swept: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "registrar_swept_total",
			Help: "Stale in-memory entries removed by the periodic sweep",
		}, []string{"store"}),
	}

	reg.MustRegister(m.register, m.confirm, m.login, m.swept)

	return m
}

// NewNop returns counters bound to a private registry, for tests and tools.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) RecordRegister(outcome string) {
	m.register.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordConfirm(outcome string) {
	m.confirm.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordLogin(outcome string) {
	m.login.WithLabelValues(outcome).Inc()
}

// RecordSwept adds n removed entries for store. Zero is ignored.
func (m *Metrics) RecordSwept(store string, n int) {
	if n <= 0 {
		return
	}
	m.swept.WithLabelValues(store).Add(float64(n))
}

// StoreSizeParams holds the in-memory stores whose size is exported.
type StoreSizeParams struct {
	fx.In

	Registry *prometheus.Registry
	Pending  repository.PendingRegistrationStore
	Attempts repository.LoginAttemptTracker
}

// RegisterStoreSizes exports the live entry count of each in-memory store as
// registrar_store_entries{store}.
func RegisterStoreSizes(params StoreSizeParams) {
	registerStoreSize(params.Registry, StorePending, params.Pending.Len)
	registerStoreSize(params.Registry, StoreAttempts, params.Attempts.Len)
}

func registerStoreSize(reg prometheus.Registerer, store string, size func() int) {
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name:        "registrar_store_entries",
		Help:        "Entries currently held by an in-memory store",
		ConstLabels: prometheus.Labels{"store": store},
	}, func() float64 {
		return float64(size())
	}))
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRegistry, New),
	fx.Invoke(RegisterStoreSizes),
)
