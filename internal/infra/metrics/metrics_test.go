package metrics

import (
	"strings"
	"testing"

	"registrar/internal/mocks/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordRegister(OutcomeAccepted)
	m.RecordRegister(OutcomeAccepted)
	m.RecordRegister(OutcomeConflict)
	m.RecordConfirm(OutcomeExpired)
	m.RecordLogin(OutcomeLocked)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.register.WithLabelValues(OutcomeAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.register.WithLabelValues(OutcomeConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.confirm.WithLabelValues(OutcomeExpired)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.login.WithLabelValues(OutcomeLocked)))
}

func TestMetrics_RecordSwept(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordSwept(StorePending, 0)
	assert.Equal(t, 0, testutil.CollectAndCount(m.swept))

	m.RecordSwept(StorePending, 3)
	m.RecordSwept(StoreAttempts, 1)

	expected := `
# HELP registrar_swept_total Stale in-memory entries removed by the periodic sweep
# TYPE registrar_swept_total counter
registrar_swept_total{store="login_attempts"} 1
registrar_swept_total{store="pending_registrations"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "registrar_swept_total"))
}

func TestNewRegistry_IncludesRuntimeCollectors(t *testing.T) {
	families, err := NewRegistry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}

func TestRegisterStoreSizes(t *testing.T) {
	reg := prometheus.NewRegistry()
	pending := repository.NewMockPendingRegistrationStore(t)
	attempts := repository.NewMockLoginAttemptTracker(t)
	pending.EXPECT().Len().Return(3)
	attempts.EXPECT().Len().Return(1)

	RegisterStoreSizes(StoreSizeParams{Registry: reg, Pending: pending, Attempts: attempts})

	expected := `
# HELP registrar_store_entries Entries currently held by an in-memory store
# TYPE registrar_store_entries gauge
registrar_store_entries{store="login_attempts"} 1
registrar_store_entries{store="pending_registrations"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "registrar_store_entries"))
}
