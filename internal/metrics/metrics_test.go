package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ReservationCreated(1)
	m.ReservationCreated(2)
	m.ReservationDeleted(1)
	m.ReportGenerated()
	m.ReportGenerated()
	m.ReportExported()
	m.IncCommand("view")
	m.IncCommand("view")
	m.IncInvalidInput(InputNotANumber)
	m.IncHandlerError()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ActiveReservations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReportsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsExported))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HandlerErrors))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CommandsTotal.WithLabelValues("view")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvalidInputs.WithLabelValues(InputNotANumber)))

	snapshot, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 2.0, snapshot["diningres_reservations_created_total"])
	assert.Equal(t, 1.0, snapshot["diningres_active_reservations"])
	assert.Equal(t, 2.0, snapshot["diningres_commands_total"])
}

func TestMetrics_Isolated(t *testing.T) {
	// Each instance owns its registry, so two consoles never collide.
	a, b := New(), New()
	a.ReservationCreated(1)

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ReservationsCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ReservationsCreated))
	assert.NotSame(t, a.Registry(), b.Registry())
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncCommand("view")
		m.IncInvalidInput(InputEmptyText)
		m.IncHandlerError()
		m.ReservationCreated(1)
		m.ReservationDeleted(0)
		m.ReportGenerated()
		m.ReportExported()
	})

	snapshot, err := m.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, snapshot)
	assert.Nil(t, m.Registry())
}
