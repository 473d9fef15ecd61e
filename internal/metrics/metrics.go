package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "diningres"

// Invalid input kinds used as the "kind" label.
const (
	InputEmptyText      = "empty_text"
	InputNotANumber     = "not_a_number"
	InputBelowMinimum   = "below_minimum"
	InputUnknownCommand = "unknown_command"
	InputUnknownNumber  = "unknown_number"
)

// Metrics holds the console counters. All methods are safe on a nil receiver
// so callers can run without metrics.
type Metrics struct {
	registry *prometheus.Registry

	ReservationsCreated prometheus.Counter
	ReservationsDeleted prometheus.Counter
	ReportsGenerated    prometheus.Counter
	ReportsExported     prometheus.Counter
	ActiveReservations  prometheus.Gauge
	HandlerErrors       prometheus.Counter
	CommandsTotal       *prometheus.CounterVec
	InvalidInputs       *prometheus.CounterVec
}

// New registers all collectors on a private registry; nothing is exposed over HTTP.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ReservationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Total number of reservations created.",
		}),
		ReservationsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_deleted_total",
			Help:      "Total number of reservations deleted.",
		}),
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Total number of billing reports printed.",
		}),
		ReportsExported: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_exported_total",
			Help:      "Total number of billing reports written to a workbook.",
		}),
		ActiveReservations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_reservations",
			Help:      "Number of reservations not yet deleted.",
		}),
		HandlerErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handler_errors_total",
			Help:      "Command handlers that panicked and were recovered.",
		}),
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Menu commands dispatched.",
		}, []string{"command"}),
		InvalidInputs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalid_inputs_total",
			Help:      "Rejected user inputs by kind.",
		}, []string{"kind"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) IncCommand(command string) {
	if m == nil {
		return
	}
	m.CommandsTotal.WithLabelValues(command).Inc()
}

func (m *Metrics) IncInvalidInput(kind string) {
	if m == nil {
		return
	}
	m.InvalidInputs.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncHandlerError() {
	if m == nil {
		return
	}
	m.HandlerErrors.Inc()
}

func (m *Metrics) ReservationCreated(active int) {
	if m == nil {
		return
	}
	m.ReservationsCreated.Inc()
	m.ActiveReservations.Set(float64(active))
}

func (m *Metrics) ReservationDeleted(active int) {
	if m == nil {
		return
	}
	m.ReservationsDeleted.Inc()
	m.ActiveReservations.Set(float64(active))
}

func (m *Metrics) ReportGenerated() {
	if m == nil {
		return
	}
	m.ReportsGenerated.Inc()
}

func (m *Metrics) ReportExported() {
	if m == nil {
		return
	}
	m.ReportsExported.Inc()
}

// Snapshot gathers the registry and sums every family by name.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	if m == nil {
		return map[string]float64{}, nil
	}

	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	snapshot := make(map[string]float64, len(families))
	for _, family := range families {
		var total float64
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				total += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				total += metric.GetGauge().GetValue()
			}
		}
		snapshot[family.GetName()] = total
	}
	return snapshot, nil
}
