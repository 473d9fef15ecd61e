package main

import (
	"context"
	"io"
	"log"
	"maps"
	"os"
	"slices"

	"diningres/internal/config"
	"diningres/internal/console"
	"diningres/internal/domain"
	"diningres/internal/events"
	"diningres/internal/export"
	"diningres/internal/logging"
	"diningres/internal/metrics"
	"diningres/internal/repository"
	"diningres/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	input := os.Stdin
	defer input.Close()

	var m *metrics.Metrics
	if cfg.Metrics.IsEnabled() {
		m = metrics.New()
	}

	eventBus := events.NewEventBus()
	subscribeReservationEvents(eventBus, m, &logger)

	repo := repository.NewMemoryReservationRepository()
	reservationService := service.NewReservationService(repo, eventBus, cfg.Pricing, &logger)

	var exporter domain.ReportExporter
	if cfg.Exports.Enabled {
		exporter = export.NewExcelExporter(cfg.Exports.Path, &logger)
	}

	logger.Info().
		Str("menu_exit", cfg.Menu.Exit).
		Bool("exports", cfg.Exports.Enabled).
		Bool("metrics", m != nil).
		Msg("Console started")

	app := console.NewConsole(input, os.Stdout, cfg.Menu, reservationService, exporter, m, &logger)
	runErr := app.Start(context.Background())

	logSessionSummary(m, &logger)
	return runErr
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, err
	}
	logger := baseLogger.With().Str("component", "console-main").Logger()

	return cfg, logger, closer, nil
}

// subscribeReservationEvents keeps the metrics in step with the service events.
func subscribeReservationEvents(bus *events.EventBus, m *metrics.Metrics, logger *zerolog.Logger) {
	if bus == nil {
		return
	}

	bus.OnError(func(ev *events.Event, err error) {
		logger.Error().Err(err).Str("event", ev.Type).Msg("event bus: handler failed")
	})

	if m == nil {
		return
	}

	activeCount := func(ev *events.Event) (int, error) {
		var payload events.ReservationEventPayload
		if err := ev.Decode(&payload); err != nil {
			return 0, err
		}
		return payload.ActiveCount, nil
	}

	bus.Subscribe(events.EventReservationCreated, func(ev *events.Event) error {
		active, err := activeCount(ev)
		if err != nil {
			return err
		}
		m.ReservationCreated(active)
		return nil
	})
	bus.Subscribe(events.EventReservationDeleted, func(ev *events.Event) error {
		active, err := activeCount(ev)
		if err != nil {
			return err
		}
		m.ReservationDeleted(active)
		return nil
	})
	bus.Subscribe(events.EventReportGenerated, func(_ *events.Event) error {
		m.ReportGenerated()
		return nil
	})
}

func logSessionSummary(m *metrics.Metrics, logger *zerolog.Logger) {
	if m == nil {
		return
	}

	snapshot, err := m.Snapshot()
	if err != nil {
		logger.Warn().Err(err).Msg("gather metrics")
		return
	}

	event := logger.Info()
	for _, name := range slices.Sorted(maps.Keys(snapshot)) {
		event = event.Float64(name, snapshot[name])
	}
	event.Msg("Session summary")
}
