package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"diningres/internal/config"
	"diningres/internal/domain"
	"diningres/internal/metrics"

	"github.com/rs/zerolog"
)

const (
	commandView    = "view"
	commandMake    = "make"
	commandDelete  = "delete"
	commandReport  = "report"
	commandExit    = "exit"
	commandInvalid = "invalid"
)

// Console runs the interactive reservation menu over a line-oriented text stream.
type Console struct {
	in       *bufio.Scanner
	out      io.Writer
	menu     config.MenuConfig
	service  domain.ReservationService
	exporter domain.ReportExporter
	metrics  *metrics.Metrics
	now      func() time.Time
	logger   *zerolog.Logger
}

// NewConsole wires the menu to a service. exporter and m may be nil.
func NewConsole(
	in io.Reader,
	out io.Writer,
	menu config.MenuConfig,
	service domain.ReservationService,
	exporter domain.ReportExporter,
	m *metrics.Metrics,
	logger *zerolog.Logger,
) *Console {
	if logger == nil {
		l := zerolog.Nop()
		logger = &l
	}
	l := logger.With().Str("component", "console").Logger()

	return &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		menu:     normalizeMenu(menu),
		service:  service,
		exporter: exporter,
		metrics:  m,
		now:      time.Now,
		logger:   &l,
	}
}

func normalizeMenu(menu config.MenuConfig) config.MenuConfig {
	key := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return config.MenuConfig{
		View:   key(menu.View),
		Make:   key(menu.Make),
		Delete: key(menu.Delete),
		Report: key(menu.Report),
		Exit:   key(menu.Exit),
	}
}

// Start blocks reading commands until the exit command or end of input.
// Only a failing input stream is reported as an error.
func (c *Console) Start(ctx context.Context) error {
	for {
		c.printMenu()

		line, err := c.readLine()
		if err != nil {
			return c.finish(err)
		}

		if err := c.dispatch(ctx, strings.ToLower(strings.TrimSpace(line))); err != nil {
			return c.finish(err)
		}
	}
}

// errExit ends the loop after the farewell message.
var errExit = errors.New("exit requested")

func (c *Console) finish(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		c.println("\nThank you!")
		c.logger.Info().Bool("eof", errors.Is(err, io.EOF)).Msg("console stopped")
		return nil
	}
	c.logger.Error().Err(err).Msg("console input failed")
	return err
}

func (c *Console) dispatch(ctx context.Context, choice string) error {
	command := c.commandFor(choice)
	c.metrics.IncCommand(command)
	c.logger.Debug().Str("command", command).Str("input", choice).Msg("Handling command")

	switch command {
	case commandView:
		return c.withRecovery(ctx, command, c.viewReservations)
	case commandMake:
		return c.withRecovery(ctx, command, c.makeReservation)
	case commandDelete:
		return c.withRecovery(ctx, command, c.deleteReservation)
	case commandReport:
		return c.withRecovery(ctx, command, c.generateReport)
	case commandExit:
		return errExit
	default:
		c.metrics.IncInvalidInput(metrics.InputUnknownCommand)
		c.println("\nInvalid choice. Please try again.\n")
		return nil
	}
}

func (c *Console) commandFor(choice string) string {
	switch choice {
	case c.menu.View:
		return commandView
	case c.menu.Make:
		return commandMake
	case c.menu.Delete:
		return commandDelete
	case c.menu.Report:
		return commandReport
	case c.menu.Exit:
		return commandExit
	default:
		return commandInvalid
	}
}

func (c *Console) printMenu() {
	c.println("\n=== RESTAURANT DINING RESERVATION SYSTEM ===")
	c.printf("%s. View All Reservations\n", c.menu.View)
	c.printf("%s. Make A Reservation\n", c.menu.Make)
	c.printf("%s. Delete A Reservation\n", c.menu.Delete)
	c.printf("%s. Generate Reservation Report\n", c.menu.Report)
	c.printf("%s. Exit\n", c.menu.Exit)
	c.print("> ")
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(s string) {
	_, _ = io.WriteString(c.out, s+"\n")
}

func (c *Console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
