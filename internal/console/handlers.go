package console

import (
	"context"
	"errors"

	"diningres/internal/metrics"
	"diningres/internal/models"
	"diningres/internal/repository"
	"diningres/internal/service"
)

func (c *Console) viewReservations(ctx context.Context) error {
	reservations, err := c.service.GetActiveReservations(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error getting active reservations")
		c.println("\n" + messageFor(err) + "\n")
		return nil
	}

	if len(reservations) == 0 {
		c.println("\nNo active reservations found.\n")
		return nil
	}

	writeReservationTable(c.out, reservations)
	return nil
}

func (c *Console) makeReservation(ctx context.Context) error {
	c.println("\n=== MAKE A RESERVATION ===")

	name, err := c.promptText("Enter Name: ")
	if err != nil {
		return err
	}

	adults, err := c.promptInt("Enter number of adults (min 1): ", models.MinAdults)
	if err != nil {
		return err
	}

	children, err := c.promptInt("Enter number of children (min 0): ", models.MinChildren)
	if err != nil {
		return err
	}

	draft := models.ReservationDraft{GuestName: name, Adults: adults, Children: children}
	if _, err := c.service.CreateReservation(ctx, draft); err != nil {
		c.logger.Error().Err(err).Msg("Error creating reservation")
		c.println("\n" + messageFor(err) + "\n")
		return nil
	}

	c.println("\nReservation successfully added!\n")
	return nil
}

func (c *Console) deleteReservation(ctx context.Context) error {
	reservations, err := c.service.GetActiveReservations(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error getting active reservations")
		c.println("\n" + messageFor(err) + "\n")
		return nil
	}

	if len(reservations) == 0 {
		c.println("\nNo reservations to delete.\n")
		return nil
	}

	writeReservationTable(c.out, reservations)

	number, err := c.promptText("Enter reservation number to delete: ")
	if err != nil {
		return err
	}

	if _, err := c.service.DeleteReservation(ctx, number); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.metrics.IncInvalidInput(metrics.InputUnknownNumber)
		} else {
			c.logger.Error().Err(err).Str("number", number).Msg("Error deleting reservation")
		}
		c.println("\n" + messageFor(err) + "\n")
		return nil
	}

	c.printf("\nReservation %s deleted.\n\n", number)
	return nil
}

func (c *Console) generateReport(ctx context.Context) error {
	report, err := c.service.GenerateReport(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNothingToReport) {
			c.logger.Error().Err(err).Msg("Error generating report")
		}
		c.println("\n" + messageFor(err) + "\n")
		return nil
	}

	writeReport(c.out, report)

	if c.exporter == nil {
		return nil
	}

	path, err := c.exporter.ExportReport(ctx, report, c.now())
	if err != nil {
		c.logger.Error().Err(err).Msg("Error exporting report")
		c.println("Report export failed.\n")
		return nil
	}

	c.metrics.ReportExported()
	c.printf("Report exported to %s\n\n", path)
	return nil
}
