package console

import (
	"errors"

	"diningres/internal/models"
	"diningres/internal/repository"
	"diningres/internal/service"
)

func messageFor(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, repository.ErrNotFound) {
		return "Reservation not found."
	}

	if errors.Is(err, service.ErrNothingToReport) {
		return "No reservations to report."
	}

	if errors.Is(err, models.ErrAmountOverflow) {
		return "Report totals are too large to compute."
	}

	if errors.Is(err, service.ErrInvalidReservation) {
		return "Reservation details are invalid. Please try again."
	}

	return "Something went wrong. Please try again."
}
