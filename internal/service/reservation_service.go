package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"diningres/internal/domain"
	"diningres/internal/events"
	"diningres/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidReservation = errors.New("invalid reservation")
	ErrNothingToReport    = errors.New("no reservations to report")
)

type ReservationService struct {
	repo     domain.Repository
	eventBus domain.EventPublisher
	validate *validator.Validate
	pricing  models.Pricing
	now      func() time.Time
	logger   *zerolog.Logger
}

func NewReservationService(repo domain.Repository, eventBus domain.EventPublisher, pricing models.Pricing, logger *zerolog.Logger) *ReservationService {
	if logger == nil {
		l := zerolog.Nop()
		logger = &l
	}
	return &ReservationService{
		repo:     repo,
		eventBus: eventBus,
		validate: validator.New(),
		pricing:  pricing,
		now:      time.Now,
		logger:   logger,
	}
}

// SetClock replaces the time source used to stamp new reservations.
func (s *ReservationService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *ReservationService) CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	draft.GuestName = strings.TrimSpace(draft.GuestName)
	if err := s.validate.StructCtx(ctx, draft); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReservation, err)
	}

	reservation, err := s.repo.CreateReservation(ctx, draft, s.now())
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info().
		Int64("reservation_id", reservation.ID).
		Int("adults", reservation.Adults).
		Int("children", reservation.Children).
		Msg("reservation created")

	s.publishEvent(ctx, events.EventReservationCreated, *reservation)
	return reservation, nil
}

func (s *ReservationService) GetActiveReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.repo.GetActiveReservations(ctx)
}

// DeleteReservation removes the active reservation whose number matches the
// input text exactly. Non-numeric input simply does not match.
func (s *ReservationService) DeleteReservation(ctx context.Context, number string) (*models.Reservation, error) {
	reservation, err := s.repo.DeleteReservation(ctx, number)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("reservation_id", reservation.ID).Msg("reservation deleted")
	s.publishEvent(ctx, events.EventReservationDeleted, *reservation)
	return reservation, nil
}

// GenerateReport prices the full history, including deleted reservations.
func (s *ReservationService) GenerateReport(ctx context.Context) (models.Report, error) {
	all, err := s.repo.GetAllReservations(ctx)
	if err != nil {
		return models.Report{}, fmt.Errorf("load reservations: %w", err)
	}
	if len(all) == 0 {
		return models.Report{}, ErrNothingToReport
	}

	report, err := models.BuildReport(all, s.pricing)
	if err != nil {
		return models.Report{}, fmt.Errorf("price reservations: %w", err)
	}

	s.logger.Info().
		Int("rows", len(report.Rows)).
		Int64("grand_total", report.GrandTotal).
		Msg("report generated")

	if s.eventBus != nil {
		payload := events.ReportEventPayload{
			Rows:       len(report.Rows),
			GrandTotal: report.GrandTotal,
			Currency:   report.Currency,
		}
		if err := s.eventBus.PublishJSON(events.EventReportGenerated, payload); err != nil {
			s.logger.Error().Err(err).Str("event_type", events.EventReportGenerated).Msg("publish event error")
		}
	}

	return report, nil
}

func (s *ReservationService) publishEvent(ctx context.Context, eventType string, reservation models.Reservation) {
	if s.eventBus == nil {
		return
	}

	active, err := s.repo.CountActive(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("count active reservations")
	}

	payload := events.ReservationEventPayload{
		ReservationID: reservation.ID,
		GuestName:     reservation.GuestName,
		Adults:        reservation.Adults,
		Children:      reservation.Children,
		CreatedAt:     reservation.CreatedAt,
		ActiveCount:   active,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("reservation_id", reservation.ID).Msg("publish event error")
	}
}
