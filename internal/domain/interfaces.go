package domain

import (
	"context"
	"time"

	"diningres/internal/models"
)

type Repository interface {
	CreateReservation(ctx context.Context, draft models.ReservationDraft, createdAt time.Time) (*models.Reservation, error)
	GetActiveReservations(ctx context.Context) ([]models.Reservation, error)
	GetAllReservations(ctx context.Context) ([]models.Reservation, error)
	CountActive(ctx context.Context) (int, error)
	DeleteReservation(ctx context.Context, number string) (*models.Reservation, error)
}

type EventPublisher interface {
	PublishJSON(eventType string, payload interface{}) error
}

type ReportExporter interface {
	ExportReport(ctx context.Context, report models.Report, generatedAt time.Time) (string, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)
	GetActiveReservations(ctx context.Context) ([]models.Reservation, error)
	DeleteReservation(ctx context.Context, number string) (*models.Reservation, error)
	GenerateReport(ctx context.Context) (models.Report, error)
}
