package repository

import (
	"context"
	"errors"
	"slices"
	"time"

	"diningres/internal/models"
)

var ErrNotFound = errors.New("reservation not found")

// MemoryReservationRepository keeps the active reservations, the append-only
// history and the id counter for a single run. It is not safe for concurrent use.
type MemoryReservationRepository struct {
	active []models.Reservation
	all    []models.Reservation
	nextID int64
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{nextID: 1}
}

// CreateReservation assigns the next id and appends the reservation to both
// collections. Ids are never reused, even after deletions.
func (r *MemoryReservationRepository) CreateReservation(ctx context.Context, draft models.ReservationDraft, createdAt time.Time) (*models.Reservation, error) {
	reservation := models.Reservation{
		ID:        r.nextID,
		CreatedAt: createdAt,
		GuestName: draft.GuestName,
		Adults:    draft.Adults,
		Children:  draft.Children,
	}
	r.nextID++

	r.active = append(r.active, reservation)
	r.all = append(r.all, reservation)

	return &reservation, nil
}

func (r *MemoryReservationRepository) GetActiveReservations(ctx context.Context) ([]models.Reservation, error) {
	return append([]models.Reservation(nil), r.active...), nil
}

func (r *MemoryReservationRepository) GetAllReservations(ctx context.Context) ([]models.Reservation, error) {
	return append([]models.Reservation(nil), r.all...), nil
}

func (r *MemoryReservationRepository) CountActive(ctx context.Context) (int, error) {
	return len(r.active), nil
}

// DeleteReservation removes the first active reservation whose displayed
// number equals the given text. History is left untouched.
func (r *MemoryReservationRepository) DeleteReservation(ctx context.Context, number string) (*models.Reservation, error) {
	for i, reservation := range r.active {
		if reservation.Number() != number {
			continue
		}
		r.active = slices.Delete(r.active, i, i+1)
		return &reservation, nil
	}
	return nil, ErrNotFound
}
