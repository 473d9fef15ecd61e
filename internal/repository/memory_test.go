package repository

import (
	"context"
	"testing"
	"time"

	"diningres/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryReservationRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.October, 17, 20, 45, 0, 0, time.UTC)

	t.Run("CreateAssignsSequentialIDs", func(t *testing.T) {
		repo := NewMemoryReservationRepository()

		for i := 1; i <= 3; i++ {
			r, err := repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "Guest", Adults: 1}, now)
			require.NoError(t, err)
			assert.Equal(t, int64(i), r.ID)
			assert.Equal(t, now, r.CreatedAt)
		}

		active, _ := repo.GetActiveReservations(ctx)
		all, _ := repo.GetAllReservations(ctx)
		assert.Len(t, active, 3)
		assert.Equal(t, active, all)
	})

	t.Run("IDsNotReusedAfterDelete", func(t *testing.T) {
		repo := NewMemoryReservationRepository()
		_, _ = repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "A", Adults: 1}, now)
		_, _ = repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "B", Adults: 1}, now)

		_, err := repo.DeleteReservation(ctx, "2")
		require.NoError(t, err)

		r, err := repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "C", Adults: 1}, now)
		require.NoError(t, err)
		assert.Equal(t, int64(3), r.ID)
	})

	t.Run("DeleteKeepsHistory", func(t *testing.T) {
		repo := NewMemoryReservationRepository()
		_, _ = repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "Alice", Adults: 2, Children: 1}, now)
		_, _ = repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "Bob", Adults: 1}, now)

		deleted, err := repo.DeleteReservation(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", deleted.GuestName)

		active, _ := repo.GetActiveReservations(ctx)
		all, _ := repo.GetAllReservations(ctx)
		require.Len(t, active, 1)
		assert.Equal(t, int64(2), active[0].ID)
		require.Len(t, all, 2)
		assert.Equal(t, int64(1), all[0].ID)

		count, _ := repo.CountActive(ctx)
		assert.Equal(t, 1, count)
	})

	t.Run("DeleteUnknown", func(t *testing.T) {
		repo := NewMemoryReservationRepository()
		_, err := repo.DeleteReservation(ctx, "1")
		assert.ErrorIs(t, err, ErrNotFound)

		_, _ = repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "Alice", Adults: 1}, now)
		for _, input := range []string{"2", "01", "abc", " 1"} {
			_, err := repo.DeleteReservation(ctx, input)
			assert.ErrorIs(t, err, ErrNotFound, input)
		}

		active, _ := repo.GetActiveReservations(ctx)
		all, _ := repo.GetAllReservations(ctx)
		assert.Len(t, active, 1)
		assert.Len(t, all, 1)
	})

	t.Run("ReturnedSlicesAreCopies", func(t *testing.T) {
		repo := NewMemoryReservationRepository()
		_, _ = repo.CreateReservation(ctx, models.ReservationDraft{GuestName: "Alice", Adults: 1}, now)

		active, _ := repo.GetActiveReservations(ctx)
		active[0].GuestName = "Mallory"

		all, _ := repo.GetAllReservations(ctx)
		all[0].Adults = 99

		again, _ := repo.GetActiveReservations(ctx)
		history, _ := repo.GetAllReservations(ctx)
		assert.Equal(t, "Alice", again[0].GuestName)
		assert.Equal(t, 1, history[0].Adults)
	})
}
