package models

import (
	"strconv"
	"time"
)

type Reservation struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	GuestName string    `json:"guest_name"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
}

// Number returns the id the way it is shown to and typed by the user.
func (r Reservation) Number() string {
	return strconv.FormatInt(r.ID, 10)
}

func (r Reservation) Date() string {
	return r.CreatedAt.Format(DateLayout)
}

func (r Reservation) Time() string {
	return r.CreatedAt.Format(TimeLayout)
}

// ReservationDraft holds the user-supplied part of a reservation before
// an id and timestamp are assigned.
type ReservationDraft struct {
	GuestName string `json:"guest_name" validate:"required"`
	Adults    int    `json:"adults" validate:"min=1,max=2147483647"`
	Children  int    `json:"children" validate:"min=0,max=2147483647"`
}
