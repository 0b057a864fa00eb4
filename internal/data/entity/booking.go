package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a reservation of a home for a date range. TotalPrice is
// frozen at creation; the only status change is confirmed -> cancelled.
type Booking struct {
	BaseNoDelete
	UserID     uuid.UUID     `db:"user_id"`
	HomeID     uuid.UUID     `db:"home_id"`
	CheckIn    time.Time     `db:"check_in"`
	CheckOut   time.Time     `db:"check_out"`
	TotalPrice float64       `db:"total_price"`
	Status     BookingStatus `db:"status"`
}

func (b *Booking) OwnerID() uuid.UUID {
	return b.UserID
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// Nights is the number of whole nights between check-in and check-out.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// NightsBetween counts calendar days from checkIn to checkOut, ignoring the
// time of day. It is negative when checkOut comes first.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	// Unix seconds, not Sub: a time.Duration saturates after ~292 years
	return int((out.Unix() - in.Unix()) / 86400)
}
