package response

import (
	"time"

	"staynest/internal/data/entity"
)

const DateLayout = "2006-01-02"

// BookingResponse keeps the field names of the stored booking record
// (user, home, checkIn, checkOut, totalPrice, status).
type BookingResponse struct {
	ID          string               `json:"id"`
	User        string               `json:"user"`
	Home        string               `json:"home"`
	CheckIn     string               `json:"checkIn"`
	CheckOut    string               `json:"checkOut"`
	Nights      int                  `json:"nights"`
	TotalPrice  float64              `json:"totalPrice"`
	Status      entity.BookingStatus `json:"status"`
	HomeDetails *HomeResponse        `json:"homeDetails,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// BookingToResponse converts a booking; home may be nil when the listing
// has been removed since the booking was made.
func BookingToResponse(booking *entity.Booking, home *entity.Home) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		User:       booking.UserID.String(),
		Home:       booking.HomeID.String(),
		CheckIn:    booking.CheckIn.Format(DateLayout),
		CheckOut:   booking.CheckOut.Format(DateLayout),
		Nights:     booking.Nights(),
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}

	if home != nil {
		homeResp := HomeToResponse(home)
		resp.HomeDetails = &homeResp
	}

	return resp
}
