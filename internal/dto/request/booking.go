package request

// Dates are calendar days in YYYY-MM-DD form.
type CreateBookingRequest struct {
	HomeID   string `json:"homeId" validate:"required,uuid"`
	CheckIn  string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}
