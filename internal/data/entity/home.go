package entity

import "github.com/google/uuid"

// Home is a bookable listing owned by a host.
type Home struct {
	BaseNoDelete
	HostID      uuid.UUID `db:"host_id"`
	HouseName   string    `db:"house_name"`
	Price       float64   `db:"price"` // per night
	Location    string    `db:"location"`
	Rating      float64   `db:"rating"`
	Description *string   `db:"description"`
	PhotoURL    *string   `db:"photo_url"`
}

func (h *Home) OwnerID() uuid.UUID {
	return h.HostID
}
