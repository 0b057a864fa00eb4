package response

import (
	"time"

	"staynest/internal/data/entity"
)

type HomeResponse struct {
	ID          string    `json:"id"`
	HostID      string    `json:"hostId"`
	HouseName   string    `json:"houseName"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Rating      float64   `json:"rating"`
	Description *string   `json:"description,omitempty"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func HomeToResponse(home *entity.Home) HomeResponse {
	return HomeResponse{
		ID:          home.ID.String(),
		HostID:      home.HostID.String(),
		HouseName:   home.HouseName,
		Price:       home.Price,
		Location:    home.Location,
		Rating:      home.Rating,
		Description: home.Description,
		PhotoURL:    home.PhotoURL,
		CreatedAt:   home.CreatedAt,
	}
}

func HomesToResponse(homes []*entity.Home) []HomeResponse {
	out := make([]HomeResponse, len(homes))
	for i, home := range homes {
		out[i] = HomeToResponse(home)
	}
	return out
}
