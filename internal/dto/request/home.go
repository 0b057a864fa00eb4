package request

type HomeRequest struct {
	HouseName   string  `json:"houseName" validate:"required,min=2,max=200"`
	Price       float64 `json:"price" validate:"gte=0,lte=9999999999.99"`
	Location    string  `json:"location" validate:"required,max=200"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	PhotoURL    *string `json:"photoUrl,omitempty" validate:"omitempty,url"`
}
