package request

type AddFavouriteRequest struct {
	HomeID string `json:"homeId" validate:"required,uuid"`
}
