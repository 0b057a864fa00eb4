package adaptor

import (
	"staynest/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Home      *HomeHandler
	Booking   *BookingHandler
	Favourite *FavouriteHandler
}

func NewHandler(service *usecase.Service, sessionCookie string, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, sessionCookie, log),
		User:      NewUserHandler(service.User, log),
		Home:      NewHomeHandler(service.Home, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Favourite: NewFavouriteHandler(service.Favourite, log),
	}
}
