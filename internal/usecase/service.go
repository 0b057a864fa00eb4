package usecase

import (
	"staynest/internal/data/repository"
	"staynest/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Home      HomeService
	Booking   BookingService
	Favourite FavouriteService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo.User, repo.Session, config.Session, log),
		User:      NewUserService(repo.User, log),
		Home:      NewHomeService(repo.Home, repo.User, log),
		Booking:   NewBookingService(repo.Booking, repo.Home, log),
		Favourite: NewFavouriteService(repo.User, repo.Home, log),
	}
}
