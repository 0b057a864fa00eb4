package wire

import (
	"staynest/internal/adaptor"
	"staynest/internal/data/repository"
	"staynest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFavourite(
	r chi.Router,
	favouriteHandler *adaptor.FavouriteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/favourites", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		r.Get("/", favouriteHandler.GetFavourites)
		r.Post("/", favouriteHandler.AddFavourite)
		r.Delete("/{homeId}", favouriteHandler.RemoveFavourite)
	})
}
