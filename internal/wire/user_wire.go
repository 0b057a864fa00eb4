package wire

import (
	"staynest/internal/adaptor"
	"staynest/internal/data/repository"
	"staynest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(authenticated(repo, config, log)).Get("/api/user/profile", userHandler.GetProfile)
}
