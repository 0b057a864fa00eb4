package wire

import (
	"staynest/internal/adaptor"
	"staynest/internal/data/repository"
	"staynest/pkg/middleware"
	"staynest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHome(
	r chi.Router,
	homeHandler *adaptor.HomeHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/homes?page=1&per_page=10
	r.Get("/api/homes", homeHandler.GetHomes)
	r.Get("/api/homes/{id}", homeHandler.GetHomeByID)

	// ==================== HOST ROUTES ====================
	// AuthSession -> Host, ownership of a single home is checked in the service
	r.Route("/api/host/homes", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))
		r.Use(middleware.Host(log))

		r.Get("/", homeHandler.GetHostHomes)
		r.Post("/", homeHandler.CreateHome)
		r.Put("/{id}", homeHandler.UpdateHome)
		r.Delete("/{id}", homeHandler.DeleteHome)
	})
}
