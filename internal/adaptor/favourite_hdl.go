package adaptor

import (
	"encoding/json"
	"net/http"

	"staynest/internal/dto/request"
	"staynest/internal/usecase"
	"staynest/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FavouriteHandler struct {
	service usecase.FavouriteService
	log     *zap.Logger
}

func NewFavouriteHandler(service usecase.FavouriteService, log *zap.Logger) *FavouriteHandler {
	return &FavouriteHandler{
		service: service,
		log:     log.With(zap.String("handler", "favourite")),
	}
}

// GetFavourites handles GET /api/favourites
func (h *FavouriteHandler) GetFavourites(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	homes, err := h.service.ListFavourites(r.Context(), userID.String())
	if err != nil {
		writeServiceError(w, h.log, err, "get favourites")
		return
	}

	utils.ResponseSuccess(w, "success", homes)
}

// AddFavourite handles POST /api/favourites
func (h *FavouriteHandler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddFavouriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.AddFavourite(r.Context(), userID.String(), &req); err != nil {
		writeServiceError(w, h.log, err, "add favourite")
		return
	}

	utils.ResponseSuccess(w, "Added to favourites", nil)
}

// RemoveFavourite handles DELETE /api/favourites/{homeId}
func (h *FavouriteHandler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.RemoveFavourite(r.Context(), userID.String(), chi.URLParam(r, "homeId")); err != nil {
		writeServiceError(w, h.log, err, "remove favourite")
		return
	}

	utils.ResponseSuccess(w, "Removed from favourites", nil)
}
