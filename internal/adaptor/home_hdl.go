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

type HomeHandler struct {
	service usecase.HomeService
	log     *zap.Logger
}

func NewHomeHandler(service usecase.HomeService, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		service: service,
		log:     log.With(zap.String("handler", "home")),
	}
}

// GetHomes handles GET /api/homes?page=1&per_page=10
func (h *HomeHandler) GetHomes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	)

	homes, err := h.service.GetHomes(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get homes")
		return
	}

	utils.ResponseSuccess(w, "success", homes)
}

// GetHomeByID handles GET /api/homes/{id}
func (h *HomeHandler) GetHomeByID(w http.ResponseWriter, r *http.Request) {
	home, err := h.service.GetHomeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get home")
		return
	}

	utils.ResponseSuccess(w, "success", home)
}

// GetHostHomes handles GET /api/host/homes (host only)
func (h *HomeHandler) GetHostHomes(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	homes, err := h.service.GetHostHomes(r.Context(), hostID.String())
	if err != nil {
		writeServiceError(w, h.log, err, "get host homes")
		return
	}

	utils.ResponseSuccess(w, "success", homes)
}

// CreateHome handles POST /api/host/homes (host only)
func (h *HomeHandler) CreateHome(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.HomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	home, err := h.service.CreateHome(r.Context(), hostID.String(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create home")
		return
	}

	utils.ResponseCreated(w, "Home created successfully", home)
}

// UpdateHome handles PUT /api/host/homes/{id} (owning host only)
func (h *HomeHandler) UpdateHome(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.HomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	home, err := h.service.UpdateHome(r.Context(), chi.URLParam(r, "id"), hostID.String(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update home")
		return
	}

	utils.ResponseSuccess(w, "Home updated successfully", home)
}

// DeleteHome handles DELETE /api/host/homes/{id} (owning host only)
func (h *HomeHandler) DeleteHome(w http.ResponseWriter, r *http.Request) {
	hostID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteHome(r.Context(), chi.URLParam(r, "id"), hostID.String()); err != nil {
		writeServiceError(w, h.log, err, "delete home")
		return
	}

	utils.ResponseSuccess(w, "Home deleted successfully", nil)
}
