package handler

import (
	"log/slog"
	"net/http"

	"github.com/taskmate/taskmate-go/internal/middleware"
	"github.com/taskmate/taskmate-go/internal/model"
	"github.com/taskmate/taskmate-go/internal/service"
)

// ProjectHandler handles HTTP requests for project operations.
type ProjectHandler struct {
	service *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: svc}
}

// HandleList handles GET /api/v1/projects requests.
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	projects, err := h.service.List(r.Context(), userID)
	if err != nil {
		slog.Error("listing projects failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse("error fetching projects"))
		return
	}

	if projects == nil {
		projects = []model.ProjectResponse{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// HandleCreate handles POST /api/v1/projects requests.
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	var req model.ProjectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	project, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
			return
		}
		slog.Error("creating project failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse("error creating project"))
		return
	}

	writeJSON(w, http.StatusCreated, project)
}
