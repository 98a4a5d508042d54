package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskmate/taskmate-go/internal/middleware"
	"github.com/taskmate/taskmate-go/internal/model"
	"github.com/taskmate/taskmate-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleList handles GET /api/v1/tasks requests.
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	tasks, err := h.service.List(r.Context(), userID)
	if err != nil {
		slog.Error("listing tasks failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse("error fetching tasks"))
		return
	}

	if tasks == nil {
		tasks = []model.TaskResponse{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// HandleCreate handles POST /api/v1/tasks requests.
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	var req model.TaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	task, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
			return
		}
		slog.Error("creating task failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse("error creating task"))
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

// HandleUpdate handles PUT /api/v1/tasks/{task_id} requests.
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	// Any id that matches nothing, malformed or not, is simply not found.
	taskID := chi.URLParam(r, "task_id")

	var req model.TaskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	task, err := h.service.Update(r.Context(), userID, taskID, req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, messageResponse(err.Error()))
		case errors.Is(err, service.ErrTaskNotFound):
			writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
		default:
			slog.Error("updating task failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, messageResponse("error updating task"))
		}
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// HandleDelete handles DELETE /api/v1/tasks/{task_id} requests.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	taskID := chi.URLParam(r, "task_id")

	if err := h.service.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeJSON(w, http.StatusNotFound, messageResponse(err.Error()))
			return
		}
		slog.Error("deleting task failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse("error deleting task"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Task deleted"))
}
