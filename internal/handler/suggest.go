package handler

import (
	"net/http"
	"strings"

	"github.com/taskmate/taskmate-go/internal/middleware"
	"github.com/taskmate/taskmate-go/internal/model"
	"github.com/taskmate/taskmate-go/internal/service"
)

// SuggestHandler handles HTTP requests for AI task suggestions.
type SuggestHandler struct {
	service *service.SuggestionService
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(svc *service.SuggestionService) *SuggestHandler {
	return &SuggestHandler{service: svc}
}

// HandleSuggest handles POST /api/v1/tasks/suggest requests. The service
// itself never fails, so beyond auth and input validation the only outcome
// is a 200 with 1-5 suggestion lines.
func (h *SuggestHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	_, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, messageResponse("unauthorized"))
		return
	}

	var req model.SuggestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBodyError(w, err)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse("title and description required"))
		return
	}

	suggestions := h.service.Suggest(r.Context(), req.Title, req.Description)

	writeJSON(w, http.StatusOK, model.SuggestResponse{Suggestions: suggestions})
}
