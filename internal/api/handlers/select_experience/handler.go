package select_experience

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

const (
	msgInvalidBody        = "Corpo della richiesta non valido"
	msgSessionNotFound    = "Sessione non trovata o scaduta"
	msgExperienceNotFound = "Esperienza non trovata"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/experience
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /wizard/{id}/experience - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	state, err := h.service.SelectExperience(r.Context(), sessionID, req.Slug)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/experience - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrExperienceNotFound):
			h.logger.Warn("POST /wizard/{id}/experience - Experience not found: slug=%s", req.Slug)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		default:
			h.logger.Error("POST /wizard/{id}/experience - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/experience - Experience selected: session=%s, slug=%s", sessionID, req.Slug)
	handlers.RespondJSON(w, http.StatusOK, state.ToResponse())
}
