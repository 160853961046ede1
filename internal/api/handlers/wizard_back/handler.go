package wizard_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

const (
	msgSessionNotFound   = "Sessione non trovata o scaduta"
	msgInvalidTransition = "Sei già al primo passaggio"
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

// Handle POST /api/v1/wizard/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.service.Back(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/back - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/back - Already at first step: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /wizard/{id}/back - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/back - Step changed: session=%s, step=%s", sessionID, state.Step)
	handlers.RespondJSON(w, http.StatusOK, state.ToResponse())
}
