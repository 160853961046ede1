package get_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

const (
	msgSessionNotFound = "Sessione non trovata o scaduta"
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

// Handle GET /api/v1/wizard/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	state, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /wizard/{id} - Failed to get session: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state.ToResponse())
}
