package confirm_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

const (
	msgSessionNotFound = "Sessione non trovata o scaduta"
	msgNoSlotSelected  = "Seleziona un orario prima di confermare"
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

// Handle POST /api/v1/wizard/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/confirm - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrNoSlotSelected):
			h.logger.Warn("POST /wizard/{id}/confirm - No slot selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		default:
			h.logger.Error("POST /wizard/{id}/confirm - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/confirm - Booking request confirmed: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromConfirmResult(result))
}
