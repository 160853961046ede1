package select_slot

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
)

const (
	msgInvalidBody       = "Corpo della richiesta non valido"
	msgSessionNotFound   = "Sessione non trovata o scaduta"
	msgInvalidTransition = "Operazione non consentita in questo passaggio"
	msgSlotNotFound      = "Orario non trovato tra i risultati"
	msgSlotUnavailable   = "Questo orario non è disponibile"
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

// Handle POST /api/v1/wizard/{sessionId}/slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /wizard/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	state, err := h.service.SelectSlot(r.Context(), sessionID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/slot - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/slot - Invalid transition: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, wizard.ErrSlotNotFound):
			h.logger.Warn("POST /wizard/{id}/slot - Slot not found: session=%s, slot=%s", sessionID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, wizard.ErrSlotUnavailable):
			h.logger.Warn("POST /wizard/{id}/slot - Slot unavailable: session=%s, slot=%s", sessionID, req.SlotID)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /wizard/{id}/slot - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/slot - Slot selected: session=%s, slot=%s", sessionID, req.SlotID)
	handlers.RespondJSON(w, http.StatusOK, state.ToResponse())
}
