package check_wizard_availability

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/wizard"
	checkAvailability "github.com/sulfurea/SPA-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidBody        = "Corpo della richiesta non valido"
	msgSessionNotFound    = "Sessione non trovata o scaduta"
	msgInvalidTransition  = "Operazione non consentita in questo passaggio"
	msgMissingDates       = "Seleziona le date di inizio e fine"
	msgInvalidDate        = "Formato data non valido, atteso YYYY-MM-DD"
	msgInvalidDateRange   = "La data di fine non può precedere quella di inizio"
	msgDateInPast         = "Non è possibile verificare date già passate"
	msgDateTooFar         = "Le date selezionate sono troppo lontane nel tempo"
	msgExperienceNotFound = "Esperienza non trovata"
	msgProviderError      = "Non riusciamo a verificare la disponibilità in questo momento. Riprova più tardi o chiamaci."
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

// Handle POST /api/v1/wizard/{sessionId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /wizard/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	state, err := h.service.CheckAvailability(r.Context(), sessionID, req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/availability - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidTransition):
			h.logger.Warn("POST /wizard/{id}/availability - Invalid transition: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, wizard.ErrMissingDates):
			h.logger.Warn("POST /wizard/{id}/availability - Missing dates: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, wizard.ErrInvalidDate):
			h.logger.Warn("POST /wizard/{id}/availability - Invalid date: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("POST /wizard/{id}/availability - Invalid date range: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrDateInPast):
			h.logger.Warn("POST /wizard/{id}/availability - Date in past: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, checkAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("POST /wizard/{id}/availability - Date too far: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{id}/availability - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrExperienceNotFound):
			h.logger.Warn("POST /wizard/{id}/availability - Experience not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, checkAvailability.ErrProviderUnavailable):
			h.logger.Warn("POST /wizard/{id}/availability - Provider unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgProviderError)

		default:
			h.logger.Error("POST /wizard/{id}/availability - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	slots := 0
	if state.Availability != nil {
		slots = len(state.Availability.Slots)
	}
	h.logger.Info("POST /wizard/{id}/availability - Availability checked: session=%s, slots=%d", sessionID, slots)
	handlers.RespondJSON(w, http.StatusOK, state.ToResponse())
}
