package create_hold

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	createHold "github.com/sulfurea/SPA-BookingService/internal/usecase/create_hold"
)

const (
	msgInvalidBody        = "Corpo della richiesta non valido"
	msgInvalidInput       = "Dati della richiesta non validi"
	msgExperienceNotFound = "Esperienza non trovata"
	msgProviderError      = "Non riusciamo a riservare lo slot in questo momento. Riprova più tardi o chiamaci."
)

type Handler struct {
	useCase CreateHoldUseCase
	logger  Logger
}

func NewHandler(useCase CreateHoldUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hold
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /hold - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	hold, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrInvalidInput):
			h.logger.Warn("POST /hold - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createHold.ErrExperienceNotFound):
			h.logger.Warn("POST /hold - Experience not found: type=%s", req.ExperienceType)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, createHold.ErrProviderUnavailable):
			h.logger.Warn("POST /hold - Provider unavailable: %v", err)
			handlers.RespondBadGateway(w, msgProviderError)

		default:
			h.logger.Error("POST /hold - Failed to create hold: slot=%s, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hold - Hold created: hold_id=%s, slot=%s", hold.HoldID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainHold(hold))
}
