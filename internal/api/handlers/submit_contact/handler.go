package submit_contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	"github.com/sulfurea/SPA-BookingService/internal/service/tracking"
	submitContact "github.com/sulfurea/SPA-BookingService/internal/usecase/submit_contact"
)

const (
	msgInvalidBody = "Corpo della richiesta non valido"
	msgSuccess     = "Messaggio inviato! Ti risponderemo al più presto."
	msgSendFailed  = "Non siamo riusciti a inviare il messaggio. Riprova o scrivici direttamente via email."
)

type Handler struct {
	useCase SubmitContactUseCase
	tracker Tracker
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, tracker Tracker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		tracker: tracker,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseMessage())
	if err != nil {
		var vErr *submitContact.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /contact - Validation failed: %d field(s)", len(vErr.Fields))
			handlers.RespondValidationErrors(w, vErr.Fields)

		case errors.Is(err, submitContact.ErrSendFailed):
			h.logger.Error("POST /contact - Send failed: %v", err)
			handlers.RespondJSON(w, http.StatusBadGateway, &ContactFailureResponse{
				Error:  msgSendFailed,
				Mailto: result.MailtoLink,
			})

		default:
			h.logger.Error("POST /contact - Failed to submit: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.tracker.Track(r.Context(), tracking.EventContactSubmit, map[string]interface{}{
		"context": req.Context,
	})

	h.logger.Info("POST /contact - Message submitted: context=%s", req.Context)
	handlers.RespondJSON(w, http.StatusOK, &ContactSuccessResponse{
		Success: true,
		Message: msgSuccess,
	})
}
