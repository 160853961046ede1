package start_wizard

import (
	"net/http"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
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

// Handle POST /api/v1/wizard
// Query params: esperienza (опционально) - slug для deep link предвыбора
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	preselect := r.URL.Query().Get("esperienza")

	state, err := h.service.Start(r.Context(), preselect)
	if err != nil {
		h.logger.Error("POST /wizard - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard - Session started: session=%s, preselect=%q", state.ID, preselect)
	handlers.RespondJSON(w, http.StatusCreated, state.ToResponse())
}
