package get_offers

import (
	"errors"
	"net/http"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	getOffers "github.com/sulfurea/SPA-BookingService/internal/usecase/get_offers"
)

const (
	msgProviderError = "Al momento non riusciamo a recuperare le offerte. Riprova più tardi."
)

type Handler struct {
	useCase GetOffersUseCase
	logger  Logger
}

func NewHandler(useCase GetOffersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers
// Query params: start, end (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	offers, err := h.useCase.Execute(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, getOffers.ErrProviderUnavailable):
			h.logger.Warn("GET /offers - Provider unavailable: %v", err)
			handlers.RespondBadGateway(w, msgProviderError)

		default:
			h.logger.Error("GET /offers - Failed to get offers: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offers - %d offers returned", len(offers))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(offers))
}
