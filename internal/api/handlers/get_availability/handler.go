package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
	checkAvailability "github.com/sulfurea/SPA-BookingService/internal/usecase/check_availability"
)

const (
	msgMissingDates       = "Seleziona le date di inizio e fine"
	msgInvalidDate        = "Formato data non valido, atteso YYYY-MM-DD"
	msgInvalidGuests      = "Numero di ospiti non valido"
	msgInvalidDateRange   = "La data di fine non può precedere quella di inizio"
	msgDateInPast         = "Non è possibile verificare date già passate"
	msgDateTooFar         = "Le date selezionate sono troppo lontane nel tempo"
	msgExperienceNotFound = "Esperienza non trovata"
	msgProviderError      = "Non riusciamo a verificare la disponibilità in questo momento. Riprova più tardi o chiamaci."
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: start (required), end (required), guests (required), type (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startStr := query.Get("start")
	endStr := query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability - Missing dates: start=%q, end=%q", startStr, endStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	guests, err := strconv.Atoi(query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid guests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	useCaseReq, err := ToUseCaseRequest(startStr, endStr, guests, query.Get("type"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid date range: start=%s, end=%s", startStr, endStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, checkAvailability.ErrDateInPast):
			h.logger.Warn("GET /availability - Date in past: start=%s", startStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, checkAvailability.ErrDateTooFarInFuture):
			h.logger.Warn("GET /availability - Date too far: end=%s", endStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, checkAvailability.ErrExperienceNotFound):
			h.logger.Warn("GET /availability - Experience not found: type=%s", query.Get("type"))
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, checkAvailability.ErrProviderUnavailable):
			h.logger.Warn("GET /availability - Provider unavailable: %v", err)
			handlers.RespondBadGateway(w, msgProviderError)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d slots returned: start=%s, end=%s, guests=%d",
		len(result.Result.Slots), startStr, endStr, guests)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
