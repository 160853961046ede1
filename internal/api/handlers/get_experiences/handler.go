package get_experiences

import (
	"net/http"

	"github.com/sulfurea/SPA-BookingService/internal/api/handlers"
)

type Handler struct {
	catalog ExperienceCatalog
	logger  Logger
}

func NewHandler(catalog ExperienceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experiences := h.catalog.EnabledExperiences()

	h.logger.Info("GET /experiences - %d experiences returned", len(experiences))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(experiences))
}
