package list_zones

import (
	"net/http"

	"github.com/m04kA/container-storefront/internal/api/handlers"
)

type Handler struct {
	service ZoneService
	logger  Logger
}

func NewHandler(service ZoneService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/zones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zones := h.service.Zones()
	h.logger.Info("GET /api/v1/zones - Zones listed: count=%d", len(zones))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(zones))
}
