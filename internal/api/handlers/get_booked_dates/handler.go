package get_booked_dates

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/container-storefront/internal/api/handlers"
)

const (
	msgMissingProductID = "Produkt-ID ist erforderlich"
)

type Handler struct {
	checker AvailabilityChecker
	logger  Logger
}

func NewHandler(checker AvailabilityChecker, logger Logger) *Handler {
	return &Handler{
		checker: checker,
		logger:  logger,
	}
}

// Handle GET /api/v1/products/{productId}/booked-dates
// Ошибка бэкенда не видна клиенту: отдаётся пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(mux.Vars(r)["productId"])
	if productID == "" {
		h.logger.Warn("GET /products/{id}/booked-dates - Missing product ID")
		handlers.RespondBadRequest(w, msgMissingProductID)
		return
	}

	dates := h.checker.FetchBookedDates(r.Context(), productID)

	handlers.RespondJSON(w, http.StatusOK, BookedDatesResponse{
		ProductID:   productID,
		BookedDates: dates,
	})
}
