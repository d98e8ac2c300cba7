package check_delivery_date

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/container-storefront/internal/api/handlers"
	"github.com/m04kA/container-storefront/internal/domain"
)

const (
	msgMissingProductID = "Produkt-ID ist erforderlich"
	msgInvalidDate      = "ungültiges Datum, erwartet wird JJJJ-MM-TT"
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

// Handle GET /api/v1/products/{productId}/booked-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	productID := strings.TrimSpace(vars["productId"])
	if productID == "" {
		h.logger.Warn("GET /products/{id}/booked-dates/{date} - Missing product ID")
		handlers.RespondBadRequest(w, msgMissingProductID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /products/{id}/booked-dates/{date} - Invalid date %q: %v", vars["date"], err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booked := h.checker.IsDateBooked(date, h.checker.FetchBookedDates(r.Context(), productID))
	day := domain.BookedDateOf(date)

	handlers.RespondJSON(w, http.StatusOK, DeliveryDateStatusResponse{
		ProductID:   productID,
		Date:        day.String(),
		DisplayDate: day.DisplayString(),
		Booked:      booked,
	})
}
