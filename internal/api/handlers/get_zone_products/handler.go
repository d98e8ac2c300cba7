package get_zone_products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/container-storefront/internal/api/handlers"
	getZoneProducts "github.com/m04kA/container-storefront/internal/usecase/get_zone_products"
)

const (
	msgInvalidLimit  = "ungültiger Parameter limit"
	msgInvalidOffset = "ungültiger Parameter offset"
	msgInvalidQuery  = "ungültige Anfrageparameter"
)

type Handler struct {
	useCase GetZoneProductsUseCase
	logger  Logger
}

func NewHandler(useCase GetZoneProductsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/zones/{zoneId}/products
// Query params: wasteType (optional), limit (optional), offset (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	zoneTag := mux.Vars(r)["zoneId"]
	query := r.URL.Query()

	req := &getZoneProducts.Request{
		ZoneTag:   zoneTag,
		WasteType: query.Get("wasteType"),
	}

	if s := query.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /zones/{id}/products - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	if s := query.Get("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /zones/{id}/products - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		req.Offset = offset
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getZoneProducts.ErrInvalidInput):
			h.logger.Warn("GET /zones/{id}/products - Invalid request: zone=%s, error=%v", zoneTag, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /zones/{id}/products - Failed to list products: zone=%s, error=%v", zoneTag, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
