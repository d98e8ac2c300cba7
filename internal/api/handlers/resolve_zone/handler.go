package resolve_zone

import (
	"errors"
	"net/http"

	"github.com/m04kA/container-storefront/internal/api/handlers"
	resolveZone "github.com/m04kA/container-storefront/internal/usecase/resolve_zone"
)

const (
	msgMissingPostalCode = "Postleitzahl ist erforderlich"
	msgNoService         = "Für diese Postleitzahl bieten wir leider keinen Service an"
)

type Handler struct {
	useCase ResolveZoneUseCase
	logger  Logger
}

func NewHandler(useCase ResolveZoneUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/zones/resolve?postalCode=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	postalCode := r.URL.Query().Get("postalCode")

	result, err := h.useCase.Execute(r.Context(), &resolveZone.Request{PostalCode: postalCode})
	if err != nil {
		switch {
		case errors.Is(err, resolveZone.ErrInvalidInput):
			h.logger.Warn("GET /zones/resolve - Missing postal code")
			handlers.RespondBadRequest(w, msgMissingPostalCode)

		case errors.Is(err, resolveZone.ErrZoneNotFound):
			h.logger.Warn("GET /zones/resolve - No zone for postal code=%q", postalCode)
			handlers.RespondNotFound(w, msgNoService)

		default:
			h.logger.Error("GET /zones/resolve - Failed to resolve zone: postal_code=%q, error=%v", postalCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(postalCode, result))
}
