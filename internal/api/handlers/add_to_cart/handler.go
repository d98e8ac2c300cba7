package add_to_cart

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/container-storefront/internal/api/handlers"
	addToCart "github.com/m04kA/container-storefront/internal/usecase/add_to_cart"
)

const (
	msgInvalidRequestBody = "ungültiger Anfrageinhalt"
	msgInvalidDate        = "ungültiges Lieferdatum, erwartet wird JJJJ-MM-TT"
	msgInvalidInput       = "Bitte füllen Sie alle Pflichtfelder aus"
	msgDateInPast         = "Das Lieferdatum liegt in der Vergangenheit"
	msgDateBooked         = "Dieses Datum ist bereits gebucht. Bitte wählen Sie ein anderes Datum."
	msgProductNotFound    = "Produkt nicht gefunden"
	msgVariantNotFound    = "Produktvariante nicht gefunden"
	msgCartNotFound       = "Warenkorb nicht gefunden"
)

type Handler struct {
	useCase AddToCartUseCase
	logger  Logger
}

func NewHandler(useCase AddToCartUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/carts/{cartId}/line-items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cartID := mux.Vars(r)["cartId"]

	var req AddToCartRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /carts/{id}/line-items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(cartID)
	if err != nil {
		h.logger.Warn("POST /carts/{id}/line-items - Invalid delivery date %q: %v", req.DeliveryDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, addToCart.ErrDateBooked):
			h.logger.Warn("POST /carts/{id}/line-items - Date booked: cart_id=%s, product_id=%s, date=%s",
				cartID, req.ProductID, req.DeliveryDate)
			handlers.RespondConflict(w, msgDateBooked)

		case errors.Is(err, addToCart.ErrDateInPast):
			h.logger.Warn("POST /carts/{id}/line-items - Date in past: cart_id=%s, date=%s", cartID, req.DeliveryDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, addToCart.ErrInvalidInput):
			h.logger.Warn("POST /carts/{id}/line-items - Invalid input: cart_id=%s, error=%v", cartID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, addToCart.ErrProductNotFound):
			h.logger.Warn("POST /carts/{id}/line-items - Product not found: product_id=%s", req.ProductID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, addToCart.ErrVariantNotFound):
			h.logger.Warn("POST /carts/{id}/line-items - Variant not found: product_id=%s, variant_id=%s",
				req.ProductID, req.VariantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, addToCart.ErrCartNotFound):
			h.logger.Warn("POST /carts/{id}/line-items - Cart not found: cart_id=%s", cartID)
			handlers.RespondNotFound(w, msgCartNotFound)

		default:
			h.logger.Error("POST /carts/{id}/line-items - Failed to add to cart: cart_id=%s, product_id=%s, error=%v",
				cartID, req.ProductID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /carts/{id}/line-items - Added: cart_id=%s, variant_id=%s, date=%s",
		result.CartID, result.VariantID, result.DeliveryDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
