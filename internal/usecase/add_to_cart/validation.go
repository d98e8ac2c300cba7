package add_to_cart

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
)

// validateRequest валидирует входные данные и нормализует строки
func validateRequest(req *Request) error {
	req.CartID = strings.TrimSpace(req.CartID)
	req.ProductID = strings.TrimSpace(req.ProductID)
	req.VariantID = strings.TrimSpace(req.VariantID)
	req.InstallationLocation = strings.TrimSpace(req.InstallationLocation)
	req.ContactName = strings.TrimSpace(req.ContactName)
	req.ContactPhone = strings.TrimSpace(req.ContactPhone)

	if req.CartID == "" {
		return fmt.Errorf("%w: cartId is required", ErrInvalidInput)
	}
	if req.ProductID == "" {
		return fmt.Errorf("%w: productId is required", ErrInvalidInput)
	}
	if req.DeliveryDate.IsZero() {
		return fmt.Errorf("%w: deliveryDate is required", ErrInvalidInput)
	}

	if req.Quantity == 0 {
		req.Quantity = domain.DefaultQuantity
	}
	if req.Quantity < 1 || req.Quantity > domain.MaxQuantity {
		return fmt.Errorf("%w: quantity must be in 1..%d", ErrInvalidInput, domain.MaxQuantity)
	}

	if req.InstallationLocation == "" {
		return fmt.Errorf("%w: installationLocation is required", ErrInvalidInput)
	}
	if len(req.InstallationLocation) > domain.MaxLocationLength {
		return fmt.Errorf("%w: installationLocation is too long", ErrInvalidInput)
	}
	if req.ContactName == "" {
		return fmt.Errorf("%w: contactName is required", ErrInvalidInput)
	}
	if len(req.ContactName) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contactName is too long", ErrInvalidInput)
	}
	if req.ContactPhone == "" {
		return fmt.Errorf("%w: contactPhone is required", ErrInvalidInput)
	}
	if len(req.ContactPhone) > domain.MaxContactPhoneLength {
		return fmt.Errorf("%w: contactPhone is too long", ErrInvalidInput)
	}

	return nil
}

// isDateInPast сравнивает календарные даты, время суток не учитывается
func isDateInPast(date, now time.Time) bool {
	y, m, d := date.Date()
	ny, nm, nd := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Before(time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC))
}

// selectVariant выбирает вариант товара: указанный или первый
func selectVariant(product *domain.Product, variantID string) (string, error) {
	if variantID == "" {
		id, ok := product.FirstVariantID()
		if !ok {
			return "", ErrVariantNotFound
		}
		return id, nil
	}

	for _, v := range product.Variants {
		if v.ID == variantID {
			return v.ID, nil
		}
	}
	return "", fmt.Errorf("%w: variant %s does not belong to product %s", ErrVariantNotFound, variantID, product.ID)
}

// buildMetadata собирает данные доставки для позиции корзины
func buildMetadata(req *Request, deliveryDate string) map[string]interface{} {
	return map[string]interface{}{
		domain.MetadataDeliveryDate:         deliveryDate,
		domain.MetadataInstallationLocation: req.InstallationLocation,
		domain.MetadataContainerExchange:    req.ContainerExchange,
		domain.MetadataContactName:          req.ContactName,
		domain.MetadataContactPhone:         req.ContactPhone,
	}
}
