package get_zone_products

import (
	"fmt"
	"strings"

	"github.com/m04kA/container-storefront/internal/domain"
)

// validateRequest валидирует параметры и подставляет значения по умолчанию
func validateRequest(req *Request) error {
	req.ZoneTag = strings.TrimSpace(req.ZoneTag)
	if req.ZoneTag == "" {
		return fmt.Errorf("%w: zone is required", ErrInvalidInput)
	}

	if req.Limit < 0 || req.Limit > domain.MaxProductsPageLimit {
		return fmt.Errorf("%w: limit must be in 1..%d", ErrInvalidInput, domain.MaxProductsPageLimit)
	}
	if req.Limit == 0 {
		req.Limit = domain.DefaultProductsPageLimit
	}

	if req.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}

	return nil
}
