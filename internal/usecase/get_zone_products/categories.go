package get_zone_products

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/m04kA/container-storefront/internal/domain"
	"github.com/m04kA/container-storefront/internal/integrations/commerce"
)

// resolveCategoryID ищет категорию по slug типа отходов
// Сначала точный поиск по handle, затем перебор всех категорий по handle или названию.
// Ошибки каталога не прерывают листинг: без категории показываются все товары зоны.
func (uc *UseCase) resolveCategoryID(ctx context.Context, slug string) *string {
	if slug == "" {
		return nil
	}

	category, err := uc.catalog.GetCategoryByHandle(ctx, slug)
	if err == nil && category != nil {
		return &category.ID
	}
	if err != nil && !errors.Is(err, commerce.ErrCategoryNotFound) {
		uc.logger.Warn("GetZoneProducts: category lookup by handle=%s failed: %v", slug, err)
	}

	categories, err := uc.catalog.ListCategories(ctx, domain.CategoriesFallbackLimit)
	if err != nil {
		uc.logger.Warn("GetZoneProducts: failed to list categories for slug=%s: %v", slug, err)
		return nil
	}

	if match, ok := matchCategory(categories, slug); ok {
		return &match.ID
	}

	uc.logger.Warn("GetZoneProducts: no category matches slug=%s, listing without category filter", slug)
	return nil
}

// matchCategory сравнивает декодированный slug с handle или названием без учёта регистра
func matchCategory(categories []domain.Category, slug string) (domain.Category, bool) {
	normalized, err := url.PathUnescape(slug)
	if err != nil {
		normalized = slug
	}
	normalized = strings.ToLower(normalized)

	for _, c := range categories {
		if c.Handle != "" && strings.ToLower(c.Handle) == normalized {
			return c, true
		}
		if c.Name != "" && strings.ToLower(c.Name) == normalized {
			return c, true
		}
	}
	return domain.Category{}, false
}
