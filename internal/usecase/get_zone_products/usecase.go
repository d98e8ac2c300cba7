package get_zone_products

import (
	"context"
	"fmt"

	"github.com/m04kA/container-storefront/internal/domain"
)

const defaultZoneName = "Container - KS Containerdienst"

// UseCase use case для листинга контейнеров зоны доставки
type UseCase struct {
	zones   ZoneService
	catalog CatalogClient
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(zones ZoneService, catalog CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		zones:   zones,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute выполняет листинг товаров зоны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetZoneProducts: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetZoneProducts: zone=%s, wasteType=%s, limit=%d, offset=%d",
		req.ZoneTag, req.WasteType, req.Limit, req.Offset)

	resp := &Response{
		ZoneTag:  req.ZoneTag,
		ZoneName: defaultZoneName,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if zone, ok := domain.ZoneByTagName(req.ZoneTag); ok {
		resp.Zone = &zone.Zone
		resp.ZoneName = zone.DisplayName()
	}

	resp.CategoryID = uc.resolveCategoryID(ctx, req.WasteType)

	// Тег не найден -> листинг без фильтра по зоне
	if tagID, ok := uc.zones.ResolveTagID(ctx, req.ZoneTag); ok {
		resp.TagID = &tagID
	}

	page, err := uc.catalog.ListProducts(ctx, domain.ProductFilter{
		TagID:      resp.TagID,
		CategoryID: resp.CategoryID,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		uc.logger.Error("GetZoneProducts: failed to list products for zone=%s: %v", req.ZoneTag, err)
		return nil, fmt.Errorf("%w: failed to list products: %v", ErrInternal, err)
	}

	resp.Items = make([]Item, len(page.Products))
	for i := range page.Products {
		resp.Items[i] = Item{Product: page.Products[i]}
		if price, ok := domain.CheapestPrice(&page.Products[i]); ok {
			p := price
			resp.Items[i].CheapestPrice = &p
		}
	}
	resp.Count = page.Count
	resp.NoService = page.Count == 0

	if resp.NoService {
		uc.logger.Warn("GetZoneProducts: no products for zone=%s, category=%v", req.ZoneTag, resp.CategoryID != nil)
	}

	return resp, nil
}
