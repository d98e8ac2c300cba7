package get_zone_products

import (
	"context"

	"github.com/m04kA/container-storefront/internal/domain"
)

// ZoneService интерфейс сервиса зон
type ZoneService interface {
	ResolveTagID(ctx context.Context, tagName string) (string, bool)
}

// CatalogClient интерфейс клиента каталога commerce-бэкенда
type CatalogClient interface {
	GetCategoryByHandle(ctx context.Context, handle string) (*domain.Category, error)
	ListCategories(ctx context.Context, limit int) ([]domain.Category, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
