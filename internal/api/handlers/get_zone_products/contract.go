package get_zone_products

import (
	"context"

	getZoneProducts "github.com/m04kA/container-storefront/internal/usecase/get_zone_products"
)

type GetZoneProductsUseCase interface {
	Execute(ctx context.Context, req *getZoneProducts.Request) (*getZoneProducts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
