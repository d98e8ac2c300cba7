package resolve_zone

import (
	"context"

	resolveZone "github.com/m04kA/container-storefront/internal/usecase/resolve_zone"
)

type ResolveZoneUseCase interface {
	Execute(ctx context.Context, req *resolveZone.Request) (*resolveZone.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
