package resolve_zone

import (
	"context"

	"github.com/m04kA/container-storefront/internal/domain"
)

// ZoneService интерфейс сервиса зон
type ZoneService interface {
	ResolveZone(postalCode string) (domain.PostalZone, bool)
	ResolveTagID(ctx context.Context, tagName string) (string, bool)
}

// Recorder метрики определения зоны
type Recorder interface {
	IncZoneResolution(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
