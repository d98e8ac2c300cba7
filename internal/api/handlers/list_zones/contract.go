package list_zones

import "github.com/m04kA/container-storefront/internal/domain"

type ZoneService interface {
	Zones() []domain.PostalZone
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
