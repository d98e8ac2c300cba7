package zones

import (
	"context"

	"github.com/m04kA/container-storefront/internal/domain"
)

// TagLister источник тегов каталога (commerce-бэкенд)
type TagLister interface {
	ListProductTags(ctx context.Context) ([]domain.ProductTag, error)
}

// Recorder метрики поиска тегов
type Recorder interface {
	IncTagLookup(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
