package add_to_cart

import (
	"context"
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
	"github.com/m04kA/container-storefront/internal/service/availability"
)

// CommerceClient интерфейс клиента commerce-бэкенда
type CommerceClient interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	AddLineItem(ctx context.Context, cartID string, item domain.LineItem) error
}

// BookedDatesFetcher источник занятых дат (fail-open)
type BookedDatesFetcher interface {
	FetchBookedDates(ctx context.Context, productID string) []string
}

// Recorder метрики добавления в корзину и проверки дат
type Recorder interface {
	availability.Recorder
	IncCartAddition(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
