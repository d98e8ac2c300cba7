package availability

import "context"

// BookedDatesSource источник занятых дат товара (commerce-бэкенд)
type BookedDatesSource interface {
	GetBookedDates(ctx context.Context, productID string) ([]string, error)
}

// BookedDatesFetcher то, чем Guard загружает занятые даты (обычно Checker)
type BookedDatesFetcher interface {
	FetchBookedDates(ctx context.Context, productID string) []string
}

// Recorder метрики проверки доступности
type Recorder interface {
	IncBookedDatesFetch(outcome string)
	IncDateRejected(stage string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
