package commerce

import (
	"errors"
	"time"
)

// errNotFound внутренний признак ответа 404, наружу не отдаётся
var errNotFound = errors.New("commerce client: not found")

// Observer собирает метрики запросов к бэкенду
type Observer interface {
	ObserveBackendRequest(operation, status string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopObserver struct{}

func (noopObserver) ObserveBackendRequest(string, string, time.Duration) {}
