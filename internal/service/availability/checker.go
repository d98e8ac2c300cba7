package availability

import (
	"context"
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
)

// Результаты чтения занятых дат для метрик
const (
	FetchOK     = "ok"
	FetchFailed = "failed"
)

// Result результат чтения занятых дат
type Result struct {
	Dates []string
	Err   error
}

// Checker читает занятые даты товара и проверяет по ним выбранную дату
// Кэша нет: каждое чтение идёт в бэкенд.
type Checker struct {
	source   BookedDatesSource
	recorder Recorder
	logger   Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(source BookedDatesSource, recorder Recorder, logger Logger) *Checker {
	return &Checker{
		source:   source,
		recorder: recorder,
		logger:   logger,
	}
}

// Fetch читает занятые даты и возвращает результат вместе с ошибкой
func (c *Checker) Fetch(ctx context.Context, productID string) Result {
	dates, err := c.source.GetBookedDates(ctx, productID)
	if err != nil {
		return Result{Err: err}
	}
	if dates == nil {
		dates = []string{}
	}
	return Result{Dates: dates}
}

// FetchBookedDates возвращает занятые даты товара в формате YYYY-MM-DD
// Fail-open: при любой ошибке возвращается пустой список, как будто занятых дат нет.
func (c *Checker) FetchBookedDates(ctx context.Context, productID string) []string {
	res := c.Fetch(ctx, productID)
	if res.Err != nil {
		c.logger.Error("FetchBookedDates: failed to fetch booked dates for product=%s, assuming none booked: %v", productID, res.Err)
		c.recorder.IncBookedDatesFetch(FetchFailed)
		return []string{}
	}

	c.logger.Info("FetchBookedDates: product=%s has %d booked dates", productID, len(res.Dates))
	c.recorder.IncBookedDatesFetch(FetchOK)
	return res.Dates
}

// IsDateBooked проверяет календарную дату по списку занятых дат
func (c *Checker) IsDateBooked(date time.Time, bookedDates []string) bool {
	return domain.IsDateBooked(date, bookedDates)
}
