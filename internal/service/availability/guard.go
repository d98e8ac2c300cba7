package availability

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/container-storefront/internal/domain"
)

// Этапы, на которых дата может быть отклонена
const (
	StageSelect = "select"
	StageSubmit = "submit"
)

// Guard защищает выбор даты доставки для одного товара
//
// Проверка только на стороне витрины: два покупателя с независимо загруженными
// списками могут выбрать и отправить одну и ту же дату. Окончательно конфликт
// решает бэкенд при оформлении заказа.
type Guard struct {
	productID string
	recorder  Recorder

	mu       sync.Mutex
	loading  bool
	booked   []string
	selected *time.Time
}

// NewGuard создает guard для товара, до Load он в состоянии загрузки
func NewGuard(productID string, recorder Recorder) *Guard {
	return &Guard{
		productID: productID,
		recorder:  recorder,
		loading:   true,
		booked:    []string{},
	}
}

// Load загружает занятые даты один раз при открытии товара
func (g *Guard) Load(ctx context.Context, fetcher BookedDatesFetcher) {
	dates := fetcher.FetchBookedDates(ctx, g.productID)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.booked = dates
	g.loading = false
}

// Loading true, пока занятые даты не загружены; выбор даты на витрине в это время выключен
func (g *Guard) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loading
}

// BookedDates возвращает копию загруженных занятых дат
func (g *Guard) BookedDates() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	dates := make([]string, len(g.booked))
	copy(dates, g.booked)
	return dates
}

// Select пытается выбрать дату; занятая дата не сохраняется
func (g *Guard) Select(date time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if domain.IsDateBooked(date, g.booked) {
		g.recorder.IncDateRejected(StageSelect)
		return ErrDateBooked
	}

	g.selected = &date
	return nil
}

// Selected возвращает выбранную дату
func (g *Guard) Selected() (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.selected == nil {
		return time.Time{}, false
	}
	return *g.selected, true
}

// ValidateSubmission повторно проверяет выбранную дату перед добавлением в корзину
// Ловит дату, выбранную до окончания загрузки списка занятых дат.
func (g *Guard) ValidateSubmission() (time.Time, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.selected == nil {
		return time.Time{}, ErrNoDateSelected
	}
	if domain.IsDateBooked(*g.selected, g.booked) {
		g.recorder.IncDateRejected(StageSubmit)
		return time.Time{}, ErrDateBooked
	}
	return *g.selected, nil
}
