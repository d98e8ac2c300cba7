package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher []string

func (f staticFetcher) FetchBookedDates(context.Context, string) []string {
	return []string(f)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.Local)
}

func TestGuard_LoadingFlag(t *testing.T) {
	g := NewGuard("prod_1", newCountingRecorder())
	assert.True(t, g.Loading())
	assert.Empty(t, g.BookedDates())

	g.Load(context.Background(), staticFetcher{"2024-06-15"})
	assert.False(t, g.Loading())
	assert.Equal(t, []string{"2024-06-15"}, g.BookedDates())
}

func TestGuard_Select(t *testing.T) {
	recorder := newCountingRecorder()
	g := NewGuard("prod_1", recorder)
	g.Load(context.Background(), staticFetcher{"2024-06-15"})

	err := g.Select(day(2024, time.June, 15))
	require.ErrorIs(t, err, ErrDateBooked)
	_, ok := g.Selected()
	assert.False(t, ok, "booked date must not be committed")
	assert.Equal(t, 1, recorder.rejected[StageSelect])

	require.NoError(t, g.Select(day(2024, time.June, 16)))
	selected, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 16, selected.Day())

	// повторный выбор занятой даты не сбрасывает ранее принятую
	require.ErrorIs(t, g.Select(day(2024, time.June, 15)), ErrDateBooked)
	selected, _ = g.Selected()
	assert.Equal(t, 16, selected.Day())

	date, err := g.ValidateSubmission()
	require.NoError(t, err)
	assert.Equal(t, 16, date.Day())
}

func TestGuard_ValidateSubmission_NoSelection(t *testing.T) {
	g := NewGuard("prod_1", newCountingRecorder())
	g.Load(context.Background(), staticFetcher{})

	_, err := g.ValidateSubmission()
	require.ErrorIs(t, err, ErrNoDateSelected)
}

// Дата выбрана до загрузки занятых дат, проверка при отправке её ловит
func TestGuard_ValidateSubmission_SelectedWhileLoading(t *testing.T) {
	recorder := newCountingRecorder()
	g := NewGuard("prod_1", recorder)

	require.NoError(t, g.Select(day(2024, time.June, 15)))

	g.Load(context.Background(), staticFetcher{"2024-06-15"})

	_, err := g.ValidateSubmission()
	require.ErrorIs(t, err, ErrDateBooked)
	assert.Equal(t, 1, recorder.rejected[StageSubmit])
}

// Известная гонка: два покупателя с независимо загруженными списками
// принимают одну и ту же дату. Guard это не предотвращает, конфликт решает бэкенд.
func TestGuard_ConcurrentCustomersRace(t *testing.T) {
	first := NewGuard("prod_1", newCountingRecorder())
	second := NewGuard("prod_1", newCountingRecorder())

	first.Load(context.Background(), staticFetcher{})
	second.Load(context.Background(), staticFetcher{})

	wanted := day(2024, time.June, 20)
	require.NoError(t, first.Select(wanted))
	require.NoError(t, second.Select(wanted))

	_, err := first.ValidateSubmission()
	require.NoError(t, err)
	// первая бронь уже ушла в бэкенд, но второй guard о ней не знает
	_, err = second.ValidateSubmission()
	require.NoError(t, err)
}
