package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidBookedDate возвращается, когда строка не в формате YYYY-MM-DD
var ErrInvalidBookedDate = errors.New("invalid booked date")

// BookedDate календарная дата, на которую товар уже забронирован
// Не содержит времени и часового пояса
type BookedDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseBookedDate разбирает строку YYYY-MM-DD на компоненты напрямую,
// без time.Parse, чтобы смещение часового пояса не сдвинуло день.
// Переполнение нормализуется как в календаре: 2024-02-30 -> 2024-03-01.
func ParseBookedDate(s string) (BookedDate, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return BookedDate{}, fmt.Errorf("%w: %q", ErrInvalidBookedDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return BookedDate{}, fmt.Errorf("%w: %q", ErrInvalidBookedDate, s)
		}
		nums[i] = n
	}

	y, m, d := time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, time.UTC).Date()
	return BookedDate{Year: y, Month: m, Day: d}, nil
}

// BookedDateOf берёт календарную дату значения в его собственной локации
func BookedDateOf(t time.Time) BookedDate {
	y, m, d := t.Date()
	return BookedDate{Year: y, Month: m, Day: d}
}

// Equal сравнивает только год, месяц и день
func (d BookedDate) Equal(other BookedDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// String форматирует дату как YYYY-MM-DD
func (d BookedDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DisplayString форматирует дату как DD.MM.YYYY
func (d BookedDate) DisplayString() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, int(d.Month), d.Year)
}

// IsDateBooked проверяет, что календарная дата date есть среди bookedDates
// Некорректные строки пропускаются. Для пустого списка всегда false.
func IsDateBooked(date time.Time, bookedDates []string) bool {
	target := BookedDateOf(date)
	for _, s := range bookedDates {
		booked, err := ParseBookedDate(s)
		if err != nil {
			continue
		}
		if booked.Equal(target) {
			return true
		}
	}
	return false
}
