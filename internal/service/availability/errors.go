package availability

import "errors"

var (
	// ErrDateBooked возвращается, когда выбранная дата уже занята
	ErrDateBooked = errors.New("availability: date is already booked")

	// ErrNoDateSelected возвращается при отправке без выбранной даты
	ErrNoDateSelected = errors.New("availability: no delivery date selected")
)
