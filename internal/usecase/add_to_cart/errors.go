package add_to_cart

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_to_cart: invalid input data")

	// ErrDateInPast возвращается, когда дата доставки раньше сегодняшней
	ErrDateInPast = errors.New("add_to_cart: delivery date is in the past")

	// ErrDateBooked возвращается, когда дата доставки уже занята
	ErrDateBooked = errors.New("add_to_cart: delivery date is already booked")

	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("add_to_cart: product not found")

	// ErrVariantNotFound возвращается, когда у товара нет указанного или хотя бы одного варианта
	ErrVariantNotFound = errors.New("add_to_cart: product variant not found")

	// ErrCartNotFound возвращается, когда корзина не найдена
	ErrCartNotFound = errors.New("add_to_cart: cart not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_to_cart: internal error")
)
