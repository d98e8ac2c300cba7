package commerce

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrCategoryNotFound возвращается, когда категория с таким handle не найдена
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCartNotFound возвращается, когда корзина не найдена
	ErrCartNotFound = errors.New("cart not found")

	// ErrBadRequest возвращается, когда бэкенд отклонил параметры запроса
	ErrBadRequest = errors.New("commerce client: bad request")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, построение запроса)
	ErrInternal = errors.New("commerce client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("commerce client: invalid response")
)
