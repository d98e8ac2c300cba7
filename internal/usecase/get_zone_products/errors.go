package get_zone_products

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах листинга
	ErrInvalidInput = errors.New("get_zone_products: invalid input data")

	// ErrInternal возвращается, когда каталог недоступен
	ErrInternal = errors.New("get_zone_products: internal error")
)
