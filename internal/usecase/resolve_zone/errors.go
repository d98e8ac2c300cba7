package resolve_zone

import "errors"

var (
	// ErrInvalidInput возвращается, когда почтовый индекс не передан
	ErrInvalidInput = errors.New("resolve_zone: invalid input data")

	// ErrZoneNotFound возвращается, когда индекс не попадает ни в одну зону
	ErrZoneNotFound = errors.New("resolve_zone: no delivery zone for postal code")
)
