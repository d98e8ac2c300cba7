package get_booked_dates

import "context"

type AvailabilityChecker interface {
	FetchBookedDates(ctx context.Context, productID string) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
