package check_delivery_date

import (
	"context"
	"time"
)

type AvailabilityChecker interface {
	FetchBookedDates(ctx context.Context, productID string) []string
	IsDateBooked(date time.Time, bookedDates []string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
