package get_booked_dates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticChecker []string

func (c staticChecker) FetchBookedDates(context.Context, string) []string { return []string(c) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		dates      staticChecker
		wantStatus int
		wantDates  []string
	}{
		{
			name:       "booked dates",
			productID:  "prod_1",
			dates:      staticChecker{"2024-06-15", "2024-06-16"},
			wantStatus: http.StatusOK,
			wantDates:  []string{"2024-06-15", "2024-06-16"},
		},
		{
			name:       "fail open renders empty list",
			productID:  "prod_1",
			dates:      staticChecker{},
			wantStatus: http.StatusOK,
			wantDates:  []string{},
		},
		{
			name:       "missing id",
			productID:  " ",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/x/booked-dates", nil)
			req = mux.SetURLVars(req, map[string]string{"productId": tt.productID})

			rec := httptest.NewRecorder()
			NewHandler(tt.dates, nopLogger{}).Handle(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var body BookedDatesResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.productID, body.ProductID)
			assert.Equal(t, tt.wantDates, body.BookedDates)
			assert.Contains(t, rec.Body.String(), `"bookedDates":[`)
		})
	}
}
