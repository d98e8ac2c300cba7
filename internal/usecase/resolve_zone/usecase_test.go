package resolve_zone

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/container-storefront/internal/domain"
)

type mockZoneService struct {
	mock.Mock
}

func (m *mockZoneService) ResolveZone(postalCode string) (domain.PostalZone, bool) {
	return domain.ResolveZone(postalCode)
}

func (m *mockZoneService) ResolveTagID(ctx context.Context, tagName string) (string, bool) {
	args := m.Called(ctx, tagName)
	return args.String(0), args.Bool(1)
}

type countingRecorder map[string]int

func (r countingRecorder) IncZoneResolution(outcome string) { r[outcome]++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		postalCode  string
		tagID       string
		tagFound    bool
		wantErr     error
		wantZone    int
		wantTagID   *string
		wantOutcome string
	}{
		{
			name:        "berlin with tag",
			postalCode:  "10115",
			tagID:       "ptag_z1",
			tagFound:    true,
			wantZone:    1,
			wantTagID:   strPtr("ptag_z1"),
			wantOutcome: OutcomeResolved,
		},
		{
			name:        "tag missing in catalog",
			postalCode:  " 80331 ",
			wantZone:    8,
			wantOutcome: OutcomeResolved,
		},
		{
			name:        "overlap resolves to first zone",
			postalCode:  "70173",
			tagFound:    true,
			tagID:       "ptag_z6",
			wantZone:    6,
			wantTagID:   strPtr("ptag_z6"),
			wantOutcome: OutcomeResolved,
		},
		{
			name:        "not numeric",
			postalCode:  "abc",
			wantErr:     ErrZoneNotFound,
			wantOutcome: OutcomeNotFound,
		},
		{
			name:        "empty",
			postalCode:  "   ",
			wantErr:     ErrInvalidInput,
			wantOutcome: OutcomeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zones := &mockZoneService{}
			zones.On("ResolveTagID", mock.Anything, mock.Anything).Return(tt.tagID, tt.tagFound).Maybe()
			recorder := countingRecorder{}

			uc := NewUseCase(zones, recorder, nopLogger{})
			resp, err := uc.Execute(context.Background(), &Request{PostalCode: tt.postalCode})

			assert.Equal(t, 1, recorder[tt.wantOutcome])
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				zones.AssertNotCalled(t, "ResolveTagID", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantZone, resp.Zone)
			assert.Equal(t, tt.wantTagID, resp.TagID)
			assert.Equal(t, fmt.Sprintf("Zone %d Container - KS Containerdienst", tt.wantZone), resp.DisplayName)
		})
	}
}

func strPtr(s string) *string { return &s }
