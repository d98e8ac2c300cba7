package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDateBooked_IgnoresTimezone(t *testing.T) {
	booked := []string{"2024-06-15"}

	locations := []*time.Location{
		time.UTC,
		time.FixedZone("UTC+14", 14*60*60),
		time.FixedZone("UTC-12", -12*60*60),
		time.FixedZone("CEST", 2*60*60),
	}

	for _, loc := range locations {
		t.Run(loc.String(), func(t *testing.T) {
			assert.True(t, IsDateBooked(time.Date(2024, time.June, 15, 0, 0, 0, 0, loc), booked))
			assert.True(t, IsDateBooked(time.Date(2024, time.June, 15, 23, 59, 59, 0, loc), booked))
			assert.False(t, IsDateBooked(time.Date(2024, time.June, 14, 12, 0, 0, 0, loc), booked))
			assert.False(t, IsDateBooked(time.Date(2024, time.June, 16, 0, 0, 0, 0, loc), booked))
		})
	}
}

func TestIsDateBooked_EmptySet(t *testing.T) {
	assert.False(t, IsDateBooked(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), nil))
	assert.False(t, IsDateBooked(time.Now(), []string{}))
}

func TestIsDateBooked_SkipsMalformed(t *testing.T) {
	booked := []string{"garbage", "2024-06", "2024-xx-15", "2024-06-15"}
	assert.True(t, IsDateBooked(time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC), booked))
	assert.False(t, IsDateBooked(time.Date(2024, time.June, 17, 8, 0, 0, 0, time.UTC), booked[:3]))
}

func TestParseBookedDate(t *testing.T) {
	tests := []struct {
		in      string
		want    BookedDate
		wantErr bool
	}{
		{in: "2024-06-15", want: BookedDate{Year: 2024, Month: time.June, Day: 15}},
		{in: "2024-6-5", want: BookedDate{Year: 2024, Month: time.June, Day: 5}},
		{in: "2024-02-30", want: BookedDate{Year: 2024, Month: time.March, Day: 1}},
		{in: "2024-06-15T00:00:00Z", wantErr: true},
		{in: "", wantErr: true},
		{in: "15.06.2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBookedDate(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBookedDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookedDate_Format(t *testing.T) {
	d := BookedDate{Year: 2024, Month: time.June, Day: 5}
	assert.Equal(t, "2024-06-05", d.String())
	assert.Equal(t, "05.06.2024", d.DisplayString())
}
