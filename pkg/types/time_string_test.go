package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid morning", "09:00", "09:00", false},
		{"valid half hour", "10:30", "10:30", false},
		{"valid evening", "18:30", "18:30", false},
		{"missing leading zero accepted", "9:00", "09:00", false},
		{"garbage", "abc", "", true},
		{"out of range", "25:00", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	a, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	b, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("12:00")
	require.NoError(t, err)

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "13:30", shifted.String())

	_, err = ts.AddMinutes(13 * 60)
	assert.Error(t, err)
}

func TestNewTimeStringFromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 5, 10, 14, 0, 0, 0, time.UTC))
	assert.Equal(t, "14:00", ts.String())
}
