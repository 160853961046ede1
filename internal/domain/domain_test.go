package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulfurea/SPA-BookingService/pkg/ptr"
	"github.com/sulfurea/SPA-BookingService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingQueryDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2026, 5, 10), date(2026, 5, 10), 1},
		{"weekend", date(2026, 5, 9), date(2026, 5, 10), 2},
		{"week", date(2026, 5, 4), date(2026, 5, 10), 7},
		{"month boundary", date(2026, 5, 30), date(2026, 6, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BookingQuery{Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, q.Days())
		})
	}
}

func TestBookingQueryHasValidRange(t *testing.T) {
	assert.True(t, (&BookingQuery{Start: date(2026, 5, 9), End: date(2026, 5, 10)}).HasValidRange())
	assert.True(t, (&BookingQuery{Start: date(2026, 5, 10), End: date(2026, 5, 10)}).HasValidRange())
	assert.False(t, (&BookingQuery{Start: date(2026, 5, 10), End: date(2026, 5, 9)}).HasValidRange())
	assert.False(t, (&BookingQuery{End: date(2026, 5, 9)}).HasValidRange())
	assert.False(t, (&BookingQuery{Start: date(2026, 5, 9)}).HasValidRange())
}

func TestClampGuests(t *testing.T) {
	tests := []struct {
		guests int
		want   int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, 10},
		{100, 10},
	}

	for _, tt := range tests {
		got := ClampGuests(tt.guests, DefaultMinGuests, DefaultMaxGuests)
		assert.Equal(t, tt.want, got, "guests=%d", tt.guests)
		assert.GreaterOrEqual(t, got, DefaultMinGuests)
		assert.LessOrEqual(t, got, DefaultMaxGuests)
	}
}

func TestNewSlotID(t *testing.T) {
	ts, err := types.NewTimeStringFromString("14:00")
	require.NoError(t, err)

	assert.Equal(t, "slot-2026-05-10-1400", NewSlotID(date(2026, 5, 10), ts))
}

func TestAvailabilityResultSubset(t *testing.T) {
	ts, err := types.NewTimeStringFromString("09:00")
	require.NoError(t, err)

	res := AvailabilityResult{Slots: []TimeSlot{
		{ID: "a", Date: date(2026, 5, 10), Time: ts, Available: true, Price: ptr.Ptr(55.0)},
		{ID: "b", Date: date(2026, 5, 10), Time: ts, Available: false},
		{ID: "c", Date: date(2026, 5, 11), Time: ts, Available: true, Price: ptr.Ptr(48.0)},
	}}

	available := res.AvailableSlots()
	require.Len(t, available, 2)
	assert.Equal(t, "a", available[0].ID)
	assert.Equal(t, "c", available[1].ID)
	assert.True(t, res.HasAvailability())

	empty := AvailabilityResult{Slots: []TimeSlot{{ID: "a", Available: false}}}
	assert.False(t, empty.HasAvailability())
	assert.Empty(t, empty.AvailableSlots())
}

func TestHoldIsExpired(t *testing.T) {
	now := time.Now()
	h := Hold{HoldID: "hold-1", ExpiresAt: now.Add(HoldTTL)}
	assert.False(t, h.IsExpired(now))
	assert.True(t, h.IsExpired(now.Add(HoldTTL+time.Second)))
}
