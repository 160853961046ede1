package mockgestionale

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// newTestProvider возвращает provider без задержек и с фиксированным seed-ом
func newTestProvider(seed int64) *Provider {
	p := NewProvider(nopLogger{})
	p.rnd = rand.New(rand.NewSource(seed))
	p.sleep = func(time.Duration) {}
	p.now = func() time.Time { return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC) }
	return p
}

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGetAvailabilitySlotCount(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		days  int
	}{
		{"one day", "2026-05-10", "2026-05-10", 1},
		{"two days", "2026-05-10", "2026-05-11", 2},
		{"week", "2026-05-10", "2026-05-16", 7},
	}

	p := newTestProvider(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.GetAvailability(context.Background(), &domain.BookingQuery{
				Start: day(tt.start), End: day(tt.end), Guests: 2,
			})
			require.NoError(t, err)

			// Ровно 7 слотов на каждый день диапазона
			assert.Len(t, result.Slots, 7*tt.days)
		})
	}
}

func TestGetAvailabilitySlotShape(t *testing.T) {
	p := newTestProvider(42)

	result, err := p.GetAvailability(context.Background(), &domain.BookingQuery{
		Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
	})
	require.NoError(t, err)
	require.Len(t, result.Slots, 7)

	for i, slot := range result.Slots {
		assert.Equal(t, domain.SlotTimes[i], slot.Time.String())
		assert.True(t, strings.HasPrefix(slot.ID, "slot-2026-05-10-"), "id=%s", slot.ID)

		if slot.Available {
			require.NotNil(t, slot.Price, "available slot must carry a price")
			assert.GreaterOrEqual(t, *slot.Price, float64(domain.MockPriceMin))
			assert.Less(t, *slot.Price, float64(domain.MockPriceMax))
		} else {
			assert.Nil(t, slot.Price, "unavailable slot must not carry a price")
		}
	}
}

func TestGetAvailabilityNoAvailabilityMessage(t *testing.T) {
	// Перебираем seed-ы, пока генератор не выдаст день вообще без доступных слотов
	for seed := int64(0); seed < 5000; seed++ {
		p := newTestProvider(seed)
		result, err := p.GetAvailability(context.Background(), &domain.BookingQuery{
			Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
		})
		require.NoError(t, err)

		if !result.HasAvailability() {
			// Полный список слотов сохраняется, доступное подмножество пустое
			assert.Len(t, result.Slots, 7)
			assert.Empty(t, result.AvailableSlots())
			assert.NotEmpty(t, result.Message)
			return
		}
		assert.Empty(t, result.Message, "message must be absent when availability exists")
	}
	t.Fatal("no seed produced a fully unavailable day")
}

func TestGetOffers(t *testing.T) {
	p := newTestProvider(1)

	offers, err := p.GetOffers(context.Background(), "2026-05-01", "2026-05-31")
	require.NoError(t, err)
	require.Len(t, offers, 3)

	assert.Equal(t, "fuga-di-coppia", offers[0].Slug)
	require.NotNil(t, offers[0].Price)
	assert.Equal(t, 120.0, *offers[0].Price)
}

func TestCreateHold(t *testing.T) {
	p := newTestProvider(1)

	hold, err := p.CreateHold(context.Background(), &domain.HoldRequest{
		SlotID:         "slot-2026-05-10-1400",
		Guests:         3,
		ExperienceType: "percorso-spa",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hold.HoldID, "hold-"))
	assert.Equal(t, time.Date(2026, 5, 10, 12, 15, 0, 0, time.UTC), hold.ExpiresAt)
	assert.Contains(t, hold.Summary, "3 persona/e")
}
