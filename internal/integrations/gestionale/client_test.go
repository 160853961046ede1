package gestionale

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
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

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGetAvailability(t *testing.T) {
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/availability", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"slots": []map[string]interface{}{
				{"id": "slot-2026-05-10-0900", "date": "2026-05-10", "time": "09:00", "available": true, "price": 55.0},
				{"id": "slot-2026-05-10-1030", "date": "2026-05-10", "time": "10:30", "available": false},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", nopLogger{})

	result, err := client.GetAvailability(context.Background(), &domain.BookingQuery{
		Start:          day("2026-05-10"),
		End:            day("2026-05-10"),
		Guests:         3,
		ExperienceType: "percorso-spa",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, gotQuery, "start=2026-05-10")
	assert.Contains(t, gotQuery, "guests=3")
	assert.Contains(t, gotQuery, "type=percorso-spa")

	require.Len(t, result.Slots, 2)
	assert.True(t, result.Slots[0].Available)
	require.NotNil(t, result.Slots[0].Price)
	assert.Equal(t, 55.0, *result.Slots[0].Price)
	assert.False(t, result.Slots[1].Available)
	assert.Equal(t, "10:30", result.Slots[1].Time.String())
}

func TestGetAvailabilityWithoutAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Без ключа запрос не аутентифицирован
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"slots": []interface{}{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nopLogger{})
	_, err := client.GetAvailability(context.Background(), &domain.BookingQuery{
		Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
	})
	assert.NoError(t, err)
}

func TestGetAvailabilityAPIError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(srv.URL, "", nopLogger{})
		_, err := client.GetAvailability(context.Background(), &domain.BookingQuery{
			Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
		})
		assert.True(t, errors.Is(err, ErrAPIError), "status=%d", status)
		srv.Close()
	}
}

func TestGetAvailabilityInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"slots": []map[string]interface{}{
				{"id": "x", "date": "not-a-date", "time": "09:00", "available": true},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nopLogger{})
	_, err := client.GetAvailability(context.Background(), &domain.BookingQuery{
		Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
	})
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestGetOffers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/offers", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"slug": "fuga-di-coppia", "name": "Fuga di Coppia", "description": "Percorso per due", "price": 120.0, "originalPrice": 150.0, "validUntil": "2026-06-30"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nopLogger{})
	offers, err := client.GetOffers(context.Background(), "2026-05-01", "2026-05-31")
	require.NoError(t, err)

	require.Len(t, offers, 1)
	assert.Equal(t, "fuga-di-coppia", offers[0].Slug)
	require.NotNil(t, offers[0].Price)
	assert.Equal(t, 120.0, *offers[0].Price)
	assert.True(t, offers[0].Enabled)
}

func TestCreateHold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hold", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "slot-2026-05-10-1400", body["slotId"])
		assert.Equal(t, float64(3), body["guests"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"holdId":    "hold-abc",
			"expiresAt": time.Now().Add(15 * time.Minute).Format(time.RFC3339),
			"summary":   "Prenotazione in attesa per 3 persona/e",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", nopLogger{})
	hold, err := client.CreateHold(context.Background(), &domain.HoldRequest{
		SlotID:         "slot-2026-05-10-1400",
		Guests:         3,
		ExperienceType: "percorso-spa",
	})
	require.NoError(t, err)

	assert.Equal(t, "hold-abc", hold.HoldID)
	assert.False(t, hold.IsExpired(time.Now()))
}
