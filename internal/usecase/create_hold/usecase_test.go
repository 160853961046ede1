package create_hold

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulfurea/SPA-BookingService/internal/catalog"
	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProvider struct {
	calls int
	hold  *domain.Hold
	err   error
}

func (p *fakeProvider) CreateHold(_ context.Context, _ *domain.HoldRequest) (*domain.Hold, error) {
	p.calls++
	return p.hold, p.err
}

type fakeCatalog struct {
	known map[string]bool
}

func (c *fakeCatalog) EnabledExperienceBySlug(slug string) (*domain.Experience, error) {
	if c.known[slug] {
		return &domain.Experience{Slug: slug, Enabled: true}, nil
	}
	return nil, catalog.ErrExperienceNotFound
}

func testLimits() Limits {
	return Limits{MinGuests: 1, MaxGuests: 10}
}

func TestExecute(t *testing.T) {
	expires := time.Date(2026, 5, 10, 14, 15, 0, 0, time.UTC)
	provider := &fakeProvider{hold: &domain.Hold{
		HoldID:    "hold-abc",
		ExpiresAt: expires,
		Summary:   "Prenotazione in attesa per 2 persone",
	}}
	uc := NewUseCase(provider, &fakeCatalog{known: map[string]bool{"percorso-spa": true}}, testLimits(), nopLogger{})

	hold, err := uc.Execute(context.Background(), &Request{
		SlotID:         "slot-2026-05-10-1400",
		Guests:         2,
		ExperienceType: "percorso-spa",
		ContactName:    ptr.Ptr("Anna"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hold-abc", hold.HoldID)
	assert.Equal(t, expires, hold.ExpiresAt)
	assert.Equal(t, 1, provider.calls)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "missing slot id",
			req:     &Request{SlotID: "  ", Guests: 2, ExperienceType: "percorso-spa"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "guests below minimum",
			req:     &Request{SlotID: "slot-2026-05-10-1400", Guests: 0, ExperienceType: "percorso-spa"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "guests above maximum",
			req:     &Request{SlotID: "slot-2026-05-10-1400", Guests: 11, ExperienceType: "percorso-spa"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing experience type",
			req:     &Request{SlotID: "slot-2026-05-10-1400", Guests: 2, ExperienceType: ""},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown experience",
			req:     &Request{SlotID: "slot-2026-05-10-1400", Guests: 2, ExperienceType: "grotta-di-sale"},
			wantErr: ErrExperienceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{}
			uc := NewUseCase(provider, &fakeCatalog{known: map[string]bool{"percorso-spa": true}}, testLimits(), nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Equal(t, 0, provider.calls, "провайдер не должен вызываться при ошибке валидации")
		})
	}
}

func TestExecuteProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	uc := NewUseCase(provider, &fakeCatalog{known: map[string]bool{"percorso-spa": true}}, testLimits(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:         "slot-2026-05-10-1400",
		Guests:         2,
		ExperienceType: "percorso-spa",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}
