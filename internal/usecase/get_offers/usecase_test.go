package get_offers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeProvider struct {
	offers []domain.Offer
	err    error
}

func (p *fakeProvider) GetOffers(_ context.Context, _, _ string) ([]domain.Offer, error) {
	return p.offers, p.err
}

func TestExecute(t *testing.T) {
	provider := &fakeProvider{offers: []domain.Offer{
		{Slug: "fuga-di-coppia", Name: "Fuga di Coppia", Price: ptr.Ptr(120.0), Enabled: true},
	}}
	uc := NewUseCase(provider, nopLogger{})

	offers, err := uc.Execute(context.Background(), "2026-05-01", "2026-05-31")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "fuga-di-coppia", offers[0].Slug)
}

func TestExecuteProviderError(t *testing.T) {
	uc := NewUseCase(&fakeProvider{err: errors.New("boom")}, nopLogger{})

	_, err := uc.Execute(context.Background(), "2026-05-01", "2026-05-31")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}
