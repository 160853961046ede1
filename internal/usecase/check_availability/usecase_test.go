package check_availability

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
	result *domain.AvailabilityResult
	err    error
	calls  int
}

func (p *fakeProvider) GetAvailability(_ context.Context, _ *domain.BookingQuery) (*domain.AvailabilityResult, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

type fakeCatalog struct {
	known map[string]bool
}

func (c *fakeCatalog) EnabledExperienceBySlug(slug string) (*domain.Experience, error) {
	if !c.known[slug] {
		return nil, catalog.ErrExperienceNotFound
	}
	return &domain.Experience{Slug: slug, Name: slug, Enabled: true}, nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

func day(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testLimits() Limits {
	return Limits{MinGuests: 1, MaxGuests: 10, MaxAdvanceDays: 90}
}

func newTestUseCase(provider *fakeProvider) *UseCase {
	uc := NewUseCase(
		provider,
		&fakeCatalog{known: map[string]bool{"percorso-spa": true}},
		testLimits(),
		nopLogger{},
	)
	uc.timeProvider = &fixedTime{t: day("2026-05-01")}
	return uc
}

func availableSlot(id string) domain.TimeSlot {
	return domain.TimeSlot{ID: id, Available: true, Price: ptr.Ptr(50.0)}
}

func TestExecuteHappyPath(t *testing.T) {
	provider := &fakeProvider{result: &domain.AvailabilityResult{
		Slots: []domain.TimeSlot{availableSlot("a"), {ID: "b", Available: false}},
	}}
	uc := newTestUseCase(provider)

	resp, err := uc.Execute(context.Background(), &Request{
		Start: day("2026-05-10"), End: day("2026-05-11"), Guests: 2, ExperienceType: "percorso-spa",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls)
	assert.Len(t, resp.Result.Slots, 2)
	assert.Empty(t, resp.Result.Message)
	assert.Equal(t, "percorso-spa", resp.Query.ExperienceType)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			"missing dates",
			Request{Guests: 2},
			ErrInvalidInput,
		},
		{
			"end before start",
			Request{Start: day("2026-05-11"), End: day("2026-05-10"), Guests: 2},
			ErrInvalidDateRange,
		},
		{
			"guests below minimum",
			Request{Start: day("2026-05-10"), End: day("2026-05-11"), Guests: 0},
			ErrInvalidInput,
		},
		{
			"guests above maximum",
			Request{Start: day("2026-05-10"), End: day("2026-05-11"), Guests: 11},
			ErrInvalidInput,
		},
		{
			"start in the past",
			Request{Start: day("2026-04-20"), End: day("2026-05-10"), Guests: 2},
			ErrDateInPast,
		},
		{
			"too far in the future",
			Request{Start: day("2026-05-10"), End: day("2026-09-15"), Guests: 2},
			ErrDateTooFarInFuture,
		},
		{
			"unknown experience filter",
			Request{Start: day("2026-05-10"), End: day("2026-05-11"), Guests: 2, ExperienceType: "inesistente"},
			ErrExperienceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{result: &domain.AvailabilityResult{}}
			uc := newTestUseCase(provider)

			_, err := uc.Execute(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			// Провайдер не вызывается при ошибке валидации
			assert.Zero(t, provider.calls)
		})
	}
}

func TestExecuteDefaultNoAvailabilityMessage(t *testing.T) {
	provider := &fakeProvider{result: &domain.AvailabilityResult{
		Slots: []domain.TimeSlot{{ID: "a", Available: false}, {ID: "b", Available: false}},
	}}
	uc := newTestUseCase(provider)

	resp, err := uc.Execute(context.Background(), &Request{
		Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Result.Slots, 2)
	assert.Empty(t, resp.Result.AvailableSlots())
	assert.Equal(t, msgDefaultNoAvailability, resp.Result.Message)
}

func TestExecuteServerMessageTakesPrecedence(t *testing.T) {
	provider := &fakeProvider{result: &domain.AvailabilityResult{
		Slots:   []domain.TimeSlot{{ID: "a", Available: false}},
		Message: "Nessuna disponibilità in queste date.",
	}}
	uc := newTestUseCase(provider)

	resp, err := uc.Execute(context.Background(), &Request{
		Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nessuna disponibilità in queste date.", resp.Result.Message)
}

func TestExecuteProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	uc := newTestUseCase(provider)

	_, err := uc.Execute(context.Background(), &Request{
		Start: day("2026-05-10"), End: day("2026-05-10"), Guests: 2,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}
