package handoff

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func testService() *Service {
	return NewService("+39 0836 123456", "+39 333 1234567", "info@sulfurea.example", nopLogger{})
}

func TestBuildLinks(t *testing.T) {
	links := testService().BuildLinks(&BookingIntent{
		ExperienceName: "Percorso SPA",
		Guests:         3,
		Date:           "2026-05-10",
		Time:           "14:00",
	})

	assert.Equal(t, "tel:+390836123456", links.Tel)

	require.True(t, strings.HasPrefix(links.WhatsApp, "https://wa.me/393331234567?text="))
	wa, err := url.Parse(links.WhatsApp)
	require.NoError(t, err)
	assert.Equal(t, "Vorrei prenotare Percorso SPA per 3 persone il 10 maggio 2026 alle 14:00.",
		wa.Query().Get("text"))

	require.True(t, strings.HasPrefix(links.Mailto, "mailto:info@sulfurea.example?"))
	assert.Contains(t, links.Mailto, "subject=")
}

func TestBuildLinksWithoutDateAndTime(t *testing.T) {
	links := testService().BuildLinks(&BookingIntent{
		ExperienceName: "Fuga di Coppia",
		Guests:         2,
	})

	wa, err := url.Parse(links.WhatsApp)
	require.NoError(t, err)
	assert.Equal(t, "Vorrei prenotare Fuga di Coppia per 2 persone.", wa.Query().Get("text"))
}

func TestBuildLinksUnparseableDateKeptRaw(t *testing.T) {
	links := testService().BuildLinks(&BookingIntent{
		ExperienceName: "Percorso SPA",
		Guests:         2,
		Date:           "domani",
	})

	wa, err := url.Parse(links.WhatsApp)
	require.NoError(t, err)
	assert.Contains(t, wa.Query().Get("text"), "il domani")
}
