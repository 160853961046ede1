package mockgestionale

import (
	"github.com/sulfurea/SPA-BookingService/internal/domain"
	"github.com/sulfurea/SPA-BookingService/pkg/ptr"
)

// mockOffers промо-offerte, которые mock backend отдаёт вместо реального gestionale
var mockOffers = []domain.Offer{
	{
		Slug:          "fuga-di-coppia",
		Name:          "Fuga di Coppia",
		Description:   "Percorso SPA completo per due con tisana di benvenuto.",
		Price:         ptr.Ptr(120.0),
		OriginalPrice: ptr.Ptr(150.0),
		ValidUntil:    "2026-06-30",
		Enabled:       true,
	},
	{
		Slug:          "giornata-benessere",
		Name:          "Giornata Benessere",
		Description:   "Percorso SPA + massaggio rilassante per una giornata dedicata a te.",
		Price:         ptr.Ptr(95.0),
		OriginalPrice: ptr.Ptr(120.0),
		ValidUntil:    "2026-06-30",
		Enabled:       true,
	},
	{
		Slug:          "cilento-relax",
		Name:          "Cilento & Relax",
		Description:   "Soggiorno Hotel La Torre + percorso SPA per due persone.",
		Price:         ptr.Ptr(199.0),
		OriginalPrice: ptr.Ptr(250.0),
		ValidUntil:    "2026-08-31",
		Enabled:       true,
	},
}
