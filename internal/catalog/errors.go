package catalog

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда esperienza с таким slug не найдена
	ErrExperienceNotFound = errors.New("experience not found")

	// ErrOfferNotFound возвращается, когда offerta с таким slug не найдена
	ErrOfferNotFound = errors.New("offer not found")

	// ErrInvalidCatalog возвращается при некорректном файле каталога
	ErrInvalidCatalog = errors.New("catalog: invalid catalog file")
)
