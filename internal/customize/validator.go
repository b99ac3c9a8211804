package customize

import (
	"errors"
	"strings"

	"charm-shop/internal/catalog"
	"charm-shop/internal/models"
)

// ErrInvalidParams is the single rejection for any failed customization
// check; no field-level detail is surfaced.
var ErrInvalidParams = errors.New("invalid customization parameters")

// Descriptor is a validated customization: the resolved base product plus
// the chosen color and size.
type Descriptor struct {
	Base  models.Product
	Color string
	Size  string
}

var validSizes = map[string]bool{"S": true, "M": true, "L": true}

// Validate checks a customization request against the catalog. Size must
// be one of S/M/L; color must start with '#' and be 4 or 7 characters
// long (shorthand #abc or full #aabbcc — length only, digits are not
// checked); the base product must exist.
func Validate(cat *catalog.Catalog, baseProductID int, color, size string) (Descriptor, error) {
	if !validSizes[size] {
		return Descriptor{}, ErrInvalidParams
	}
	if !strings.HasPrefix(color, "#") || (len(color) != 4 && len(color) != 7) {
		return Descriptor{}, ErrInvalidParams
	}
	base, ok := cat.Find(baseProductID)
	if !ok {
		return Descriptor{}, ErrInvalidParams
	}
	return Descriptor{Base: base, Color: color, Size: size}, nil
}
