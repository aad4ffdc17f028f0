package catalog

import (
	"context"
	"errors"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

// Service exposes the car catalog consumed by the storefront pages.
type Service interface {
	// List returns every published listing in the order the CMS serves them.
	List(ctx context.Context) ([]Listing, error)

	// Get returns a single listing by its CMS identifier.
	Get(ctx context.Context, id int) (Listing, error)
}

var (
	// ErrListingNotFound is returned when the requested listing does not exist.
	ErrListingNotFound = errors.New("catalog: listing not found")
	// ErrMalformedSpecifications indicates a specifications payload was present
	// but could not be deserialised. The affected listing still maps with the
	// default specification set; callers decide whether to surface the error.
	ErrMalformedSpecifications = errors.New("catalog: malformed specifications")
)

// BiText is a bilingual display string. Both members are always populated
// after mapping; a missing source value falls back to the other locale's text
// at mapping time, never at render time.
type BiText struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

// In returns the member for the given locale.
func (t BiText) In(locale i18n.Locale) string {
	if locale == i18n.LocaleEN {
		return t.EN
	}
	return t.JA
}

// SpecEntry is one named specification. Entries keep the order the CMS
// delivered them in.
type SpecEntry struct {
	Name  string
	Value BiText
}

// Listing is the locale-resolved view model rendered by the storefront. It is
// constructed fresh on every fetch and never mutated afterwards.
type Listing struct {
	// ID matches the CMS identifier and is used for detail lookups.
	ID int

	Title   BiText
	Price   int
	Year    int
	Mileage BiText

	// ImageURL is an absolute URL, or empty when the listing has no image.
	// The renderer shows a placeholder for empty values.
	ImageURL string

	ShortDescription BiText
	Description      BiText

	Specifications []SpecEntry

	// SpecsFailed marks a listing whose specifications payload could not be
	// deserialised. The detail page renders an error note for the section
	// instead of the default table.
	SpecsFailed bool
}

// Sort keys accepted by FilterAndSort. Unknown keys leave the collection in
// fetched order.
const (
	SortLatest    = "latest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)
