package cars

import (
	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/i18n"
)

// PageData is the cars listing page SSR payload.
type PageData struct {
	Locale      i18n.Locale
	CurrentPath string

	// Query and SortKey echo the visitor's current filter controls.
	Query   string
	SortKey string

	// Listings is the filtered, sorted collection to render.
	Listings []catalog.Listing
}

// SortOption is one entry of the sort select.
type SortOption struct {
	Key   string
	Label string
}

// SortOptions returns the selectable sort orders in display order.
func SortOptions(locale i18n.Locale) []SortOption {
	return []SortOption{
		{Key: catalog.SortLatest, Label: i18n.T(locale, "sort.latest")},
		{Key: catalog.SortPriceLow, Label: i18n.T(locale, "sort.priceLow")},
		{Key: catalog.SortPriceHigh, Label: i18n.T(locale, "sort.priceHigh")},
	}
}
