package home

import (
	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/i18n"
)

// PageData is the home page SSR payload.
type PageData struct {
	Locale      i18n.Locale
	CurrentPath string

	// Featured is the fixed-size head of the fetched collection, in fetched
	// order.
	Featured []catalog.Listing
}
