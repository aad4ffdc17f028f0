package detail

import (
	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/i18n"
)

// PageData is the detail page SSR payload.
type PageData struct {
	Locale      i18n.Locale
	CurrentPath string
	Listing     catalog.Listing
}
