package partials

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/helpers"
)

// ListingCard renders one listing tile used by the home and cars grids.
func ListingCard(listing catalog.Listing, locale i18n.Locale) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		detailPath := helpers.LocalePath(locale, "/cars/"+strconv.Itoa(listing.ID))

		var b strings.Builder
		b.WriteString(`<article class="overflow-hidden rounded-lg border border-slate-200 bg-white shadow-sm" data-testid="listing-card" data-listing-id="` + strconv.Itoa(listing.ID) + `">`)
		b.WriteString(`<a href="` + detailPath + `">`)

		if listing.ImageURL != "" {
			b.WriteString(`<img src="` + templ.EscapeString(listing.ImageURL) + `" alt="` + templ.EscapeString(listing.Title.In(locale)) + `" class="h-44 w-full object-cover" loading="lazy"/>`)
		} else {
			b.WriteString(`<div class="flex h-44 w-full items-center justify-center bg-slate-100 text-sm text-slate-400" data-testid="image-placeholder">`)
			b.WriteString(templ.EscapeString(i18n.T(locale, "image.placeholder")))
			b.WriteString(`</div>`)
		}

		b.WriteString(`<div class="space-y-1 p-4">`)
		b.WriteString(`<h3 class="text-base font-semibold">`)
		b.WriteString(templ.EscapeString(listing.Title.In(locale)))
		b.WriteString(`</h3>`)
		b.WriteString(`<p class="text-lg font-bold text-rose-600" data-testid="price">`)
		b.WriteString(templ.EscapeString(helpers.Yen(listing.Price, locale)))
		b.WriteString(`</p>`)
		b.WriteString(`<p class="text-xs text-slate-500">`)
		b.WriteString(templ.EscapeString(helpers.Year(listing.Year) + " · " + listing.Mileage.In(locale)))
		b.WriteString(`</p>`)
		b.WriteString(`<p class="text-sm text-slate-600">`)
		b.WriteString(templ.EscapeString(listing.ShortDescription.In(locale)))
		b.WriteString(`</p>`)
		b.WriteString(`</div></a></article>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
