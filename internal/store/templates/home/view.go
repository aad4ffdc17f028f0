package home

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/helpers"
	"github.com/kurumaya/storefront/internal/store/templates/partials"
)

// Index renders the home page body.
func Index(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hero := `<section class="rounded-xl bg-slate-900 px-8 py-12 text-white">` +
			`<h1 class="text-3xl font-bold">` + templ.EscapeString(i18n.T(data.Locale, "site.name")) + `</h1>` +
			`<p class="mt-2 text-slate-300">` + templ.EscapeString(i18n.T(data.Locale, "site.tagline")) + `</p>` +
			`</section>` +
			`<section class="mt-10"><div class="flex items-center justify-between">` +
			`<h2 class="text-xl font-semibold">` + templ.EscapeString(i18n.T(data.Locale, "home.featured")) + `</h2>` +
			`<a href="` + helpers.LocalePath(data.Locale, "/cars") + `" class="text-sm font-medium text-rose-600 hover:underline">` +
			templ.EscapeString(i18n.T(data.Locale, "home.viewAll")) + `</a></div>` +
			`<div class="mt-4 grid gap-6 sm:grid-cols-2 lg:grid-cols-4" data-testid="featured-grid">`
		if _, err := io.WriteString(w, hero); err != nil {
			return err
		}

		for _, listing := range data.Featured {
			if err := partials.ListingCard(listing, data.Locale).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}
