package cars

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/helpers"
	"github.com/kurumaya/storefront/internal/store/templates/partials"
)

// Index renders the cars page body: search controls plus the results grid.
// The controls re-request only the grid fragment through htmx; without
// JavaScript the form submits as a normal GET of the full page.
func Index(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		gridPath := helpers.LocalePath(data.Locale, "/cars/grid")

		var b strings.Builder
		b.WriteString(`<h1 class="text-2xl font-bold">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "cars.heading")))
		b.WriteString(`</h1>`)

		b.WriteString(`<form method="get" action="` + helpers.LocalePath(data.Locale, "/cars") + `"`)
		b.WriteString(` hx-get="` + gridPath + `" hx-target="#car-grid" hx-swap="outerHTML"`)
		b.WriteString(` hx-trigger="submit, change from:find select, keyup delay:300ms from:find input"`)
		b.WriteString(` class="mt-6 flex flex-wrap items-center gap-3">`)

		b.WriteString(`<input type="search" name="q" value="` + templ.EscapeString(data.Query) + `" placeholder="`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "cars.searchPlaceholder")))
		b.WriteString(`" class="w-64 rounded-md border border-slate-300 px-3 py-2 text-sm"/>`)

		b.WriteString(`<select name="sort" class="rounded-md border border-slate-300 px-3 py-2 text-sm">`)
		for _, opt := range SortOptions(data.Locale) {
			b.WriteString(`<option value="` + opt.Key + `"`)
			if opt.Key == data.SortKey {
				b.WriteString(` selected`)
			}
			b.WriteString(`>` + templ.EscapeString(opt.Label) + `</option>`)
		}
		b.WriteString(`</select>`)

		b.WriteString(`<button type="submit" class="rounded-md bg-slate-900 px-4 py-2 text-sm font-medium text-white">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "cars.search")))
		b.WriteString(`</button></form>`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		return Grid(data).Render(ctx, w)
	})
}

// Grid renders only the results grid. It doubles as the htmx fragment
// response for filter and sort changes.
func Grid(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(data.Listings) == 0 {
			empty := `<div id="car-grid" class="mt-8 rounded-md border border-dashed border-slate-300 p-10 text-center text-sm text-slate-500" data-testid="empty-results">` +
				templ.EscapeString(i18n.T(data.Locale, "cars.empty")) + `</div>`
			_, err := io.WriteString(w, empty)
			return err
		}

		if _, err := io.WriteString(w, `<div id="car-grid" class="mt-8 grid gap-6 sm:grid-cols-2 lg:grid-cols-3" data-testid="car-grid">`); err != nil {
			return err
		}
		for _, listing := range data.Listings {
			if err := partials.ListingCard(listing, data.Locale).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// GridError replaces the grid when the fetch behind a fragment request
// fails, keeping the failure message in the visitor's locale.
func GridError(locale i18n.Locale) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		msg := `<div id="car-grid" class="mt-8 rounded-md border border-rose-200 bg-rose-50 p-10 text-center text-sm text-rose-700" data-testid="grid-error">` +
			templ.EscapeString(i18n.T(locale, "error.fetchFailed")) + `</div>`
		_, err := io.WriteString(w, msg)
		return err
	})
}
