package detail

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/helpers"
)

// Index renders the detail page body for one listing.
func Index(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		l := data.Listing
		loc := data.Locale

		var b strings.Builder
		b.WriteString(`<div class="grid gap-8 lg:grid-cols-2">`)

		if l.ImageURL != "" {
			b.WriteString(`<img src="` + templ.EscapeString(l.ImageURL) + `" alt="` + templ.EscapeString(l.Title.In(loc)) + `" class="w-full rounded-lg object-cover"/>`)
		} else {
			b.WriteString(`<div class="flex min-h-64 w-full items-center justify-center rounded-lg bg-slate-100 text-slate-400" data-testid="image-placeholder">`)
			b.WriteString(templ.EscapeString(i18n.T(loc, "image.placeholder")))
			b.WriteString(`</div>`)
		}

		b.WriteString(`<div><h1 class="text-3xl font-bold">`)
		b.WriteString(templ.EscapeString(l.Title.In(loc)))
		b.WriteString(`</h1>`)
		b.WriteString(`<p class="mt-3 text-2xl font-bold text-rose-600" data-testid="price">`)
		b.WriteString(templ.EscapeString(helpers.Yen(l.Price, loc)))
		b.WriteString(`</p>`)

		b.WriteString(`<dl class="mt-6 grid grid-cols-2 gap-x-6 gap-y-2 text-sm">`)
		b.WriteString(`<dt class="text-slate-500">` + templ.EscapeString(i18n.T(loc, "detail.year")) + `</dt>`)
		b.WriteString(`<dd data-testid="year">` + templ.EscapeString(helpers.Year(l.Year)) + `</dd>`)
		b.WriteString(`<dt class="text-slate-500">` + templ.EscapeString(i18n.T(loc, "detail.mileage")) + `</dt>`)
		b.WriteString(`<dd data-testid="mileage">` + templ.EscapeString(l.Mileage.In(loc)) + `</dd>`)
		b.WriteString(`</dl>`)

		b.WriteString(`<p class="mt-6 text-sm leading-relaxed text-slate-700">`)
		b.WriteString(templ.EscapeString(l.Description.In(loc)))
		b.WriteString(`</p>`)

		b.WriteString(`<h2 class="mt-8 text-lg font-semibold">`)
		b.WriteString(templ.EscapeString(i18n.T(loc, "detail.specifications")))
		b.WriteString(`</h2>`)

		if l.SpecsFailed {
			b.WriteString(`<p class="mt-2 rounded-md bg-amber-50 p-3 text-sm text-amber-700" data-testid="specs-error">`)
			b.WriteString(templ.EscapeString(i18n.T(loc, "detail.specsUnavailable")))
			b.WriteString(`</p>`)
		} else {
			b.WriteString(`<table class="mt-2 w-full text-sm" data-testid="specs-table"><tbody>`)
			for _, spec := range l.Specifications {
				b.WriteString(`<tr class="border-b border-slate-100">`)
				b.WriteString(`<th class="py-2 pr-4 text-left font-medium text-slate-500">` + templ.EscapeString(spec.Name) + `</th>`)
				b.WriteString(`<td class="py-2">` + templ.EscapeString(spec.Value.In(loc)) + `</td>`)
				b.WriteString(`</tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}

		b.WriteString(`<a href="` + helpers.LocalePath(loc, "/cars") + `" class="mt-8 inline-block text-sm font-medium text-rose-600 hover:underline">`)
		b.WriteString(templ.EscapeString(i18n.T(loc, "error.backToCars")))
		b.WriteString(`</a>`)

		b.WriteString(`</div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
