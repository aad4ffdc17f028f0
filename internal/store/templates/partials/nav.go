package partials

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/helpers"
)

// NavData feeds the shared page header.
type NavData struct {
	Locale       i18n.Locale
	CurrentPath  string
	CurrentQuery string
}

// Nav renders the site header: brand link, section links, and the language
// switcher, which keeps the visitor on the same page in the other locale.
func Nav(data NavData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		homePath := helpers.LocalePath(data.Locale, "")
		carsPath := helpers.LocalePath(data.Locale, "/cars")

		homeActive := data.CurrentPath == homePath || data.CurrentPath == homePath+"/"
		carsActive := strings.HasPrefix(data.CurrentPath, carsPath)

		other := data.Locale.Other()
		switchLabel := "EN"
		if other == i18n.LocaleJA {
			switchLabel = "日本語"
		}

		var b strings.Builder
		b.WriteString(`<header class="border-b border-slate-200 bg-white"><div class="mx-auto flex max-w-5xl items-center justify-between px-4 py-4">`)
		b.WriteString(`<a href="` + homePath + `" class="text-lg font-bold text-slate-900">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "site.name")))
		b.WriteString(`</a><nav class="flex items-center gap-6">`)
		b.WriteString(`<a href="` + homePath + `" class="` + helpers.NavClass(homeActive) + `">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "nav.home")))
		b.WriteString(`</a>`)
		b.WriteString(`<a href="` + carsPath + `" class="` + helpers.NavClass(carsActive) + `">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "nav.cars")))
		b.WriteString(`</a>`)
		switchHref := helpers.SwitchLocaleURL(data.CurrentPath, data.CurrentQuery, other)
		b.WriteString(`<a href="` + templ.EscapeString(switchHref) + `" rel="alternate" hreflang="` + string(other) + `" class="rounded border border-slate-300 px-2 py-1 text-xs font-medium text-slate-600 hover:bg-slate-100" data-testid="locale-switch">`)
		b.WriteString(templ.EscapeString(switchLabel))
		b.WriteString(`</a></nav></div></header>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
