package partials

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

// LayoutData wraps a page body with the shared document chrome.
type LayoutData struct {
	Locale       i18n.Locale
	Title        string
	CurrentPath  string
	CurrentQuery string
	Content      templ.Component
}

// Layout renders the full HTML document around the page content.
func Layout(data LayoutData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var head strings.Builder
		head.WriteString(`<!DOCTYPE html><html lang="` + string(data.Locale) + `"><head><meta charset="utf-8"/>`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		head.WriteString(`<title>`)
		head.WriteString(templ.EscapeString(data.Title + " | " + i18n.T(data.Locale, "site.name")))
		head.WriteString(`</title>`)
		head.WriteString(`<link rel="stylesheet" href="/public/static/app.css"/>`)
		head.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`)
		head.WriteString(`</head><body class="min-h-screen bg-slate-50 text-slate-900">`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}

		nav := NavData{
			Locale:       data.Locale,
			CurrentPath:  data.CurrentPath,
			CurrentQuery: data.CurrentQuery,
		}
		if err := Nav(nav).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main class="mx-auto max-w-5xl px-4 py-8">`); err != nil {
			return err
		}
		if data.Content != nil {
			if err := data.Content.Render(ctx, w); err != nil {
				return err
			}
		}

		var foot strings.Builder
		foot.WriteString(`</main><footer class="border-t border-slate-200 py-6 text-center text-xs text-slate-400">`)
		foot.WriteString(templ.EscapeString(i18n.T(data.Locale, "site.tagline")))
		foot.WriteString(`</footer></body></html>`)
		_, err := io.WriteString(w, foot.String())
		return err
	})
}
