package errorpage

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/helpers"
)

// PageData is the failed-state payload: a locale-aware message and a way back.
type PageData struct {
	Locale  i18n.Locale
	Message string
}

// Index renders the failed state shown in place of listing content. It always
// offers a recovery link; there is no automatic retry.
func Index(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="mx-auto max-w-md py-16 text-center" data-testid="error-state">`)
		b.WriteString(`<h1 class="text-2xl font-bold">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "error.heading")))
		b.WriteString(`</h1>`)
		b.WriteString(`<p class="mt-4 text-sm text-slate-600" data-testid="error-message">`)
		b.WriteString(templ.EscapeString(data.Message))
		b.WriteString(`</p>`)
		b.WriteString(`<a href="` + helpers.LocalePath(data.Locale, "/cars") + `" class="mt-8 inline-block rounded-md bg-slate-900 px-4 py-2 text-sm font-medium text-white" data-testid="error-recovery">`)
		b.WriteString(templ.EscapeString(i18n.T(data.Locale, "error.backToCars")))
		b.WriteString(`</a></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
