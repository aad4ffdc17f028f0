package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

type localeContextKey struct{}

// Locale resolves the leading URL path segment into a supported locale and
// attaches it to the request context. The resolved value is the only locale
// state in the process; handlers and templates read it from the context
// instead of a mutable global.
func Locale() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hint := chi.URLParam(r, "locale")
			locale := i18n.Resolve(hint)
			ctx := context.WithValue(r.Context(), localeContextKey{}, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the locale resolved for the current request. The
// absence of a value falls back to Japanese, matching the resolver default.
func LocaleFromContext(ctx context.Context) i18n.Locale {
	if locale, ok := ctx.Value(localeContextKey{}).(i18n.Locale); ok {
		return locale
	}
	return i18n.LocaleJA
}
