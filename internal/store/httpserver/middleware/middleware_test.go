package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/kurumaya/storefront/internal/store/httpserver/middleware"
	"github.com/kurumaya/storefront/internal/store/i18n"
)

func TestLocaleMiddlewareResolvesSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		segment string
		want    i18n.Locale
	}{
		{name: "english", segment: "en", want: i18n.LocaleEN},
		{name: "japanese", segment: "ja", want: i18n.LocaleJA},
		{name: "unsupported defaults to japanese", segment: "fr", want: i18n.LocaleJA},
		{name: "regional japanese", segment: "ja-JP", want: i18n.LocaleJA},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got i18n.Locale
			router := chi.NewRouter()
			router.Route("/{locale}", func(r chi.Router) {
				r.Use(middleware.Locale())
				r.Get("/", func(w http.ResponseWriter, r *http.Request) {
					got = middleware.LocaleFromContext(r.Context())
					w.WriteHeader(http.StatusOK)
				})
			})

			req := httptest.NewRequest(http.MethodGet, "/"+tc.segment+"/", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLocaleFromContextDefault(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, i18n.LocaleJA, middleware.LocaleFromContext(req.Context()))
}

func TestRequestInfoMiddleware(t *testing.T) {
	t.Parallel()

	var path, query string
	handler := middleware.RequestInfoMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok := middleware.RequestInfoFromContext(r.Context())
		require.True(t, ok)
		path = info.Path
		query = info.RawQuery
	}))

	req := httptest.NewRequest(http.MethodGet, "/en/cars?q=civic&sort=latest", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "/en/cars", path)
	require.Equal(t, "q=civic&sort=latest", query)
}

func TestRequireHTMX(t *testing.T) {
	t.Parallel()

	handler := middleware.HTMX()(middleware.RequireHTMX()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// Direct navigation is hidden.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/grid", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// htmx requests pass.
	req := httptest.NewRequest(http.MethodGet, "/grid", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Values("Vary"), "HX-Request")
}
