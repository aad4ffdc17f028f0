package httpserver

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/kurumaya/storefront/internal/store/catalog"
	custommw "github.com/kurumaya/storefront/internal/store/httpserver/middleware"
	"github.com/kurumaya/storefront/internal/store/httpserver/ui"
	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/public"
)

// Config holds runtime options for the storefront HTTP server.
type Config struct {
	Address        string
	CatalogService catalog.Service
	FeaturedCount  int
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(30 * time.Second))

	staticContent, err := public.StaticFS()
	if err != nil {
		log.Fatalf("embed static: %v", err)
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	handlers := ui.NewHandlers(ui.Dependencies{
		Catalog:       cfg.CatalogService,
		FeaturedCount: cfg.FeaturedCount,
	})

	// The bare root has no language signal; it lands on the Japanese default,
	// the same fallback the locale resolver applies.
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/"+string(i18n.LocaleJA), http.StatusFound)
	})

	// The locale segment is not constrained in the route pattern: an
	// unsupported value like /fr/cars still serves the page, resolved to the
	// Japanese default.
	router.Route("/{locale}", func(r chi.Router) {
		r.Use(custommw.Locale())
		r.Use(custommw.RequestInfoMiddleware())
		r.Use(custommw.HTMX())

		r.Get("/", handlers.Home)
		r.Get("/cars", handlers.Cars)
		r.With(custommw.RequireHTMX()).Get("/cars/grid", handlers.CarsGrid)
		r.Get("/cars/{id}", handlers.Detail)
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
