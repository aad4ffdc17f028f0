package ui

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/kurumaya/storefront/internal/store/catalog"
	custommw "github.com/kurumaya/storefront/internal/store/httpserver/middleware"
	"github.com/kurumaya/storefront/internal/store/i18n"
	carstpl "github.com/kurumaya/storefront/internal/store/templates/cars"
	detailtpl "github.com/kurumaya/storefront/internal/store/templates/detail"
	"github.com/kurumaya/storefront/internal/store/templates/errorpage"
	hometpl "github.com/kurumaya/storefront/internal/store/templates/home"
	"github.com/kurumaya/storefront/internal/store/templates/partials"
)

// DefaultFeaturedCount is the home-page subset size when not configured.
const DefaultFeaturedCount = 4

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	Catalog       catalog.Service
	FeaturedCount int
}

// Handlers exposes HTTP handlers for the storefront pages and fragments.
type Handlers struct {
	catalog  catalog.Service
	featured int
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	service := deps.Catalog
	if service == nil {
		service = catalog.NewStaticService()
	}
	featured := deps.FeaturedCount
	if featured <= 0 {
		featured = DefaultFeaturedCount
	}
	return &Handlers{
		catalog:  service,
		featured: featured,
	}
}

// Home renders the landing page with the featured subset: the first N
// listings in fetched order, not of any sorted view.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	locale := custommw.LocaleFromContext(r.Context())

	listings, err := h.catalog.List(r.Context())
	if err != nil {
		log.Printf("ui: home fetch failed: %v", err)
		h.renderError(w, r, http.StatusBadGateway, i18n.T(locale, "error.fetchFailed"))
		return
	}

	data := hometpl.PageData{
		Locale:      locale,
		CurrentPath: r.URL.Path,
		Featured:    catalog.Featured(listings, h.featured),
	}
	h.renderPage(w, r, http.StatusOK, i18n.T(locale, "nav.home"), hometpl.Index(data))
}

// Cars renders the full listing page with search and sort controls applied.
func (h *Handlers) Cars(w http.ResponseWriter, r *http.Request) {
	locale := custommw.LocaleFromContext(r.Context())

	data, err := h.carsData(r)
	if err != nil {
		log.Printf("ui: cars fetch failed: %v", err)
		h.renderError(w, r, http.StatusBadGateway, i18n.T(locale, "error.fetchFailed"))
		return
	}
	h.renderPage(w, r, http.StatusOK, i18n.T(locale, "cars.heading"), carstpl.Index(data))
}

// CarsGrid serves the htmx fragment: just the results grid for the current
// query and sort.
func (h *Handlers) CarsGrid(w http.ResponseWriter, r *http.Request) {
	locale := custommw.LocaleFromContext(r.Context())

	data, err := h.carsData(r)
	if err != nil {
		log.Printf("ui: grid fetch failed: %v", err)
		templ.Handler(carstpl.GridError(locale), templ.WithStatus(http.StatusBadGateway)).ServeHTTP(w, r)
		return
	}
	templ.Handler(carstpl.Grid(data)).ServeHTTP(w, r)
}

func (h *Handlers) carsData(r *http.Request) (carstpl.PageData, error) {
	locale := custommw.LocaleFromContext(r.Context())

	query := r.URL.Query().Get("q")
	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = catalog.SortLatest
	}

	listings, err := h.catalog.List(r.Context())
	if err != nil {
		return carstpl.PageData{}, err
	}

	return carstpl.PageData{
		Locale:      locale,
		CurrentPath: r.URL.Path,
		Query:       query,
		SortKey:     sortKey,
		Listings:    catalog.FilterAndSort(listings, query, sortKey, locale),
	}, nil
}

// Detail renders one listing. A malformed specifications payload degrades
// only that section; the page itself still renders.
func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request) {
	locale := custommw.LocaleFromContext(r.Context())

	rawID := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.Atoi(rawID)
	if rawID == "" || err != nil {
		h.renderError(w, r, http.StatusNotFound, i18n.T(locale, "error.notFound"))
		return
	}

	listing, err := h.catalog.Get(r.Context(), id)
	switch {
	case err == nil || errors.Is(err, catalog.ErrMalformedSpecifications):
		if err != nil {
			log.Printf("ui: detail %d: %v", id, err)
		}
	case errors.Is(err, catalog.ErrListingNotFound):
		h.renderError(w, r, http.StatusNotFound, i18n.T(locale, "error.notFound"))
		return
	default:
		log.Printf("ui: detail fetch failed: %v", err)
		h.renderError(w, r, http.StatusBadGateway, i18n.T(locale, "error.fetchFailed"))
		return
	}

	data := detailtpl.PageData{
		Locale:      locale,
		CurrentPath: r.URL.Path,
		Listing:     listing,
	}
	h.renderPage(w, r, http.StatusOK, listing.Title.In(locale), detailtpl.Index(data))
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, status int, title string, content templ.Component) {
	locale := custommw.LocaleFromContext(r.Context())

	// The language switcher rebuilds the current URL from the request info,
	// so an active search or sort survives the switch.
	var rawQuery string
	if info, ok := custommw.RequestInfoFromContext(r.Context()); ok {
		rawQuery = info.RawQuery
	}

	page := partials.Layout(partials.LayoutData{
		Locale:       locale,
		Title:        title,
		CurrentPath:  r.URL.Path,
		CurrentQuery: rawQuery,
		Content:      content,
	})
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	locale := custommw.LocaleFromContext(r.Context())
	body := errorpage.Index(errorpage.PageData{
		Locale:  locale,
		Message: message,
	})
	h.renderPage(w, r, status, i18n.T(locale, "error.heading"), body)
}
