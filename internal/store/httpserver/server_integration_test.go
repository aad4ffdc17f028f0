package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurumaya/storefront/internal/store/catalog"
	"github.com/kurumaya/storefront/internal/store/testutil"
)

func fetchDoc(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestRootRedirectsToJapanese(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(ts.URL + "/")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/ja", resp.Header.Get("Location"))
}

func TestHomeRendersFeaturedSubset(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithFeaturedCount(3))

	resp, body := fetchDoc(t, ts.URL+"/ja")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "ja", doc.Find("html").AttrOr("lang", ""))
	require.Contains(t, doc.Find("title").Text(), "クルマヤ")

	// Featured is the head of the fetched order, regardless of year or price.
	cards := doc.Find(`[data-testid="featured-grid"] [data-testid="listing-card"]`)
	require.Equal(t, 3, cards.Length())
	require.Equal(t, "1", cards.First().AttrOr("data-listing-id", ""))
}

func TestCarsPageEnglish(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := fetchDoc(t, ts.URL+"/en/cars")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Contains(t, doc.Find("h1").Text(), "Cars for Sale")
	require.Contains(t, doc.Find(`[data-testid="car-grid"]`).Text(), "Honda Civic")

	// Default ordering is latest: the 2022 Jimny leads.
	first := doc.Find(`[data-testid="listing-card"]`).First()
	require.Equal(t, "6", first.AttrOr("data-listing-id", ""))
}

func TestCarsPageFilterAndSort(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	_, body := fetchDoc(t, ts.URL+"/en/cars?q=honda&sort=price-low")
	doc := testutil.ParseHTML(t, body)

	cards := doc.Find(`[data-testid="listing-card"]`)
	require.Equal(t, 2, cards.Length())
	require.Equal(t, "2", cards.First().AttrOr("data-listing-id", ""), "Fit is the cheaper Honda")
	require.Equal(t, "3", cards.Last().AttrOr("data-listing-id", ""))
}

func TestLocaleSwitchKeepsFiltersApplied(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	_, body := fetchDoc(t, ts.URL+"/en/cars?q=honda&sort=price-low")
	doc := testutil.ParseHTML(t, body)

	// Switching language keeps the visitor on the same filtered view.
	href, _ := doc.Find(`[data-testid="locale-switch"]`).Attr("href")
	require.Equal(t, "/ja/cars?q=honda&sort=price-low", href)
}

func TestCarsPageEmptyResult(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	_, body := fetchDoc(t, ts.URL+"/ja/cars?q=lamborghini")
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`[data-testid="empty-results"]`).Length())
}

func TestUnsupportedLocaleFallsBackToJapanese(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := fetchDoc(t, ts.URL+"/fr/cars")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	// The page must resolve to Japanese, never to English.
	require.Equal(t, "ja", doc.Find("html").AttrOr("lang", ""))
	require.Contains(t, doc.Find("h1").Text(), "販売中の車両")
}

func TestDetailPage(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := fetchDoc(t, ts.URL+"/en/cars/3")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, "Honda Civic", doc.Find("h1").Text())
	require.Equal(t, "¥4,200,000", doc.Find(`[data-testid="price"]`).First().Text())
	require.Equal(t, "45,000 km", doc.Find(`[data-testid="mileage"]`).Text())
	// The Civic seed has no CMS specifications; the default set renders.
	require.Equal(t, 4, doc.Find(`[data-testid="specs-table"] tr`).Length())
}

func TestDetailPagePlaceholderImage(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	_, body := fetchDoc(t, ts.URL+"/ja/cars/4")
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`[data-testid="image-placeholder"]`).Length())
}

func TestDetailNotFound(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, body := fetchDoc(t, ts.URL+"/ja/cars/9999")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Contains(t, doc.Find(`[data-testid="error-message"]`).Text(), "お探しの車両が見つかりませんでした")

	href, _ := doc.Find(`[data-testid="error-recovery"]`).Attr("href")
	require.Equal(t, "/ja/cars", href)
}

func TestDetailNonNumericID(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, _ := fetchDoc(t, ts.URL+"/en/cars/abc")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFetchFailureRendersErrorState(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithCatalogService(failingCatalog{}))

	resp, body := fetchDoc(t, ts.URL+"/en/cars")
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`[data-testid="error-state"]`).Length())
	require.Contains(t, doc.Find(`[data-testid="error-message"]`).Text(), "could not load the listings")
	// No listing content alongside the error affordance.
	require.Equal(t, 0, doc.Find(`[data-testid="listing-card"]`).Length())
}

func TestGridFragmentRequiresHTMX(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	// Direct navigation is hidden.
	resp, _ := fetchDoc(t, ts.URL+"/ja/cars/grid")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// An htmx request gets the bare grid, no document chrome.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/ja/cars/grid?q=フィット", nil)
	require.NoError(t, err)
	req.Header.Set("HX-Request", "true")

	htmxResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer htmxResp.Body.Close()
	require.Equal(t, http.StatusOK, htmxResp.StatusCode)

	body, err := io.ReadAll(htmxResp.Body)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 0, doc.Find("html title").Length())
	require.Equal(t, 1, doc.Find(`[data-testid="listing-card"]`).Length())
	require.Contains(t, doc.Text(), "ホンダ フィット")
}

func TestGridFragmentFetchFailure(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t, testutil.WithCatalogService(failingCatalog{}))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/ja/cars/grid", nil)
	require.NoError(t, err)
	req.Header.Set("HX-Request", "true")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// The swapped-in fragment carries the failure message in the page locale.
	doc := testutil.ParseHTML(t, body)
	require.Equal(t, 1, doc.Find(`[data-testid="grid-error"]`).Length())
	require.Contains(t, doc.Find(`[data-testid="grid-error"]`).Text(), "車両情報を取得できませんでした")
	require.Equal(t, 0, doc.Find(`[data-testid="listing-card"]`).Length())
}

type failingCatalog struct{}

func (failingCatalog) List(context.Context) ([]catalog.Listing, error) {
	return nil, errors.New("cms unreachable")
}

func (failingCatalog) Get(context.Context, int) (catalog.Listing, error) {
	return catalog.Listing{}, errors.New("cms unreachable")
}
