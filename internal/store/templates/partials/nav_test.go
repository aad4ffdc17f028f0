package partials_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kurumaya/storefront/internal/store/i18n"
	"github.com/kurumaya/storefront/internal/store/templates/partials"
	"github.com/kurumaya/storefront/internal/store/testutil"
)

func TestNavJapanese(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := partials.Nav(partials.NavData{Locale: i18n.LocaleJA, CurrentPath: "/ja/cars"}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, buf.Bytes())
	require.Equal(t, "クルマヤ", doc.Find("header a").First().Text())
	require.Contains(t, doc.Find("nav").Text(), "車両一覧")

	// The switcher keeps the current page, in the other locale.
	switcher := doc.Find(`[data-testid="locale-switch"]`)
	href, _ := switcher.Attr("href")
	require.Equal(t, "/en/cars", href)
	require.Equal(t, "EN", switcher.Text())
}

func TestNavSwitcherKeepsQuery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	data := partials.NavData{
		Locale:       i18n.LocaleEN,
		CurrentPath:  "/en/cars",
		CurrentQuery: "q=honda&sort=price-low",
	}
	err := partials.Nav(data).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, buf.Bytes())
	href, _ := doc.Find(`[data-testid="locale-switch"]`).Attr("href")
	require.Equal(t, "/ja/cars?q=honda&sort=price-low", href)
}

func TestNavEnglish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := partials.Nav(partials.NavData{Locale: i18n.LocaleEN, CurrentPath: "/en"}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc := testutil.ParseHTML(t, buf.Bytes())
	require.Contains(t, doc.Find("nav").Text(), "Cars")

	switcher := doc.Find(`[data-testid="locale-switch"]`)
	href, _ := switcher.Attr("href")
	require.Equal(t, "/ja", href)
	require.Equal(t, "日本語", switcher.Text())
}
