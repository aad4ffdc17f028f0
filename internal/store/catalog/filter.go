package catalog

import (
	"sort"
	"strings"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

// FilterAndSort returns the listings matching the free-text query, ordered by
// the requested sort key. The query matches case-insensitively against the
// active-locale title only. An empty query matches everything; an unknown
// sort key keeps the fetched order. The input slice is never mutated.
func FilterAndSort(listings []Listing, query, sortKey string, locale i18n.Locale) []Listing {
	needle := strings.ToLower(strings.TrimSpace(query))

	result := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if needle == "" || strings.Contains(strings.ToLower(l.Title.In(locale)), needle) {
			result = append(result, l)
		}
	}

	switch sortKey {
	case SortLatest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Year > result[j].Year
		})
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	}

	return result
}

// Featured selects the home-page subset: the first n listings in fetched
// order, deliberately not of any sorted view.
func Featured(listings []Listing, n int) []Listing {
	if n < 0 {
		n = 0
	}
	if n > len(listings) {
		n = len(listings)
	}
	result := make([]Listing, n)
	copy(result, listings[:n])
	return result
}
