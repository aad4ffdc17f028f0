package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

// RawListing is the CMS-owned record shape. Numeric fields arrive either as
// JSON numbers or as strings depending on how the record was entered, so they
// decode as any and are normalised by the formatters.
type RawListing struct {
	ID             int             `json:"id"`
	TitleEN        string          `json:"title_en"`
	TitleJA        string          `json:"title_ja"`
	Price          any             `json:"price"`
	Year           int             `json:"year"`
	MileageEN      any             `json:"mileage_en"`
	MileageJA      any             `json:"mileage_ja"`
	Image          []RawImage      `json:"image"`
	DescriptionEN  string          `json:"description_en"`
	DescriptionJA  string          `json:"description_ja"`
	Specifications json.RawMessage `json:"specifications"`
}

// RawImage is an associated CMS media record. URLs are relative to the CMS
// origin.
type RawImage struct {
	URL string `json:"url"`
}

// defaultDescription is the fixed fallback shown when a listing carries no
// description of its own.
var defaultDescription = BiText{
	EN: "Contact us for more details about this vehicle.",
	JA: "この車両の詳細はお問い合わせください。",
}

// MapListing transforms one raw CMS record into the Listing view model. It is
// pure: all I/O has already happened by the time it runs. A malformed
// specifications payload degrades only that section — the listing still maps
// with the default set, and ErrMalformedSpecifications is returned alongside
// it so callers can surface the failure without dropping the record.
func MapListing(raw RawListing, baseURL string) (Listing, error) {
	listing := Listing{
		ID:    raw.ID,
		Title: bilingual(raw.TitleEN, raw.TitleJA),
		Price: ParsePrice(raw.Price),
		Year:  raw.Year,
		Mileage: bilingual(
			FormatMileage(raw.MileageEN, i18n.LocaleEN),
			FormatMileage(raw.MileageJA, i18n.LocaleJA),
		),
		ImageURL:    resolveImageURL(raw.Image, baseURL),
		Description: bilingualOr(raw.DescriptionEN, raw.DescriptionJA, defaultDescription),
	}
	listing.ShortDescription = shorten(listing.Description)

	specs, err := ResolveSpecifications(raw.Specifications)
	if err != nil {
		listing.Specifications = DefaultSpecifications()
		listing.SpecsFailed = true
		return listing, fmt.Errorf("listing %d: %w", raw.ID, err)
	}
	listing.Specifications = specs
	return listing, nil
}

// bilingual builds a BiText whose members are both always populated: a
// missing locale borrows the other locale's text, and a field missing in both
// languages reads "N/A". This is the single fallback point — render paths
// never apply their own.
func bilingual(en, ja string) BiText {
	en = strings.TrimSpace(en)
	ja = strings.TrimSpace(ja)
	switch {
	case en == "" && ja == "":
		return BiText{EN: "N/A", JA: "N/A"}
	case en == "":
		return BiText{EN: ja, JA: ja}
	case ja == "":
		return BiText{EN: en, JA: en}
	default:
		return BiText{EN: en, JA: ja}
	}
}

// bilingualOr is bilingual with a listing-independent default instead of
// "N/A", used for descriptions.
func bilingualOr(en, ja string, fallback BiText) BiText {
	if strings.TrimSpace(en) == "" && strings.TrimSpace(ja) == "" {
		return fallback
	}
	return bilingual(en, ja)
}

const shortDescriptionRunes = 80

// shorten derives the card-sized description from the full one.
func shorten(full BiText) BiText {
	return BiText{
		EN: truncateRunes(full.EN, shortDescriptionRunes),
		JA: truncateRunes(full.JA, shortDescriptionRunes),
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// resolveImageURL joins the first associated image with the CMS origin. A
// listing without an image resolves to the empty string; the renderer shows a
// placeholder instead of attempting a fetch.
func resolveImageURL(images []RawImage, baseURL string) string {
	for _, img := range images {
		rel := strings.TrimSpace(img.URL)
		if rel == "" {
			continue
		}
		if strings.HasPrefix(rel, "http://") || strings.HasPrefix(rel, "https://") {
			return rel
		}
		base := strings.TrimRight(baseURL, "/")
		if !strings.HasPrefix(rel, "/") {
			rel = "/" + rel
		}
		return base + rel
	}
	return ""
}
