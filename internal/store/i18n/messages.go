package i18n

// messages holds the storefront chrome strings. Listing content itself is
// bilingual at the data level (catalog.BiText); this bundle only covers the
// surrounding UI.
var messages = map[string]map[Locale]string{
	"site.name": {
		LocaleEN: "Kurumaya",
		LocaleJA: "クルマヤ",
	},
	"site.tagline": {
		LocaleEN: "Quality used cars, shipped worldwide",
		LocaleJA: "良質な中古車を世界へ",
	},
	"nav.home": {
		LocaleEN: "Home",
		LocaleJA: "ホーム",
	},
	"nav.cars": {
		LocaleEN: "Cars",
		LocaleJA: "車両一覧",
	},
	"home.featured": {
		LocaleEN: "Featured Cars",
		LocaleJA: "おすすめの車両",
	},
	"home.viewAll": {
		LocaleEN: "View all cars",
		LocaleJA: "すべての車両を見る",
	},
	"cars.heading": {
		LocaleEN: "Cars for Sale",
		LocaleJA: "販売中の車両",
	},
	"cars.searchPlaceholder": {
		LocaleEN: "Search by model...",
		LocaleJA: "車種名で検索...",
	},
	"cars.search": {
		LocaleEN: "Search",
		LocaleJA: "検索",
	},
	"cars.empty": {
		LocaleEN: "No cars matched your search.",
		LocaleJA: "条件に合う車両が見つかりませんでした。",
	},
	"sort.latest": {
		LocaleEN: "Latest",
		LocaleJA: "新しい順",
	},
	"sort.priceLow": {
		LocaleEN: "Price: Low to High",
		LocaleJA: "価格が安い順",
	},
	"sort.priceHigh": {
		LocaleEN: "Price: High to Low",
		LocaleJA: "価格が高い順",
	},
	"detail.specifications": {
		LocaleEN: "Specifications",
		LocaleJA: "スペック",
	},
	"detail.specsUnavailable": {
		LocaleEN: "Specifications could not be loaded for this car.",
		LocaleJA: "この車両のスペック情報を読み込めませんでした。",
	},
	"detail.price": {
		LocaleEN: "Price",
		LocaleJA: "価格",
	},
	"detail.year": {
		LocaleEN: "Year",
		LocaleJA: "年式",
	},
	"detail.mileage": {
		LocaleEN: "Mileage",
		LocaleJA: "走行距離",
	},
	"detail.inquire": {
		LocaleEN: "Inquire about this car",
		LocaleJA: "この車両について問い合わせる",
	},
	"image.placeholder": {
		LocaleEN: "No image",
		LocaleJA: "画像なし",
	},
	"error.heading": {
		LocaleEN: "Something went wrong",
		LocaleJA: "エラーが発生しました",
	},
	"error.fetchFailed": {
		LocaleEN: "We could not load the listings. Please try again shortly.",
		LocaleJA: "車両情報を取得できませんでした。しばらくしてから再度お試しください。",
	},
	"error.notFound": {
		LocaleEN: "The car you are looking for could not be found.",
		LocaleJA: "お探しの車両が見つかりませんでした。",
	},
	"error.backToCars": {
		LocaleEN: "Back to all cars",
		LocaleJA: "車両一覧に戻る",
	},
}

// T looks up a chrome string for the given locale. Unknown keys return the
// key itself so a missing entry is visible rather than blank.
func T(locale Locale, key string) string {
	entry, ok := messages[key]
	if !ok {
		return key
	}
	if value, ok := entry[locale]; ok && value != "" {
		return value
	}
	// Bundle entries always carry Japanese; this is the same default the
	// locale resolver applies.
	return entry[LocaleJA]
}
