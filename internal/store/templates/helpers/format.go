package helpers

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/kurumaya/storefront/internal/store/i18n"
)

// Yen renders a currency-agnostic integer price as Japanese yen for display.
// The mapper keeps prices as bare integers; the currency symbol is applied
// only here.
func Yen(price int, locale i18n.Locale) string {
	p := message.NewPrinter(locale.Tag())
	return p.Sprintf("¥%d", price)
}

// Year renders a model year, with a dash for the unknown sentinel. Years are
// never digit-grouped.
func Year(year int) string {
	if year <= 0 {
		return "—"
	}
	return strconv.Itoa(year)
}

// LocalePath builds a locale-prefixed path, e.g. LocalePath(ja, "/cars") ->
// "/ja/cars".
func LocalePath(locale i18n.Locale, rest string) string {
	if rest == "" || rest == "/" {
		return "/" + string(locale)
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return "/" + string(locale) + rest
}

// SwitchLocalePath rebuilds the current path under the other locale,
// preserving everything after the leading language segment.
func SwitchLocalePath(currentPath string, to i18n.Locale) string {
	trimmed := strings.TrimPrefix(currentPath, "/")
	if trimmed == "" {
		return "/" + string(to)
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "/" + string(to)
	}
	return "/" + string(to) + "/" + parts[1]
}

// SwitchLocaleURL rebuilds the full current URL, path plus query string,
// under the other locale so a language switch keeps the visitor's filters.
func SwitchLocaleURL(currentPath, rawQuery string, to i18n.Locale) string {
	path := SwitchLocalePath(currentPath, to)
	if rawQuery == "" {
		return path
	}
	return path + "?" + rawQuery
}

// NavClass returns header link classes.
func NavClass(active bool) string {
	if active {
		return "text-sm font-semibold text-slate-900 underline underline-offset-4"
	}
	return "text-sm font-medium text-slate-500 hover:text-slate-900"
}

// TextComponent returns a templ component that renders escaped plain text.
func TextComponent(value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(value))
		return err
	})
}
