// Package i18n adapts the translation catalogs to page rendering: typed keys,
// per-request localizers and list values.
package i18n

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/tftrival/site/internal/platform/i18n/catalog"
	"github.com/tftrival/site/internal/services/shared/i18nhttp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	xcatalog "golang.org/x/text/message/catalog"
)

// listSeparator joins the items of list-valued messages.
const listSeparator = "|"

// Localizer formats catalog messages for one language.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns the localized message for key.
func T(loc Localizer, key Key, args ...any) string {
	if loc == nil {
		return string(key)
	}
	return loc.Sprintf(string(key), args...)
}

// TOr returns the localized message for key, or fallback when the catalog
// has no usable value.
func TOr(loc Localizer, key Key, fallback string) string {
	value := strings.TrimSpace(T(loc, key))
	if value == "" || value == string(key) {
		return fallback
	}
	return value
}

// TList returns the items of a list-valued message.
func TList(loc Localizer, key Key) []string {
	raw := T(loc, key)
	if raw == string(key) {
		return nil
	}
	parts := strings.Split(raw, listSeparator)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Resolver builds localizers from a loaded catalog bundle.
type Resolver struct {
	catalog xcatalog.Catalog
}

// NewResolver checks that every locale in bundle defines every key and
// returns a resolver backed by it.
func NewResolver(bundle *catalog.Bundle) (*Resolver, error) {
	if bundle == nil {
		return nil, fmt.Errorf("catalog bundle is required")
	}
	keys := AllKeys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = string(key)
	}
	if missing := bundle.MissingKeys(names); len(missing) > 0 {
		locales := make([]string, 0, len(missing))
		for locale := range missing {
			locales = append(locales, locale)
		}
		sort.Strings(locales)
		details := make([]string, 0, len(locales))
		for _, locale := range locales {
			details = append(details, locale+": "+strings.Join(missing[locale], ", "))
		}
		return nil, fmt.Errorf("catalog is missing keys (%s)", strings.Join(details, "; "))
	}
	builder, err := bundle.Builder()
	if err != nil {
		return nil, fmt.Errorf("build message catalog: %w", err)
	}
	return &Resolver{catalog: builder}, nil
}

// Localizer returns a printer for tag.
func (r *Resolver) Localizer(tag language.Tag) *message.Printer {
	if r == nil {
		return i18nhttp.Printer(tag, nil)
	}
	return i18nhttp.Printer(tag, r.catalog)
}

// ResolveLocalizer picks the request language, persisting an explicit
// ?lang= choice as a cookie, and returns its printer.
func (r *Resolver) ResolveLocalizer(w http.ResponseWriter, req *http.Request) (*message.Printer, language.Tag) {
	tag, persist := i18nhttp.ResolveTag(req)
	if persist {
		i18nhttp.SetLanguageCookie(w, tag)
	}
	return r.Localizer(tag), tag
}
