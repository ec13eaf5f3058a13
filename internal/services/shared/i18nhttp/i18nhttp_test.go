package i18nhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrefersQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=fr", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	tag, persist := ResolveTag(req)
	if tag != language.French {
		t.Fatalf("tag = %v, want %v", tag, language.French)
	}
	if !persist {
		t.Fatal("persist = false, want true")
	}
}

func TestResolveTagUsesCookieThenAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "fr"})
	req.Header.Set("Accept-Language", "en-US")
	if tag, persist := ResolveTag(req); tag != language.French || persist {
		t.Fatalf("cookie ResolveTag() = %v, %v", tag, persist)
	}

	req = httptest.NewRequest(http.MethodGet, "http://example.com/?lang=xx", nil)
	req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9")
	if tag, persist := ResolveTag(req); tag != language.French || persist {
		t.Fatalf("accept ResolveTag() = %v, %v", tag, persist)
	}

	if tag, _ := ResolveTag(httptest.NewRequest(http.MethodGet, "http://example.com/", nil)); tag != language.English {
		t.Fatalf("default ResolveTag() = %v", tag)
	}
	if tag, _ := ResolveTag(nil); tag != language.English {
		t.Fatalf("nil ResolveTag() = %v", tag)
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.French)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != LangCookieName || cookie.Value != "fr" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if cookie.MaxAge != int(LangCookieMaxAge.Seconds()) {
		t.Fatalf("MaxAge = %d", cookie.MaxAge)
	}
}

func TestBuildLanguageOptions(t *testing.T) {
	t.Parallel()

	options := BuildLanguageOptions("fr", "/commands", "tab=bug", func(tag language.Tag) string { return tag.String() + "-label" })
	if len(options) != 2 {
		t.Fatalf("len(options) = %d, want 2", len(options))
	}
	if options[0].Active || !options[1].Active {
		t.Fatalf("active = %v/%v, want fr active", options[0].Active, options[1].Active)
	}
	if options[0].Label != "en-label" {
		t.Fatalf("Label = %q", options[0].Label)
	}
	if options[1].URL != "/commands?lang=fr&tab=bug" {
		t.Fatalf("URL = %q", options[1].URL)
	}
}

func TestLanguageURL(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("", "", "en"); got != "/?lang=en" {
		t.Fatalf("LanguageURL = %q", got)
	}
	if got := LanguageURL("/about", "lang=fr&tab=feedback", "en"); got != "/about?lang=en&tab=feedback" {
		t.Fatalf("LanguageURL = %q", got)
	}
}

func TestLanguageKeyLabel(t *testing.T) {
	t.Parallel()

	if got := LanguageKeyLabel(language.French); got != "nav.language.fr" {
		t.Fatalf("LanguageKeyLabel = %q", got)
	}
}
