package home

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tftrival/site/internal/platform/i18n/catalog"
	module "github.com/tftrival/site/internal/services/site/module"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"golang.org/x/text/language"
)

func testDependencies(t *testing.T) module.Dependencies {
	t.Helper()
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	resolver, err := sitei18n.NewResolver(bundle)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	return module.Dependencies{Localizers: resolver, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func serve(t *testing.T, deps module.Dependencies, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestMountServesHomeWithDefaultInvite(t *testing.T) {
	t.Parallel()

	rr := serve(t, testDependencies(t), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "client_id=1326430140515100702") {
		t.Fatal("expected default invite url")
	}
	if !strings.Contains(rr.Body.String(), `id="home"`) {
		t.Fatal("expected home main element")
	}
}

func TestMountUsesConfiguredInvite(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	deps.InviteURL = "https://discord.example/invite"
	rr := serve(t, deps, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(rr.Body.String(), `href="https://discord.example/invite"`) {
		t.Fatal("expected configured invite url")
	}
}

func TestMountRendersFrenchFromQueryAndPersistsCookie(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	rr := serve(t, deps, httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
	if !strings.Contains(rr.Body.String(), `<html lang="fr"`) {
		t.Fatal("expected french document")
	}
	want := sitei18n.T(deps.Localizers.Localizer(language.French), sitei18n.KeyHomeHeroInviteButton)
	if !strings.Contains(rr.Body.String(), want) {
		t.Fatalf("expected french hero %q", want)
	}
	if cookie := rr.Header().Get("Set-Cookie"); !strings.Contains(cookie, "tftrival_lang=fr") {
		t.Fatalf("Set-Cookie = %q", cookie)
	}
}

func TestUnknownSingleSegmentRendersHome(t *testing.T) {
	t.Parallel()

	rr := serve(t, testDependencies(t), httptest.NewRequest(http.MethodGet, "/whatever", nil))
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `id="home"`) {
		t.Fatalf("status = %d, want home page", rr.Code)
	}
}

func TestKnownPageSegmentRedirectsToRoute(t *testing.T) {
	t.Parallel()

	rr := serve(t, testDependencies(t), httptest.NewRequest(http.MethodGet, "/ABOUT?lang=fr", nil))
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMovedPermanently)
	}
	if got := rr.Header().Get("Location"); got != "/about?lang=fr" {
		t.Fatalf("Location = %q", got)
	}
}

func TestDeepUnknownPathIsNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, testDependencies(t), httptest.NewRequest(http.MethodGet, "/a/b", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRootRejectsNonGet(t *testing.T) {
	t.Parallel()

	rr := serve(t, testDependencies(t), httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q", got)
	}
}
