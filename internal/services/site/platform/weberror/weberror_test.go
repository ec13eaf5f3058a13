package weberror

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tftrival/site/internal/platform/i18n/catalog"
	module "github.com/tftrival/site/internal/services/site/module"
	apperrors "github.com/tftrival/site/internal/services/site/platform/errors"
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

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := testDependencies(t).Localizers.Localizer(language.French)
	err := apperrors.EK(apperrors.KindBadGateway, string(sitei18n.KeyAboutFeedbackError), "relay failed")
	want := sitei18n.T(loc, sitei18n.KeyAboutFeedbackError)
	if got := PublicMessage(loc, err); got != want {
		t.Fatalf("PublicMessage() = %q, want %q", got, want)
	}
}

func TestPublicMessageFallsBackToStatusMessage(t *testing.T) {
	t.Parallel()

	loc := testDependencies(t).Localizers.Localizer(language.English)
	err := apperrors.E(apperrors.KindNotFound, "missing")
	if got, want := PublicMessage(loc, err), sitei18n.T(loc, sitei18n.KeyLayoutErrorNotFound); got != want {
		t.Fatalf("PublicMessage() = %q, want %q", got, want)
	}
	if got := PublicMessage(nil, errors.New("boom")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil err) = %q", got)
	}
}

func TestPublicMessageIgnoresUnknownKey(t *testing.T) {
	t.Parallel()

	loc := testDependencies(t).Localizers.Localizer(language.English)
	err := apperrors.EK(apperrors.KindConflict, "no.such.key", "conflict")
	if got := PublicMessage(loc, err); got != http.StatusText(http.StatusConflict) {
		t.Fatalf("PublicMessage() = %q", got)
	}
}

func TestWriteErrorRendersPageWithMappedStatus(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	req := httptest.NewRequest(http.MethodGet, "/missing/deep", nil)
	rr := httptest.NewRecorder()
	WriteError(rr, req, apperrors.E(apperrors.KindNotFound, "no route"), deps)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-status="404"`) {
		t.Fatalf("body missing error page: %q", body)
	}
	if !strings.Contains(body, "<html") {
		t.Fatal("expected full layout")
	}
}

func TestStatusHandlerRendersKind(t *testing.T) {
	t.Parallel()

	deps := testDependencies(t)
	rr := httptest.NewRecorder()
	StatusHandler(apperrors.KindRateLimited, deps).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/about/feedback", nil))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
}
