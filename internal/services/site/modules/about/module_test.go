package about

import (
	"bytes"
	"context"
	"errors"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tftrival/site/internal/platform/i18n/catalog"
	"github.com/tftrival/site/internal/services/site/contact"
	module "github.com/tftrival/site/internal/services/site/module"
	apperrors "github.com/tftrival/site/internal/services/site/platform/errors"
	"github.com/tftrival/site/internal/services/site/platform/flash"
	"github.com/tftrival/site/internal/services/site/platform/httpx"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	"github.com/tftrival/site/internal/services/site/templates"
	"golang.org/x/text/language"
)

const testOrigin = "http://example.com"

type recordingRelay struct {
	mu   sync.Mutex
	sent []contact.Email
	err  error
}

func (r *recordingRelay) Send(_ context.Context, email contact.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, email)
	return r.err
}

func (r *recordingRelay) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func testDependencies(t *testing.T, relay contact.Relay) (module.Dependencies, *testClock) {
	t.Helper()
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	resolver, err := sitei18n.NewResolver(bundle)
	if err != nil {
		t.Fatalf("NewResolver() error = %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := &testClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	deps := module.Dependencies{
		Localizers: resolver,
		Logger:     logger,
		Now:        clock.Now,
	}
	if relay != nil {
		deps.Feedback = contact.NewSubmitter(relay, contact.SubmitterConfig{
			Credentials: contact.Credentials{ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"},
			Logger:      logger,
		})
	}
	return deps, clock
}

func mount(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	m, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return m.Handler
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", testOrigin)
	return req
}

func feedbackValues() url.Values {
	return url.Values{
		templates.FieldSubmissionID: {"6f1c7a4e-8a57-4b0b-9d5e-7c1f7b5f2c11"},
		templates.FieldName:         {"Ana"},
		templates.FieldEmail:        {"ana@example.com"},
		templates.FieldMessage:      {"Love the rankings"},
	}
}

func bugValues() url.Values {
	return url.Values{
		templates.FieldName:        {"Ana"},
		templates.FieldEmail:       {"ana@example.com"},
		templates.FieldTitle:       {"Stale rank"},
		templates.FieldDescription: {"Rank did not refresh"},
		templates.FieldSteps:       {"Run !rank"},
	}
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestModuleIDReturnsAbout(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "about" {
		t.Fatalf("ID() = %q, want %q", got, "about")
	}
}

func TestAboutPageDefaultsToBugTab(t *testing.T) {
	t.Parallel()

	deps, _ := testDependencies(t, &recordingRelay{})
	rr := serve(mount(t, deps), httptest.NewRequest(http.MethodGet, routepath.About, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="panel-feedback" role="tabpanel" data-tab-panel="feedback" hidden`) {
		t.Fatal("feedback panel should be hidden by default")
	}
	if !strings.Contains(body, `name="submission_id"`) {
		t.Fatal("expected submission id input")
	}
	if strings.Contains(body, "https://github.com") {
		t.Fatal("empty developer links should not render")
	}
}

func TestAboutPageHonorsTabQuery(t *testing.T) {
	t.Parallel()

	deps, _ := testDependencies(t, &recordingRelay{})
	rr := serve(mount(t, deps), httptest.NewRequest(http.MethodGet, routepath.AboutPrefix+"?tab=feedback", nil))
	if !strings.Contains(rr.Body.String(), `id="panel-bug" role="tabpanel" data-tab-panel="bug" hidden`) {
		t.Fatal("bug panel should be hidden on the feedback tab")
	}
}

func TestFeedbackSuccessRedirectsAndShowsBannerForWindow(t *testing.T) {
	t.Parallel()

	relay := &recordingRelay{}
	deps, clock := testDependencies(t, relay)
	handler := mount(t, deps)

	rr := serve(handler, postForm(routepath.AboutFeedback, feedbackValues()))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusSeeOther, rr.Body.String())
	}
	if got := rr.Header().Get("Location"); got != routepath.AboutContact(routepath.TabFeedback) {
		t.Fatalf("Location = %q", got)
	}
	if relay.calls() != 1 {
		t.Fatalf("relay calls = %d, want 1", relay.calls())
	}
	if got := relay.sent[0].Params; got.FromName != "Ana" || got.ToEmail != contact.DefaultRecipient || got.Subject != contact.DefaultSubject {
		t.Fatalf("params = %+v", got)
	}

	var notice *http.Cookie
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == flash.CookieName {
			notice = cookie
		}
	}
	if notice == nil {
		t.Fatal("expected flash cookie")
	}

	clock.Advance(time.Second)
	req := httptest.NewRequest(http.MethodGet, routepath.AboutContact(routepath.TabFeedback), nil)
	req.AddCookie(notice)
	page := serve(handler, req)
	if !strings.Contains(page.Body.String(), `data-dismiss-after-ms="2000"`) {
		t.Fatalf("expected banner with remaining window, body = %s", page.Body.String())
	}
	if strings.Contains(page.Body.String(), "Love the rankings") {
		t.Fatal("draft should be cleared after success")
	}

	clock.Advance(3 * time.Second)
	late := httptest.NewRequest(http.MethodGet, routepath.About, nil)
	late.AddCookie(notice)
	if strings.Contains(serve(handler, late).Body.String(), "data-dismiss-after-ms") {
		t.Fatal("banner should not render after the display window")
	}
}

func TestFeedbackInvalidDraftIsRejectedWithoutNetworkCall(t *testing.T) {
	t.Parallel()

	relay := &recordingRelay{}
	deps, _ := testDependencies(t, relay)
	values := feedbackValues()
	values.Set(templates.FieldMessage, "")
	values.Set(templates.FieldEmail, "not-an-email")

	rr := serve(mount(t, deps), postForm(routepath.AboutFeedback, values))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if relay.calls() != 0 {
		t.Fatalf("relay calls = %d, want 0", relay.calls())
	}
	loc := deps.Localizers.Localizer(language.English)
	body := rr.Body.String()
	for _, want := range []string{sitei18n.T(loc, sitei18n.KeyAboutFormRequired), sitei18n.T(loc, sitei18n.KeyAboutFormInvalidEmail), `value="not-an-email"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestFeedbackWithoutCredentialsIsConfigurationError(t *testing.T) {
	t.Parallel()

	deps, _ := testDependencies(t, nil)
	rr := serve(mount(t, deps), postForm(routepath.AboutFeedback, feedbackValues()))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	loc := deps.Localizers.Localizer(language.English)
	if !strings.Contains(rr.Body.String(), sitei18n.T(loc, sitei18n.KeyAboutFeedbackConfigError)) {
		t.Fatal("expected configuration message")
	}
	if !strings.Contains(rr.Body.String(), "Love the rankings") {
		t.Fatal("draft should be preserved")
	}
}

func TestFeedbackDeliveryFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	relay := &recordingRelay{err: errors.New("status 500")}
	deps, _ := testDependencies(t, relay)
	req := postForm(routepath.AboutFeedback+"?lang=fr", feedbackValues())
	rr := serve(mount(t, deps), req)
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
	body := rr.Body.String()
	loc := deps.Localizers.Localizer(language.French)
	want := html.EscapeString(sitei18n.T(loc, sitei18n.KeyAboutFeedbackError))
	if !strings.Contains(body, want) {
		t.Fatalf("body missing delivery error %q", want)
	}
	if !strings.Contains(body, `value="Ana"`) || !strings.Contains(body, "Love the rankings") {
		t.Fatal("draft should be preserved")
	}
	if relay.calls() != 1 {
		t.Fatalf("relay calls = %d, want 1", relay.calls())
	}
}

func TestFeedbackRequiresSameOrigin(t *testing.T) {
	t.Parallel()

	relay := &recordingRelay{}
	deps, _ := testDependencies(t, relay)
	req := postForm(routepath.AboutFeedback, feedbackValues())
	req.Header.Set("Origin", "https://evil.example")
	rr := serve(mount(t, deps), req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
	if relay.calls() != 0 {
		t.Fatal("relay should not be called")
	}
}

func TestFeedbackIsRateLimited(t *testing.T) {
	t.Parallel()

	relay := &recordingRelay{}
	deps, _ := testDependencies(t, relay)
	deps.ContactLimits = httpx.NewRateLimiter(1, 1)
	handler := mount(t, deps)

	if rr := serve(handler, postForm(routepath.AboutFeedback, feedbackValues())); rr.Code != http.StatusSeeOther {
		t.Fatalf("first status = %d", rr.Code)
	}
	rr := serve(handler, postForm(routepath.AboutFeedback, feedbackValues()))
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After")
	}
}

func TestBugReportIsLoggedAndRedirects(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	deps, _ := testDependencies(t, &recordingRelay{})
	deps.BugReports = contact.LogSink{Logger: slog.New(slog.NewJSONHandler(&logs, nil))}

	rr := serve(mount(t, deps), postForm(routepath.AboutBugReport, bugValues()))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.AboutContact(routepath.TabBug) {
		t.Fatalf("Location = %q", got)
	}
	if !strings.Contains(logs.String(), `"title":"Stale rank"`) {
		t.Fatalf("log = %s", logs.String())
	}
}

func TestBugReportInvalidDraftIsRejected(t *testing.T) {
	t.Parallel()

	deps, _ := testDependencies(t, &recordingRelay{})
	values := bugValues()
	values.Del(templates.FieldTitle)
	rr := serve(mount(t, deps), postForm(routepath.AboutBugReport, values))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(rr.Body.String(), "Rank did not refresh") {
		t.Fatal("draft should be preserved")
	}
}

func TestContactEndpointsRejectGet(t *testing.T) {
	t.Parallel()

	deps, _ := testDependencies(t, &recordingRelay{})
	handler := mount(t, deps)
	for _, target := range []string{routepath.AboutFeedback, routepath.AboutBugReport} {
		rr := serve(handler, httptest.NewRequest(http.MethodGet, target, nil))
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s status = %d, want %d", target, rr.Code, http.StatusMethodNotAllowed)
		}
		if got := rr.Header().Get("Allow"); got != http.MethodPost {
			t.Fatalf("%s Allow = %q", target, got)
		}
	}
}

func TestAboutRejectsNonGetAndUnknownPaths(t *testing.T) {
	t.Parallel()

	deps, _ := testDependencies(t, &recordingRelay{})
	handler := mount(t, deps)
	rr := serve(handler, httptest.NewRequest(http.MethodDelete, routepath.About, nil))
	if rr.Code != http.StatusMethodNotAllowed || rr.Header().Get("Allow") != "GET, HEAD" {
		t.Fatalf("status = %d, Allow = %q", rr.Code, rr.Header().Get("Allow"))
	}
	if rr := serve(handler, httptest.NewRequest(http.MethodGet, routepath.AboutPrefix+"team", nil)); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestClassifyFeedbackError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{err: contact.FieldErrors{"name": contact.CodeRequired}, want: http.StatusUnprocessableEntity},
		{err: contact.ConfigurationError{Missing: []string{"service_id"}}, want: http.StatusServiceUnavailable},
		{err: contact.DeliveryError{Err: errors.New("x")}, want: http.StatusBadGateway},
		{err: contact.ErrSubmissionInFlight, want: http.StatusConflict},
		{err: errors.New("other"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := apperrors.HTTPStatus(classifyFeedbackError(tc.err)); got != tc.want {
			t.Fatalf("classify(%v) status = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestNormalizeSubmissionID(t *testing.T) {
	t.Parallel()

	const id = "6f1c7a4e-8a57-4b0b-9d5e-7c1f7b5f2c11"
	if got := normalizeSubmissionID(" " + id + " "); got != id {
		t.Fatalf("normalizeSubmissionID() = %q", got)
	}
	if got := normalizeSubmissionID("forged"); got == "forged" || got == "" {
		t.Fatalf("normalizeSubmissionID(forged) = %q", got)
	}
}
