// Package module defines the contract between the site root and its page
// modules.
package module

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tftrival/site/internal/services/site/contact"
	"github.com/tftrival/site/internal/services/site/platform/httpx"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/platform/requestmeta"
)

// Dependencies carries the shared runtime collaborators modules can use.
type Dependencies struct {
	Localizers   *sitei18n.Resolver
	Logger       *slog.Logger
	SchemePolicy requestmeta.SchemePolicy
	Now          func() time.Time

	AppEnv       string
	AnalyticsKey string
	APIURL       string
	InviteURL    string

	Feedback      contact.FeedbackSubmitter
	BugReports    contact.BugReportSink
	ContactLimits *httpx.RateLimiter
}

// Clock returns Now or time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// LoggerOrDefault returns Logger or the process default.
func (d Dependencies) LoggerOrDefault() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// Mount is a module's root prefix and handler.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a self-contained route group.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
