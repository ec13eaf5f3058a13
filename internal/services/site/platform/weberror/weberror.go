// Package weberror renders localized error pages for site modules.
package weberror

import (
	"net/http"
	"strings"

	module "github.com/tftrival/site/internal/services/site/module"
	apperrors "github.com/tftrival/site/internal/services/site/platform/errors"
	"github.com/tftrival/site/internal/services/site/platform/httpx"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/platform/pagerender"
	"github.com/tftrival/site/internal/services/site/routepath"
	"github.com/tftrival/site/internal/services/site/templates"
)

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(sitei18n.T(loc, sitei18n.Key(key))); localized != "" && localized != key {
				return localized
			}
		}
		if key := statusKey(apperrors.HTTPStatus(err)); key != "" {
			return sitei18n.T(loc, key)
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

func statusKey(statusCode int) sitei18n.Key {
	switch statusCode {
	case http.StatusNotFound:
		return sitei18n.KeyLayoutErrorNotFound
	case http.StatusForbidden:
		return sitei18n.KeyLayoutErrorForbidden
	case http.StatusTooManyRequests:
		return sitei18n.KeyLayoutErrorRateLimited
	case http.StatusMethodNotAllowed:
		return sitei18n.KeyLayoutErrorMethodNotAllowed
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return sitei18n.KeyLayoutErrorUnavailable
	case http.StatusInternalServerError:
		return sitei18n.KeyLayoutErrorInternal
	default:
		return ""
	}
}

// WriteError renders the error page for err with its mapped status.
func WriteError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	pc := pagerender.NewPageContext(w, r, deps, routepath.PageHome)
	message := PublicMessage(pc.Loc, err)
	if statusCode >= http.StatusInternalServerError {
		deps.LoggerOrDefault().ErrorContext(httpx.RequestContext(r), "request failed", "status", statusCode, "error", err)
	}
	page := pagerender.ModulePage{
		Title:      pc.T(sitei18n.KeyLayoutErrorTitle),
		StatusCode: statusCode,
		Fragment:   templates.ErrorPage(pc, statusCode, message),
	}
	if renderErr := pagerender.WritePage(w, r, pc, page); renderErr != nil {
		http.Error(w, message, statusCode)
	}
}

// StatusHandler renders a bare status page, for use as a reject handler in
// middleware such as same-origin and rate-limit guards.
func StatusHandler(kind apperrors.Kind, deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, apperrors.E(kind, string(kind)), deps)
	})
}
