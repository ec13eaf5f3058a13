package about

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tftrival/site/internal/services/site/contact"
	module "github.com/tftrival/site/internal/services/site/module"
	apperrors "github.com/tftrival/site/internal/services/site/platform/errors"
	"github.com/tftrival/site/internal/services/site/platform/flash"
	"github.com/tftrival/site/internal/services/site/platform/httpx"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/platform/pagerender"
	"github.com/tftrival/site/internal/services/site/platform/weberror"
	"github.com/tftrival/site/internal/services/site/routepath"
	"github.com/tftrival/site/internal/services/site/templates"
)

// deliveryFallbackMessage is shown when the catalog has no delivery error text.
const deliveryFallbackMessage = "Une erreur est survenue lors de l'envoi. Veuillez réessayer."

// maxFormBytes bounds a contact form body.
const maxFormBytes = 64 << 10

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// guardMutation requires same-origin proof and a rate-limit token.
func (h handlers) guardMutation(next http.Handler) http.Handler {
	return httpx.Chain(next,
		httpx.RequireSameOrigin(h.deps.SchemePolicy, weberror.StatusHandler(apperrors.KindForbidden, h.deps)),
		httpx.RateLimit(h.deps.ContactLimits, h.deps.SchemePolicy.ClientAddr, weberror.StatusHandler(apperrors.KindRateLimited, h.deps)),
	)
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	pc := pagerender.NewPageContext(w, r, h.deps, routepath.PageAbout)
	state := pageState{
		tab:          routepath.ParseContactTab(r.URL.Query().Get(routepath.TabParam)),
		submissionID: uuid.NewString(),
	}
	if notice, ok := flash.ReadAndClear(w, r, h.deps.SchemePolicy); ok && notice.Kind == flash.KindSuccess {
		switch sitei18n.Key(notice.Key) {
		case sitei18n.KeyAboutFeedbackSuccess:
			state.feedback.SucceededAt = notice.At
			state.tab = routepath.TabFeedback
		case sitei18n.KeyAboutBugSuccess:
			state.bug.SucceededAt = notice.At
			state.tab = routepath.TabBug
		}
	}
	h.render(w, r, pc, http.StatusOK, state)
}

func (h handlers) handleFeedback(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		weberror.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err), h.deps)
		return
	}
	pc := pagerender.NewPageContext(w, r, h.deps, routepath.PageAbout)
	state := pageState{
		tab:          routepath.TabFeedback,
		submissionID: normalizeSubmissionID(r.PostForm.Get(templates.FieldSubmissionID)),
		feedback: contact.FeedbackForm{Draft: contact.FeedbackDraft{
			Name:    r.PostForm.Get(templates.FieldName),
			Email:   r.PostForm.Get(templates.FieldEmail),
			Message: r.PostForm.Get(templates.FieldMessage),
		}},
	}

	err := state.feedback.Submit(r.Context(), state.submissionID, h.deps.Feedback, h.deps.Clock())
	if err == nil {
		flash.Write(w, r, flash.NoticeSuccess(string(sitei18n.KeyAboutFeedbackSuccess), state.feedback.SucceededAt), h.deps.SchemePolicy)
		http.Redirect(w, r, routepath.AboutContact(routepath.TabFeedback), http.StatusSeeOther)
		return
	}
	if errors.Is(err, contact.ErrSubmissionInFlight) {
		state.feedback.InFlight = true
	}
	h.render(w, r, pc, apperrors.HTTPStatus(classifyFeedbackError(err)), state)
}

func (h handlers) handleBugReport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		weberror.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "", err), h.deps)
		return
	}
	pc := pagerender.NewPageContext(w, r, h.deps, routepath.PageAbout)
	state := pageState{
		tab:          routepath.TabBug,
		submissionID: uuid.NewString(),
		bug: contact.BugReportForm{Draft: contact.BugReportDraft{
			Name:        r.PostForm.Get(templates.FieldName),
			Email:       r.PostForm.Get(templates.FieldEmail),
			Title:       r.PostForm.Get(templates.FieldTitle),
			Description: r.PostForm.Get(templates.FieldDescription),
			Steps:       r.PostForm.Get(templates.FieldSteps),
		}},
	}

	err := state.bug.Submit(r.Context(), h.deps.BugReports, h.deps.Clock())
	if err == nil {
		flash.Write(w, r, flash.NoticeSuccess(string(sitei18n.KeyAboutBugSuccess), state.bug.SucceededAt), h.deps.SchemePolicy)
		http.Redirect(w, r, routepath.AboutContact(routepath.TabBug), http.StatusSeeOther)
		return
	}
	h.render(w, r, pc, apperrors.HTTPStatus(classifyBugReportError(err)), state)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"), h.deps)
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, pc templates.PageContext, statusCode int, state pageState) {
	view := buildView(pc, state, h.deps.Clock()())
	err := pagerender.WritePage(w, r, pc, pagerender.ModulePage{
		Title:      pc.T(sitei18n.KeyAboutMetaTitle),
		StatusCode: statusCode,
		Fragment:   templates.AboutPage(pc, view),
	})
	if err != nil {
		weberror.WriteError(w, r, err, h.deps)
	}
}

// classifyFeedbackError maps contact failures onto typed site errors.
func classifyFeedbackError(err error) error {
	var (
		fieldErrs  contact.FieldErrors
		cfgErr     contact.ConfigurationError
		deliverErr contact.DeliveryError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fieldErrs):
		return apperrors.Wrap(apperrors.KindInvalidInput, "", err)
	case errors.As(err, &cfgErr):
		return apperrors.Wrap(apperrors.KindUnavailable, string(sitei18n.KeyAboutFeedbackConfigError), err)
	case errors.As(err, &deliverErr):
		return apperrors.Wrap(apperrors.KindBadGateway, string(sitei18n.KeyAboutFeedbackError), err)
	case errors.Is(err, contact.ErrSubmissionInFlight):
		return apperrors.Wrap(apperrors.KindConflict, string(sitei18n.KeyAboutFeedbackInFlight), err)
	default:
		return apperrors.Wrap(apperrors.KindUnknown, "", err)
	}
}

func classifyBugReportError(err error) error {
	var fieldErrs contact.FieldErrors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fieldErrs):
		return apperrors.Wrap(apperrors.KindInvalidInput, "", err)
	default:
		return apperrors.Wrap(apperrors.KindUnknown, "", err)
	}
}

func normalizeSubmissionID(raw string) string {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
