package about

import (
	"errors"
	"time"

	"github.com/tftrival/site/internal/services/site/contact"
	apperrors "github.com/tftrival/site/internal/services/site/platform/errors"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/platform/weberror"
	"github.com/tftrival/site/internal/services/site/routepath"
	"github.com/tftrival/site/internal/services/site/templates"
)

type pageState struct {
	tab          routepath.ContactTab
	submissionID string
	feedback     contact.FeedbackForm
	bug          contact.BugReportForm
}

type developerLink struct {
	url   sitei18n.Key
	label sitei18n.Key
}

var developerLinks = []developerLink{
	{url: sitei18n.KeyAboutDeveloperLinksGithub, label: sitei18n.KeyAboutDeveloperLinksGithubLabel},
	{url: sitei18n.KeyAboutDeveloperLinksPortfolio, label: sitei18n.KeyAboutDeveloperLinksPortfolioLabel},
	{url: sitei18n.KeyAboutDeveloperLinksLinkedin, label: sitei18n.KeyAboutDeveloperLinksLinkedinLabel},
}

func buildView(pc templates.PageContext, state pageState, now time.Time) templates.AboutView {
	links := make([]templates.LinkView, 0, len(developerLinks))
	for _, link := range developerLinks {
		if url := sitei18n.TOr(pc.Loc, link.url, ""); url != "" {
			links = append(links, templates.LinkView{Label: pc.T(link.label), URL: url})
		}
	}
	feedbackErrs := fieldErrors(state.feedback.Err)
	bugErrs := fieldErrors(state.bug.Err)
	return templates.AboutView{
		Tab:            state.tab,
		DeveloperLinks: links,
		TechStack:      sitei18n.TList(pc.Loc, sitei18n.KeyAboutDeveloperTechStack),
		Libraries:      sitei18n.TList(pc.Loc, sitei18n.KeyAboutDeveloperLibraries),
		FeedbackForm: templates.FeedbackFormView{
			SubmissionID: state.submissionID,
			Name:         fieldView(pc, state.feedback.Draft.Name, feedbackErrs["name"]),
			Email:        fieldView(pc, state.feedback.Draft.Email, feedbackErrs["email"]),
			Message:      fieldView(pc, state.feedback.Draft.Message, feedbackErrs["message"]),
			Status:       statusView(state.feedback.Status, feedbackErrorMessage(pc, state.feedback.Err), now),
		},
		BugReportForm: templates.BugReportFormView{
			Name:        fieldView(pc, state.bug.Draft.Name, bugErrs["name"]),
			Email:       fieldView(pc, state.bug.Draft.Email, bugErrs["email"]),
			Title:       fieldView(pc, state.bug.Draft.Title, bugErrs["title"]),
			Description: fieldView(pc, state.bug.Draft.Description, bugErrs["description"]),
			Steps:       fieldView(pc, state.bug.Draft.Steps, bugErrs["steps"]),
			Status:      statusView(state.bug.Status, bugErrorMessage(pc, state.bug.Err), now),
		},
	}
}

func statusView(status contact.Status, message string, now time.Time) templates.FormStatusView {
	return templates.FormStatusView{
		InFlight:           status.InFlight,
		ErrorMessage:       message,
		Success:            status.SuccessVisible(now),
		SuccessRemainingMS: status.SuccessRemaining(now).Milliseconds(),
	}
}

func fieldView(pc templates.PageContext, value string, code string) templates.FieldView {
	return templates.FieldView{Value: value, Error: fieldErrorMessage(pc, code)}
}

func fieldErrors(err error) contact.FieldErrors {
	var errs contact.FieldErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}

func fieldErrorMessage(pc templates.PageContext, code string) string {
	switch code {
	case "":
		return ""
	case contact.CodeInvalidEmail:
		return pc.T(sitei18n.KeyAboutFormInvalidEmail)
	case contact.CodeTooLong:
		return pc.T(sitei18n.KeyAboutFormTooLong)
	default:
		return pc.T(sitei18n.KeyAboutFormRequired)
	}
}

// feedbackErrorMessage is the form-level message. Field errors are shown
// next to their inputs instead.
func feedbackErrorMessage(pc templates.PageContext, err error) string {
	if err == nil || fieldErrors(err) != nil {
		return ""
	}
	classified := classifyFeedbackError(err)
	if apperrors.KindOf(classified) == apperrors.KindBadGateway {
		return sitei18n.TOr(pc.Loc, sitei18n.KeyAboutFeedbackError, deliveryFallbackMessage)
	}
	return weberror.PublicMessage(pc.Loc, classified)
}

func bugErrorMessage(pc templates.PageContext, err error) string {
	if err == nil || fieldErrors(err) != nil {
		return ""
	}
	return weberror.PublicMessage(pc.Loc, classifyBugReportError(err))
}
