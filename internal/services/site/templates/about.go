package templates

import (
	"strconv"

	"github.com/a-h/templ"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Contact form field names shared by markup and handlers.
const (
	FieldSubmissionID = "submission_id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldMessage      = "message"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldSteps        = "steps"
)

// FieldView is one form input's value and localized error.
type FieldView struct {
	Value string
	Error string
}

// FormStatusView is the shared submit state of a contact form.
type FormStatusView struct {
	InFlight           bool
	ErrorMessage       string
	Success            bool
	SuccessRemainingMS int64
}

// FeedbackFormView renders the feedback form.
type FeedbackFormView struct {
	SubmissionID string
	Name         FieldView
	Email        FieldView
	Message      FieldView
	Status       FormStatusView
}

// BugReportFormView renders the bug report form.
type BugReportFormView struct {
	Name        FieldView
	Email       FieldView
	Title       FieldView
	Description FieldView
	Steps       FieldView
	Status      FormStatusView
}

// LinkView is an outbound link.
type LinkView struct {
	Label string
	URL   string
}

// AboutView holds the about page inputs.
type AboutView struct {
	Tab            routepath.ContactTab
	DeveloperLinks []LinkView
	TechStack      []string
	Libraries      []string
	FeedbackForm   FeedbackFormView
	BugReportForm  BugReportFormView
}

// AboutPage renders the about page and its contact section.
func AboutPage(pc PageContext, view AboutView) templ.Component {
	return component(h.Div(classes("container", "narrow"),
		h.Header(classes("page-header"),
			h.H1(g.Text(pc.T(sitei18n.KeyAboutTitle))),
			h.P(classes("lead"), g.Text(pc.T(sitei18n.KeyAboutSubtitle))),
		),
		h.Div(classes("stack"),
			h.Section(classes("card"),
				h.H2(g.Text(pc.T(sitei18n.KeyAboutWhatTitle))),
				h.P(g.Text(pc.T(sitei18n.KeyAboutWhatDescription))),
			),
			aboutFeatures(pc),
			aboutWhy(pc),
			aboutDeveloper(pc, view),
			contactSection(pc, view),
		),
	))
}

func aboutFeatures(pc PageContext) g.Node {
	keys := []sitei18n.Key{
		sitei18n.KeyAboutFeaturesFeature1,
		sitei18n.KeyAboutFeaturesFeature2,
		sitei18n.KeyAboutFeaturesFeature3,
		sitei18n.KeyAboutFeaturesFeature4,
	}
	items := make([]g.Node, 0, len(keys))
	for _, key := range keys {
		items = append(items, h.Li(h.Span(classes("check"), aria("hidden", "true"), g.Text("✓")), h.Span(g.Text(pc.T(key)))))
	}
	return h.Section(classes("card"),
		h.H2(g.Text(pc.T(sitei18n.KeyAboutFeaturesTitle))),
		h.Ul(classes("checklist"), g.Group(items)),
	)
}

func aboutWhy(pc PageContext) g.Node {
	return h.Section(classes("card"),
		h.H2(g.Text(pc.T(sitei18n.KeyAboutWhyTitle))),
		h.P(g.Text(pc.T(sitei18n.KeyAboutWhyDescription))),
		h.Div(classes("grid", "grid-2"),
			h.Div(classes("reason"),
				h.H3(g.Text(pc.T(sitei18n.KeyAboutWhyReason1Title))),
				h.P(classes("muted"), g.Text(pc.T(sitei18n.KeyAboutWhyReason1Description))),
			),
			h.Div(classes("reason"),
				h.H3(g.Text(pc.T(sitei18n.KeyAboutWhyReason2Title))),
				h.P(classes("muted"), g.Text(pc.T(sitei18n.KeyAboutWhyReason2Description))),
			),
		),
	)
}

func aboutDeveloper(pc PageContext, view AboutView) g.Node {
	links := make([]g.Node, 0, len(view.DeveloperLinks))
	for _, link := range view.DeveloperLinks {
		links = append(links, h.A(classes("button", "button-secondary"), h.Href(link.URL), g.Attr("target", "_blank"), h.Rel("noopener noreferrer"), g.Text(link.Label)))
	}
	return h.Section(classes("card"),
		h.H2(g.Text(pc.T(sitei18n.KeyAboutDeveloperTitle))),
		h.H3(g.Text(pc.T(sitei18n.KeyAboutDeveloperDeveloperTitle))),
		h.P(g.Text(pc.T(sitei18n.KeyAboutDeveloperDeveloperDescription))),
		g.If(len(links) > 0, h.Div(classes("actions"), g.Group(links))),
		h.Div(classes("grid", "grid-2"),
			tagList(pc.T(sitei18n.KeyAboutDeveloperTechStackTitle), view.TechStack),
			tagList(pc.T(sitei18n.KeyAboutDeveloperLibrariesTitle), view.Libraries),
		),
	)
}

func tagList(title string, items []string) g.Node {
	tags := make([]g.Node, 0, len(items))
	for _, item := range items {
		tags = append(tags, h.Li(classes("tag"), g.Text(item)))
	}
	return h.Div(
		h.H3(g.Text(title)),
		h.Ul(classes("tags"), g.Group(tags)),
	)
}

func contactSection(pc PageContext, view AboutView) g.Node {
	bugActive := view.Tab != routepath.TabFeedback
	return h.Section(classes("card"), h.ID(routepath.ContactAnchor), data("tabs", ""),
		h.H2(g.Text(pc.T(sitei18n.KeyAboutContactTitle))),
		h.Div(classes("tabs"), g.Attr("role", "tablist"),
			contactTab(routepath.TabBug, pc.T(sitei18n.KeyAboutContactBugTab), bugActive),
			contactTab(routepath.TabFeedback, pc.T(sitei18n.KeyAboutContactFeedbackTab), !bugActive),
		),
		h.Div(h.ID("panel-bug"), g.Attr("role", "tabpanel"), data("tab-panel", string(routepath.TabBug)), g.If(!bugActive, g.Attr("hidden")),
			bugReportForm(pc, view.BugReportForm),
		),
		h.Div(h.ID("panel-feedback"), g.Attr("role", "tabpanel"), data("tab-panel", string(routepath.TabFeedback)), g.If(bugActive, g.Attr("hidden")),
			feedbackForm(pc, view.FeedbackForm),
		),
	)
}

func contactTab(tab routepath.ContactTab, label string, active bool) g.Node {
	return h.A(
		h.Href(routepath.AboutContact(tab)),
		classes("tab", activeClass(active)),
		g.Attr("role", "tab"),
		aria("controls", "panel-"+string(tab)),
		aria("selected", strconv.FormatBool(active)),
		data("tab", string(tab)),
		g.Text(label),
	)
}

func feedbackForm(pc PageContext, form FeedbackFormView) g.Node {
	submitLabel := pc.T(sitei18n.KeyAboutFeedbackSubmitButton)
	if form.Status.InFlight {
		submitLabel = pc.T(sitei18n.KeyAboutFeedbackSending)
	}
	return g.El("form",
		h.Method("post"),
		h.Action(routepath.AboutFeedback),
		classes("contact-form"),
		data("contact-form", "feedback"),
		h.P(classes("muted"), g.Text(pc.T(sitei18n.KeyAboutFeedbackDescription))),
		formSuccess(pc.T(sitei18n.KeyAboutFeedbackSuccess), form.Status),
		formError(form.Status.ErrorMessage),
		h.Input(h.Type("hidden"), h.Name(FieldSubmissionID), h.Value(form.SubmissionID)),
		textField("feedback", FieldName, "text", pc.T(sitei18n.KeyAboutFeedbackNameLabel), pc.T(sitei18n.KeyAboutFeedbackNamePlaceholder), form.Name),
		textField("feedback", FieldEmail, "email", pc.T(sitei18n.KeyAboutFeedbackEmailLabel), pc.T(sitei18n.KeyAboutFeedbackEmailPlaceholder), form.Email),
		textArea("feedback", FieldMessage, "6", pc.T(sitei18n.KeyAboutFeedbackMessageLabel), pc.T(sitei18n.KeyAboutFeedbackMessagePlaceholder), form.Message),
		h.Button(
			h.Type("submit"),
			classes("button", "button-primary"),
			data("sending-label", pc.T(sitei18n.KeyAboutFeedbackSending)),
			g.If(form.Status.InFlight, h.Disabled()),
			g.If(form.Status.InFlight, aria("busy", "true")),
			g.Text(submitLabel),
		),
	)
}

func bugReportForm(pc PageContext, form BugReportFormView) g.Node {
	return g.El("form",
		h.Method("post"),
		h.Action(routepath.AboutBugReport),
		classes("contact-form"),
		data("contact-form", "bug"),
		h.P(classes("muted"), g.Text(pc.T(sitei18n.KeyAboutBugDescription))),
		formSuccess(pc.T(sitei18n.KeyAboutBugSuccess), form.Status),
		formError(form.Status.ErrorMessage),
		h.Div(classes("grid", "grid-2"),
			textField("bug", FieldName, "text", pc.T(sitei18n.KeyAboutBugNameLabel), pc.T(sitei18n.KeyAboutBugNamePlaceholder), form.Name),
			textField("bug", FieldEmail, "email", pc.T(sitei18n.KeyAboutBugEmailLabel), pc.T(sitei18n.KeyAboutBugEmailPlaceholder), form.Email),
		),
		textField("bug", FieldTitle, "text", pc.T(sitei18n.KeyAboutBugTitleLabel), pc.T(sitei18n.KeyAboutBugTitlePlaceholder), form.Title),
		textArea("bug", FieldDescription, "4", pc.T(sitei18n.KeyAboutBugDescriptionLabel), pc.T(sitei18n.KeyAboutBugDescriptionPlaceholder), form.Description),
		textArea("bug", FieldSteps, "4", pc.T(sitei18n.KeyAboutBugStepsLabel), pc.T(sitei18n.KeyAboutBugStepsPlaceholder), form.Steps),
		h.Button(
			h.Type("submit"),
			classes("button", "button-primary"),
			g.If(form.Status.InFlight, h.Disabled()),
			g.Text(pc.T(sitei18n.KeyAboutBugSubmitButton)),
		),
	)
}

func formSuccess(message string, status FormStatusView) g.Node {
	if !status.Success {
		return nil
	}
	return h.Div(
		classes("notice", "notice-success"),
		g.Attr("role", "status"),
		data("dismiss-after-ms", strconv.FormatInt(status.SuccessRemainingMS, 10)),
		g.Text(message),
	)
}

func formError(message string) g.Node {
	if message == "" {
		return nil
	}
	return h.Div(classes("notice", "notice-error"), g.Attr("role", "alert"), g.Text(message))
}

func textField(form string, name string, inputType string, label string, placeholder string, field FieldView) g.Node {
	id := form + "-" + name
	return h.Div(classes("field", errorClass(field)),
		g.El("label", g.Attr("for", id), g.Text(label)),
		h.Input(
			h.ID(id),
			h.Type(inputType),
			h.Name(name),
			h.Value(field.Value),
			h.Placeholder(placeholder),
			h.Required(),
			g.If(field.Error != "", aria("invalid", "true")),
			g.If(field.Error != "", aria("describedby", id+"-error")),
		),
		fieldError(id, field),
	)
}

func textArea(form string, name string, rows string, label string, placeholder string, field FieldView) g.Node {
	id := form + "-" + name
	return h.Div(classes("field", errorClass(field)),
		g.El("label", g.Attr("for", id), g.Text(label)),
		h.Textarea(
			h.ID(id),
			h.Name(name),
			g.Attr("rows", rows),
			h.Placeholder(placeholder),
			h.Required(),
			g.If(field.Error != "", aria("invalid", "true")),
			g.If(field.Error != "", aria("describedby", id+"-error")),
			g.Text(field.Value),
		),
		fieldError(id, field),
	)
}

func fieldError(id string, field FieldView) g.Node {
	if field.Error == "" {
		return nil
	}
	return h.P(h.ID(id+"-error"), classes("field-error"), g.Text(field.Error))
}

func errorClass(field FieldView) string {
	if field.Error != "" {
		return "has-error"
	}
	return ""
}
