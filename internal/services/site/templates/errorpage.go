package templates

import (
	"strconv"

	"github.com/a-h/templ"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrorPage renders a status page with a localized message.
func ErrorPage(pc PageContext, status int, message string) templ.Component {
	return component(h.Div(classes("container", "narrow", "error-page"), data("status", strconv.Itoa(status)),
		h.Section(classes("card", "center"),
			h.P(classes("error-status"), g.Text(strconv.Itoa(status))),
			h.H1(g.Text(pc.T(sitei18n.KeyLayoutErrorTitle))),
			h.P(classes("lead"), g.Text(message)),
			h.A(classes("button", "button-primary"), h.Href(routepath.Root), g.Text(pc.T(sitei18n.KeyLayoutErrorBack))),
		),
	))
}
