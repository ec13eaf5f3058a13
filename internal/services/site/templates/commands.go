package templates

import (
	"strconv"

	"github.com/a-h/templ"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CommandView is one command card.
type CommandView struct {
	Name        string
	Description string
	Usage       string
	Copied      bool
}

// CommandCategoryView groups command cards under a heading.
type CommandCategoryView struct {
	ID       string
	Icon     string
	Name     string
	Commands []CommandView
}

// CommandsView holds the commands page inputs.
type CommandsView struct {
	Categories []CommandCategoryView
	// CopyResetMS is how long the copied marker stays after a click.
	CopyResetMS int64
}

// CommandsPage renders the command reference.
func CommandsPage(pc PageContext, view CommandsView) templ.Component {
	categories := make([]g.Node, 0, len(view.Categories))
	for _, category := range view.Categories {
		categories = append(categories, commandCategory(pc, category))
	}
	return component(h.Div(classes("container"),
		h.Header(classes("page-header"),
			h.H1(g.Text(pc.T(sitei18n.KeyCommandsTitle))),
			h.P(classes("lead"), g.Text(pc.T(sitei18n.KeyCommandsSubtitle))),
		),
		h.Div(
			classes("stack"),
			data("copy-reset-ms", strconv.FormatInt(view.CopyResetMS, 10)),
			data("copied-label", pc.T(sitei18n.KeyCommandsCopied)),
			g.Group(categories),
		),
		h.P(classes("muted", "centered"), g.Text(pc.T(sitei18n.KeyCommandsFooter))),
	))
}

func commandCategory(pc PageContext, category CommandCategoryView) g.Node {
	cards := make([]g.Node, 0, len(category.Commands))
	for _, command := range category.Commands {
		cards = append(cards, commandCard(pc, command))
	}
	return h.Section(classes("card", "command-category"), h.ID("category-"+category.ID),
		h.Div(classes("category-header"),
			h.Span(classes("category-icon"), aria("hidden", "true"), g.Text(category.Icon)),
			h.H2(g.Text(category.Name)),
		),
		h.Div(classes("grid", "grid-3"), g.Group(cards)),
	)
}

func commandCard(pc PageContext, command CommandView) g.Node {
	return h.Div(classes("command"),
		h.H3(g.Text(command.Name)),
		h.P(classes("muted", "small"), g.Text(command.Description)),
		h.Button(
			h.Type("button"),
			classes("command-usage", activeClass(command.Copied)),
			data("copy", command.Usage),
			aria("label", pc.T(sitei18n.KeyCommandsCopy)+": "+command.Usage),
			h.Code(g.Text(command.Usage)),
			h.Span(
				classes("copied-marker"),
				g.Attr("role", "status"),
				g.If(!command.Copied, g.Attr("hidden")),
				g.Text(pc.T(sitei18n.KeyCommandsCopied)),
			),
		),
	)
}
