package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/tftrival/site/internal/platform/i18n"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Layout renders the document shell around the templ children in ctx.
func Layout(pc PageContext, title string) templ.Component {
	return deferred(func(ctx context.Context) g.Node {
		return h.Doctype(
			h.HTML(
				h.Lang(i18n.LocaleCode(pc.Lang)),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.Meta(h.Name("description"), h.Content(pc.T(sitei18n.KeyLayoutDescription))),
					g.El("title", g.Text(title)),
					h.Link(h.Rel("stylesheet"), h.Href(routepath.StaticFile("site.css"))),
					h.Script(h.Src(routepath.StaticFile("site.js")), h.Defer()),
				),
				h.Body(
					data("page", pc.Page.String()),
					g.If(pc.AppEnv != "", data("app-env", pc.AppEnv)),
					g.If(pc.AnalyticsKey != "", data("analytics-key", pc.AnalyticsKey)),
					g.If(pc.APIURL != "", data("api-url", pc.APIURL)),
					navbar(pc),
					h.Main(h.ID(pc.Page.String()), classes("page", "page-"+pc.Page.String()),
						embed(ctx, templ.GetChildren(ctx)),
					),
					footer(pc),
				),
			),
		)
	})
}

func navbar(pc PageContext) g.Node {
	links := make([]g.Node, 0, len(routepath.Pages()))
	mobileLinks := make([]g.Node, 0, len(routepath.Pages()))
	for _, page := range routepath.Pages() {
		links = append(links, navLink(pc, page, "nav-link"))
		mobileLinks = append(mobileLinks, navLink(pc, page, "nav-link nav-link-mobile"))
	}
	return h.Nav(classes("navbar"), aria("label", pc.T(sitei18n.KeyNavBrand)),
		h.Div(classes("navbar-inner"),
			h.A(classes("navbar-brand"), h.Href(routepath.Root), g.Text(pc.T(sitei18n.KeyNavBrand))),
			h.Div(classes("navbar-links"), g.Group(links)),
			languageSwitcher(pc),
			h.Button(
				h.Type("button"),
				classes("navbar-toggle"),
				data("menu-toggle", "mobile-menu"),
				aria("controls", "mobile-menu"),
				aria("expanded", "false"),
				aria("label", pc.T(sitei18n.KeyNavMenu)),
				h.Span(classes("navbar-toggle-bar")),
				h.Span(classes("navbar-toggle-bar")),
				h.Span(classes("navbar-toggle-bar")),
			),
		),
		h.Div(h.ID("mobile-menu"), classes("navbar-mobile"), g.Attr("hidden"),
			g.Group(mobileLinks),
		),
	)
}

func navLink(pc PageContext, page routepath.Page, class string) g.Node {
	active := page == pc.Page
	return h.A(
		h.Href(page.Path()),
		classes(class, activeClass(active)),
		g.If(active, aria("current", "page")),
		g.Text(pc.T(pageNavKey(page))),
	)
}

func pageNavKey(page routepath.Page) sitei18n.Key {
	switch page {
	case routepath.PageCommands:
		return sitei18n.KeyNavCommands
	case routepath.PageAbout:
		return sitei18n.KeyNavAbout
	default:
		return sitei18n.KeyNavHome
	}
}

func languageSwitcher(pc PageContext) g.Node {
	options := make([]g.Node, 0, len(pc.Languages))
	for _, option := range pc.Languages {
		options = append(options, h.A(
			h.Href(option.URL),
			classes("lang-option", activeClass(option.Active)),
			g.Attr("hreflang", option.Tag),
			g.Attr("title", option.Label),
			g.If(option.Active, aria("current", "true")),
			g.Text(strings.ToUpper(option.Tag)),
		))
	}
	return h.Div(classes("lang-switcher"), g.Attr("role", "group"), aria("label", pc.T(sitei18n.KeyNavLanguage)),
		g.Group(options),
	)
}

func footer(pc PageContext) g.Node {
	return h.Footer(classes("site-footer"),
		h.P(g.Text(pc.T(sitei18n.KeyLayoutFooterCopyright, strconv.Itoa(pc.Year)))),
		h.P(classes("muted"), g.Text(pc.T(sitei18n.KeyLayoutFooterTagline))),
	)
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}
