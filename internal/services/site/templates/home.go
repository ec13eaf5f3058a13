package templates

import (
	"github.com/a-h/templ"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeView holds the home page inputs that do not come from the catalog.
type HomeView struct {
	InviteURL string
}

type homeFeature struct {
	icon        string
	title       sitei18n.Key
	description sitei18n.Key
}

var homeFeatures = []homeFeature{
	{icon: "🎮", title: sitei18n.KeyHomeFeaturesFeature1Title, description: sitei18n.KeyHomeFeaturesFeature1Description},
	{icon: "⚡", title: sitei18n.KeyHomeFeaturesFeature2Title, description: sitei18n.KeyHomeFeaturesFeature2Description},
	{icon: "🤖", title: sitei18n.KeyHomeFeaturesFeature3Title, description: sitei18n.KeyHomeFeaturesFeature3Description},
}

type homeStat struct {
	value sitei18n.Key
	label sitei18n.Key
}

var homeStats = []homeStat{
	{value: sitei18n.KeyHomeStatsServers, label: sitei18n.KeyHomeStatsServersLabel},
	{value: sitei18n.KeyHomeStatsUsers, label: sitei18n.KeyHomeStatsUsersLabel},
	{value: sitei18n.KeyHomeStatsCommands, label: sitei18n.KeyHomeStatsCommandsLabel},
}

// HomePage renders the landing page.
func HomePage(pc PageContext, view HomeView) templ.Component {
	features := make([]g.Node, 0, len(homeFeatures))
	for _, feature := range homeFeatures {
		features = append(features, h.Div(classes("card", "feature"),
			h.Div(classes("feature-icon"), aria("hidden", "true"), g.Text(feature.icon)),
			h.H3(g.Text(pc.T(feature.title))),
			h.P(classes("muted"), g.Text(pc.T(feature.description))),
		))
	}

	stats := make([]g.Node, 0, len(homeStats)+1)
	for _, stat := range homeStats {
		stats = append(stats, statBlock(pc.T(stat.value), pc.T(stat.label)))
	}
	stats = append(stats, statBlock("24/7", pc.T(sitei18n.KeyHomeStatsUptime)))

	return component(g.Group([]g.Node{
		h.Section(classes("hero"),
			h.H1(g.Text(pc.T(sitei18n.KeyHomeHeroTitle))),
			h.P(classes("lead"), g.Text(pc.T(sitei18n.KeyHomeHeroSubtitle))),
			h.Div(classes("actions"),
				inviteLink(view.InviteURL, "button button-primary", pc.T(sitei18n.KeyHomeHeroInviteButton)),
				h.A(classes("button", "button-secondary"), h.Href(routepath.Commands), g.Text(pc.T(sitei18n.KeyHomeHeroCommandsButton))),
			),
		),
		h.Section(classes("band"),
			h.H2(g.Text(pc.T(sitei18n.KeyHomeFeaturesTitle))),
			h.Div(classes("grid", "grid-3"), g.Group(features)),
		),
		h.Section(classes("stats"),
			h.Div(classes("grid", "grid-4"), g.Group(stats)),
		),
		h.Section(classes("band", "cta"),
			h.H2(g.Text(pc.T(sitei18n.KeyHomeCtaTitle))),
			h.P(classes("lead"), g.Text(pc.T(sitei18n.KeyHomeCtaDescription))),
			inviteLink(view.InviteURL, "button button-primary button-large", pc.T(sitei18n.KeyHomeCtaButton)),
		),
	}))
}

func statBlock(value string, label string) g.Node {
	return h.Div(classes("stat"),
		h.Div(classes("stat-value"), g.Text(value)),
		h.Div(classes("muted"), g.Text(label)),
	)
}

func inviteLink(href string, class string, label string) g.Node {
	return h.A(
		classes(class),
		h.Href(href),
		g.Attr("target", "_blank"),
		h.Rel("noopener noreferrer"),
		g.Text(label),
	)
}
