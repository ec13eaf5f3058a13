// Package routepath stores canonical HTTP paths for site pages.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root           = "/"
	Commands       = "/commands"
	CommandsPrefix = "/commands/"
	About          = "/about"
	AboutPrefix    = "/about/"
	AboutFeedback  = "/about/feedback"
	AboutBugReport = "/about/bug-report"
	Health         = "/up"
	StaticPrefix   = "/static/"

	// ContactAnchor is the fragment of the contact section on the about page.
	ContactAnchor = "contact"
	// TabParam selects the active contact tab on the about page.
	TabParam = "tab"
)

// Page identifies one top-level view of the site.
type Page int

const (
	PageHome Page = iota
	PageCommands
	PageAbout
)

// Pages returns the navigable pages in navbar order.
func Pages() []Page {
	return []Page{PageHome, PageCommands, PageAbout}
}

// ParsePage maps a fragment or path such as "#about", "about" or "/about"
// onto a page. Anything unrecognized selects the home page.
func ParsePage(value string) Page {
	name := strings.ToLower(strings.TrimSpace(value))
	name = strings.TrimPrefix(name, "#")
	name = strings.Trim(name, "/")
	switch name {
	case "commands":
		return PageCommands
	case "about":
		return PageAbout
	default:
		return PageHome
	}
}

// String returns the page name used in fragments and markup.
func (p Page) String() string {
	switch p {
	case PageCommands:
		return "commands"
	case PageAbout:
		return "about"
	default:
		return "home"
	}
}

// Path returns the canonical route of the page.
func (p Page) Path() string {
	switch p {
	case PageCommands:
		return Commands
	case PageAbout:
		return About
	default:
		return Root
	}
}

// ContactTab identifies the active form in the about page contact section.
type ContactTab string

const (
	TabBug      ContactTab = "bug"
	TabFeedback ContactTab = "feedback"
)

// ParseContactTab returns the requested tab, defaulting to the bug form.
func ParseContactTab(value string) ContactTab {
	if ContactTab(strings.ToLower(strings.TrimSpace(value))) == TabFeedback {
		return TabFeedback
	}
	return TabBug
}

// AboutContact returns the about page URL focused on the given contact tab.
func AboutContact(tab ContactTab) string {
	query := url.Values{}
	query.Set(TabParam, string(ParseContactTab(string(tab))))
	return (&url.URL{Path: About, RawQuery: query.Encode(), Fragment: ContactAnchor}).String()
}

// StaticFile returns the public URL of an embedded static asset.
func StaticFile(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}
