// Package templates renders site pages. Views are gomponents trees exposed as
// templ components so layouts can wrap them with templ.WithChildren.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/tftrival/site/internal/services/shared/i18nhttp"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
)

// PageContext carries the request state every view needs. It is built once
// per request and passed down explicitly.
type PageContext struct {
	Lang         language.Tag
	Loc          sitei18n.Localizer
	Page         routepath.Page
	CurrentPath  string
	CurrentQuery string
	Languages    []i18nhttp.LanguageOption
	AppEnv       string
	AnalyticsKey string
	APIURL       string
	Year         int
}

// T localizes key for the page language.
func (pc PageContext) T(key sitei18n.Key, args ...any) string {
	return sitei18n.T(pc.Loc, key, args...)
}

// component adapts a gomponents node to templ.
func component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// deferred builds the node at render time so it can read templ children
// from ctx.
func deferred(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// embed renders a templ component inside a gomponents tree.
func embed(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if c == nil {
			return nil
		}
		return c.Render(ctx, w)
	})
}

func classes(names ...string) g.Node {
	out := ""
	for _, name := range names {
		if name == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += name
	}
	return g.Attr("class", out)
}

func data(name string, value string) g.Node {
	return g.Attr("data-"+name, value)
}

func aria(name string, value string) g.Node {
	return g.Attr("aria-"+name, value)
}
