// Package pagerender centralizes full-page rendering for site modules.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/tftrival/site/internal/services/shared/i18nhttp"
	module "github.com/tftrival/site/internal/services/site/module"
	"github.com/tftrival/site/internal/services/site/platform/httpx"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/routepath"
	"github.com/tftrival/site/internal/services/site/templates"
	"golang.org/x/text/language"
)

// ModulePage describes one page response.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// NewPageContext resolves the request language and builds the view context
// for page.
func NewPageContext(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page routepath.Page) templates.PageContext {
	loc, lang := deps.Localizers.ResolveLocalizer(w, r)
	path, query := routepath.Root, ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, stripLang(r.URL.RawQuery)
	}
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		Page:         page,
		CurrentPath:  path,
		CurrentQuery: query,
		Languages: i18nhttp.BuildLanguageOptions(lang.String(), path, query, func(tag language.Tag) string {
			return sitei18n.TOr(loc, sitei18n.Key(i18nhttp.LanguageKeyLabel(tag)), "")
		}),
		AppEnv:       deps.AppEnv,
		AnalyticsKey: deps.AnalyticsKey,
		APIURL:       deps.APIURL,
		Year:         deps.Clock()().Year(),
	}
}

// WritePage renders page inside the layout. The page is rendered to a buffer
// first so a template failure never leaves a half-written response.
func WritePage(w http.ResponseWriter, r *http.Request, pc templates.PageContext, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	if err := templates.Layout(pc, page.Title).Render(ctx, &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.Bytes())
}

func stripLang(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ""
	}
	query.Del(i18nhttp.LangParam)
	return query.Encode()
}
