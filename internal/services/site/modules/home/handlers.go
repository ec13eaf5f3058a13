package home

import (
	"net/http"

	module "github.com/tftrival/site/internal/services/site/module"
	apperrors "github.com/tftrival/site/internal/services/site/platform/errors"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/platform/pagerender"
	"github.com/tftrival/site/internal/services/site/platform/weberror"
	"github.com/tftrival/site/internal/services/site/routepath"
	"github.com/tftrival/site/internal/services/site/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	pc := pagerender.NewPageContext(w, r, h.deps, routepath.PageHome)
	err := pagerender.WritePage(w, r, pc, pagerender.ModulePage{
		Title:    pc.T(sitei18n.KeyHomeMetaTitle),
		Fragment: templates.HomePage(pc, templates.HomeView{InviteURL: h.deps.InviteURL}),
	})
	if err != nil {
		weberror.WriteError(w, r, err, h.deps)
	}
}

// handlePage mirrors the hash router: a known page name redirects to its
// route, anything else renders home.
func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	page := routepath.ParsePage(r.PathValue("page"))
	if page != routepath.PageHome {
		target := page.Path()
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}
	h.handleIndex(w, r)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"), h.deps)
}
