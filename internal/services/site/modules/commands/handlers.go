package commands

import (
	"net/http"
	"time"

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
	pc := pagerender.NewPageContext(w, r, h.deps, routepath.PageCommands)
	view := buildView(pc, CopyIndicator{}, h.deps.Clock()())
	err := pagerender.WritePage(w, r, pc, pagerender.ModulePage{
		Title:    pc.T(sitei18n.KeyCommandsMetaTitle),
		Fragment: templates.CommandsPage(pc, view),
	})
	if err != nil {
		weberror.WriteError(w, r, err, h.deps)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"), h.deps)
}

func buildView(pc templates.PageContext, copied CopyIndicator, now time.Time) templates.CommandsView {
	catalog := Catalog()
	categories := make([]templates.CommandCategoryView, 0, len(catalog))
	for _, category := range catalog {
		commands := make([]templates.CommandView, 0, len(category.Commands))
		for _, command := range category.Commands {
			commands = append(commands, templates.CommandView{
				Name:        pc.T(command.Name),
				Description: pc.T(command.Description),
				Usage:       command.Usage,
				Copied:      copied.Copied(command.Usage, now),
			})
		}
		categories = append(categories, templates.CommandCategoryView{
			ID:       category.ID,
			Icon:     category.Icon,
			Name:     pc.T(category.Name),
			Commands: commands,
		})
	}
	return templates.CommandsView{
		Categories:  categories,
		CopyResetMS: copied.Duration().Milliseconds(),
	}
}
