// Package about serves the about page and its contact form submissions.
package about

import (
	"net/http"

	"github.com/tftrival/site/internal/services/site/contact"
	module "github.com/tftrival/site/internal/services/site/module"
	"github.com/tftrival/site/internal/services/site/routepath"
)

// Module provides the about page and contact endpoints.
type Module struct{}

// New returns an about module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "about" }

// Mount wires about route handlers. Without a configured submitter every
// feedback submit fails as unconfigured.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Feedback == nil {
		deps.Feedback = contact.NewSubmitter(nil, contact.SubmitterConfig{Logger: deps.Logger})
	}
	if deps.BugReports == nil {
		deps.BugReports = contact.LogSink{Logger: deps.LoggerOrDefault()}
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.AboutPrefix, Handler: mux}, nil
}
