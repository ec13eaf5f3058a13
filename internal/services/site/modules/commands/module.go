// Package commands serves the bot command reference page.
package commands

import (
	"net/http"

	module "github.com/tftrival/site/internal/services/site/module"
	"github.com/tftrival/site/internal/services/site/routepath"
)

// Module provides the commands page.
type Module struct{}

// New returns a commands module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "commands" }

// Mount wires commands route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.CommandsPrefix, Handler: mux}, nil
}
