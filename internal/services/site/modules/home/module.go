// Package home serves the landing page and the root fallbacks.
package home

import (
	"net/http"
	"strings"

	module "github.com/tftrival/site/internal/services/site/module"
	"github.com/tftrival/site/internal/services/site/routepath"
)

// DefaultInviteURL adds the bot to a Discord server.
const DefaultInviteURL = "https://discord.com/api/oauth2/authorize?client_id=1326430140515100702&permissions=0&scope=bot%20applications.commands"

// Module provides the landing page.
type Module struct{}

// New returns a home module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if strings.TrimSpace(deps.InviteURL) == "" {
		deps.InviteURL = DefaultInviteURL
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
