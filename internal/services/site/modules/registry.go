package modules

import (
	"github.com/tftrival/site/internal/services/site/modules/about"
	"github.com/tftrival/site/internal/services/site/modules/commands"
	"github.com/tftrival/site/internal/services/site/modules/home"
)

// DefaultModules returns the site pages in navbar order. Home owns the root
// prefix and answers everything the other modules do not claim.
func DefaultModules() []Module {
	return []Module{
		home.New(),
		commands.New(),
		about.New(),
	}
}
