package commands

import (
	"time"

	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
)

// CopyResetDuration is how long a copied command stays marked.
const CopyResetDuration = 2 * time.Second

// Command is one bot command in the reference.
type Command struct {
	Name        sitei18n.Key
	Description sitei18n.Key
	Usage       string
}

// Category groups related commands.
type Category struct {
	ID       string
	Icon     string
	Name     sitei18n.Key
	Commands []Command
}

// Catalog returns the bot command reference in display order.
func Catalog() []Category {
	return []Category{
		{
			ID:   "players",
			Icon: "👥",
			Name: sitei18n.KeyCommandsCategoriesPlayersName,
			Commands: []Command{
				{Name: sitei18n.KeyCommandsCategoriesPlayersCommandsRegisterName, Description: sitei18n.KeyCommandsCategoriesPlayersCommandsRegisterDescription, Usage: "!register <SummonerName> <TagLine>"},
				{Name: sitei18n.KeyCommandsCategoriesPlayersCommandsUnregisterName, Description: sitei18n.KeyCommandsCategoriesPlayersCommandsUnregisterDescription, Usage: "!unregister <SummonerName>"},
				{Name: sitei18n.KeyCommandsCategoriesPlayersCommandsListName, Description: sitei18n.KeyCommandsCategoriesPlayersCommandsListDescription, Usage: "!list"},
			},
		},
		{
			ID:   "rankings",
			Icon: "🏆",
			Name: sitei18n.KeyCommandsCategoriesRankingsName,
			Commands: []Command{
				{Name: sitei18n.KeyCommandsCategoriesRankingsCommandsRankName, Description: sitei18n.KeyCommandsCategoriesRankingsCommandsRankDescription, Usage: "!rank"},
			},
		},
		{
			ID:   "config",
			Icon: "⚙️",
			Name: sitei18n.KeyCommandsCategoriesConfigName,
			Commands: []Command{
				{Name: sitei18n.KeyCommandsCategoriesConfigCommandsChannelName, Description: sitei18n.KeyCommandsCategoriesConfigCommandsChannelDescription, Usage: "!channel"},
				{Name: sitei18n.KeyCommandsCategoriesConfigCommandsSetTimeName, Description: sitei18n.KeyCommandsCategoriesConfigCommandsSetTimeDescription, Usage: "!set_time"},
			},
		},
		{
			ID:   "help",
			Icon: "❓",
			Name: sitei18n.KeyCommandsCategoriesHelpName,
			Commands: []Command{
				{Name: sitei18n.KeyCommandsCategoriesHelpCommandsHelpName, Description: sitei18n.KeyCommandsCategoriesHelpCommandsHelpDescription, Usage: "!help"},
			},
		},
	}
}

// CopyIndicator is the copy-button state that site.js drives in the browser.
// The server renders it unmarked and publishes Duration as the reset delay.
// Marking a new command replaces the previous one.
type CopyIndicator struct {
	usage string
	at    time.Time
}

// Mark records that usage was copied at at.
func (c *CopyIndicator) Mark(usage string, at time.Time) {
	c.usage = usage
	c.at = at
}

// Copied reports whether usage is still marked at now.
func (c CopyIndicator) Copied(usage string, now time.Time) bool {
	if c.usage == "" || c.usage != usage || now.Before(c.at) {
		return false
	}
	return now.Sub(c.at) < CopyResetDuration
}

// Duration returns how long a mark lasts.
func (CopyIndicator) Duration() time.Duration {
	return CopyResetDuration
}
