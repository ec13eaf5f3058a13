package i18n

// Key names one message in the site catalogs.
type Key string

const (
	KeyNavBrand      Key = "nav.brand"
	KeyNavHome       Key = "nav.home"
	KeyNavCommands   Key = "nav.commands"
	KeyNavAbout      Key = "nav.about"
	KeyNavMenu       Key = "nav.menu"
	KeyNavLanguage   Key = "nav.language"
	KeyNavLanguageEn Key = "nav.language.en"
	KeyNavLanguageFr Key = "nav.language.fr"
)

const (
	KeyLayoutDescription           Key = "layout.description"
	KeyLayoutFooterTagline         Key = "layout.footer.tagline"
	KeyLayoutFooterCopyright       Key = "layout.footer.copyright"
	KeyLayoutErrorTitle            Key = "layout.error.title"
	KeyLayoutErrorNotFound         Key = "layout.error.notFound"
	KeyLayoutErrorForbidden        Key = "layout.error.forbidden"
	KeyLayoutErrorRateLimited      Key = "layout.error.rateLimited"
	KeyLayoutErrorMethodNotAllowed Key = "layout.error.methodNotAllowed"
	KeyLayoutErrorUnavailable      Key = "layout.error.unavailable"
	KeyLayoutErrorInternal         Key = "layout.error.internal"
	KeyLayoutErrorBack             Key = "layout.error.back"
)

const (
	KeyHomeMetaTitle                   Key = "home.meta.title"
	KeyHomeHeroTitle                   Key = "home.hero.title"
	KeyHomeHeroSubtitle                Key = "home.hero.subtitle"
	KeyHomeHeroInviteButton            Key = "home.hero.inviteButton"
	KeyHomeHeroCommandsButton          Key = "home.hero.commandsButton"
	KeyHomeFeaturesTitle               Key = "home.features.title"
	KeyHomeFeaturesFeature1Title       Key = "home.features.feature1.title"
	KeyHomeFeaturesFeature1Description Key = "home.features.feature1.description"
	KeyHomeFeaturesFeature2Title       Key = "home.features.feature2.title"
	KeyHomeFeaturesFeature2Description Key = "home.features.feature2.description"
	KeyHomeFeaturesFeature3Title       Key = "home.features.feature3.title"
	KeyHomeFeaturesFeature3Description Key = "home.features.feature3.description"
	KeyHomeStatsServers                Key = "home.stats.servers"
	KeyHomeStatsServersLabel           Key = "home.stats.serversLabel"
	KeyHomeStatsUsers                  Key = "home.stats.users"
	KeyHomeStatsUsersLabel             Key = "home.stats.usersLabel"
	KeyHomeStatsCommands               Key = "home.stats.commands"
	KeyHomeStatsCommandsLabel          Key = "home.stats.commandsLabel"
	KeyHomeStatsUptime                 Key = "home.stats.uptime"
	KeyHomeCtaTitle                    Key = "home.cta.title"
	KeyHomeCtaDescription              Key = "home.cta.description"
	KeyHomeCtaButton                   Key = "home.cta.button"
)

const (
	KeyCommandsMetaTitle                                      Key = "commands.meta.title"
	KeyCommandsTitle                                          Key = "commands.title"
	KeyCommandsSubtitle                                       Key = "commands.subtitle"
	KeyCommandsCopied                                         Key = "commands.copied"
	KeyCommandsCopy                                           Key = "commands.copy"
	KeyCommandsFooter                                         Key = "commands.footer"
	KeyCommandsCategoriesPlayersName                          Key = "commands.categories.players.name"
	KeyCommandsCategoriesPlayersCommandsRegisterName          Key = "commands.categories.players.commands.register.name"
	KeyCommandsCategoriesPlayersCommandsRegisterDescription   Key = "commands.categories.players.commands.register.description"
	KeyCommandsCategoriesPlayersCommandsUnregisterName        Key = "commands.categories.players.commands.unregister.name"
	KeyCommandsCategoriesPlayersCommandsUnregisterDescription Key = "commands.categories.players.commands.unregister.description"
	KeyCommandsCategoriesPlayersCommandsListName              Key = "commands.categories.players.commands.list.name"
	KeyCommandsCategoriesPlayersCommandsListDescription       Key = "commands.categories.players.commands.list.description"
	KeyCommandsCategoriesRankingsName                         Key = "commands.categories.rankings.name"
	KeyCommandsCategoriesRankingsCommandsRankName             Key = "commands.categories.rankings.commands.rank.name"
	KeyCommandsCategoriesRankingsCommandsRankDescription      Key = "commands.categories.rankings.commands.rank.description"
	KeyCommandsCategoriesConfigName                           Key = "commands.categories.config.name"
	KeyCommandsCategoriesConfigCommandsChannelName            Key = "commands.categories.config.commands.channel.name"
	KeyCommandsCategoriesConfigCommandsChannelDescription     Key = "commands.categories.config.commands.channel.description"
	KeyCommandsCategoriesConfigCommandsSetTimeName            Key = "commands.categories.config.commands.setTime.name"
	KeyCommandsCategoriesConfigCommandsSetTimeDescription     Key = "commands.categories.config.commands.setTime.description"
	KeyCommandsCategoriesHelpName                             Key = "commands.categories.help.name"
	KeyCommandsCategoriesHelpCommandsHelpName                 Key = "commands.categories.help.commands.help.name"
	KeyCommandsCategoriesHelpCommandsHelpDescription          Key = "commands.categories.help.commands.help.description"
)

const (
	KeyAboutMetaTitle                     Key = "about.meta.title"
	KeyAboutTitle                         Key = "about.title"
	KeyAboutSubtitle                      Key = "about.subtitle"
	KeyAboutWhatTitle                     Key = "about.what.title"
	KeyAboutWhatDescription               Key = "about.what.description"
	KeyAboutFeaturesTitle                 Key = "about.features.title"
	KeyAboutFeaturesFeature1              Key = "about.features.feature1"
	KeyAboutFeaturesFeature2              Key = "about.features.feature2"
	KeyAboutFeaturesFeature3              Key = "about.features.feature3"
	KeyAboutFeaturesFeature4              Key = "about.features.feature4"
	KeyAboutWhyTitle                      Key = "about.why.title"
	KeyAboutWhyDescription                Key = "about.why.description"
	KeyAboutWhyReason1Title               Key = "about.why.reason1.title"
	KeyAboutWhyReason1Description         Key = "about.why.reason1.description"
	KeyAboutWhyReason2Title               Key = "about.why.reason2.title"
	KeyAboutWhyReason2Description         Key = "about.why.reason2.description"
	KeyAboutDeveloperTitle                Key = "about.developer.title"
	KeyAboutDeveloperDeveloperTitle       Key = "about.developer.developerTitle"
	KeyAboutDeveloperDeveloperDescription Key = "about.developer.developerDescription"
	KeyAboutDeveloperLinksGithub          Key = "about.developer.links.github"
	KeyAboutDeveloperLinksPortfolio       Key = "about.developer.links.portfolio"
	KeyAboutDeveloperLinksLinkedin        Key = "about.developer.links.linkedin"
	KeyAboutDeveloperLinksGithubLabel     Key = "about.developer.links.githubLabel"
	KeyAboutDeveloperLinksPortfolioLabel  Key = "about.developer.links.portfolioLabel"
	KeyAboutDeveloperLinksLinkedinLabel   Key = "about.developer.links.linkedinLabel"
	KeyAboutDeveloperTechStackTitle       Key = "about.developer.techStackTitle"
	KeyAboutDeveloperTechStack            Key = "about.developer.techStack"
	KeyAboutDeveloperLibrariesTitle       Key = "about.developer.librariesTitle"
	KeyAboutDeveloperLibraries            Key = "about.developer.libraries"
	KeyAboutContactTitle                  Key = "about.contact.title"
	KeyAboutContactBugTab                 Key = "about.contact.bugTab"
	KeyAboutContactFeedbackTab            Key = "about.contact.feedbackTab"
	KeyAboutBugDescription                Key = "about.bug.description"
	KeyAboutBugNameLabel                  Key = "about.bug.nameLabel"
	KeyAboutBugNamePlaceholder            Key = "about.bug.namePlaceholder"
	KeyAboutBugEmailLabel                 Key = "about.bug.emailLabel"
	KeyAboutBugEmailPlaceholder           Key = "about.bug.emailPlaceholder"
	KeyAboutBugTitleLabel                 Key = "about.bug.titleLabel"
	KeyAboutBugTitlePlaceholder           Key = "about.bug.titlePlaceholder"
	KeyAboutBugDescriptionLabel           Key = "about.bug.descriptionLabel"
	KeyAboutBugDescriptionPlaceholder     Key = "about.bug.descriptionPlaceholder"
	KeyAboutBugStepsLabel                 Key = "about.bug.stepsLabel"
	KeyAboutBugStepsPlaceholder           Key = "about.bug.stepsPlaceholder"
	KeyAboutBugSubmitButton               Key = "about.bug.submitButton"
	KeyAboutBugSuccess                    Key = "about.bug.success"
	KeyAboutFeedbackDescription           Key = "about.feedback.description"
	KeyAboutFeedbackNameLabel             Key = "about.feedback.nameLabel"
	KeyAboutFeedbackNamePlaceholder       Key = "about.feedback.namePlaceholder"
	KeyAboutFeedbackEmailLabel            Key = "about.feedback.emailLabel"
	KeyAboutFeedbackEmailPlaceholder      Key = "about.feedback.emailPlaceholder"
	KeyAboutFeedbackMessageLabel          Key = "about.feedback.messageLabel"
	KeyAboutFeedbackMessagePlaceholder    Key = "about.feedback.messagePlaceholder"
	KeyAboutFeedbackSubmitButton          Key = "about.feedback.submitButton"
	KeyAboutFeedbackSending               Key = "about.feedback.sending"
	KeyAboutFeedbackSuccess               Key = "about.feedback.success"
	KeyAboutFeedbackError                 Key = "about.feedback.error"
	KeyAboutFeedbackConfigError           Key = "about.feedback.configError"
	KeyAboutFeedbackInFlight              Key = "about.feedback.inFlight"
	KeyAboutFormRequired                  Key = "about.form.required"
	KeyAboutFormInvalidEmail              Key = "about.form.invalidEmail"
	KeyAboutFormTooLong                   Key = "about.form.tooLong"
)

// AllKeys lists every key the site renders. Startup checks that each
// locale defines all of them.
func AllKeys() []Key {
	return []Key{
		KeyNavBrand,
		KeyNavHome,
		KeyNavCommands,
		KeyNavAbout,
		KeyNavMenu,
		KeyNavLanguage,
		KeyNavLanguageEn,
		KeyNavLanguageFr,
		KeyLayoutDescription,
		KeyLayoutFooterTagline,
		KeyLayoutFooterCopyright,
		KeyLayoutErrorTitle,
		KeyLayoutErrorNotFound,
		KeyLayoutErrorForbidden,
		KeyLayoutErrorRateLimited,
		KeyLayoutErrorMethodNotAllowed,
		KeyLayoutErrorUnavailable,
		KeyLayoutErrorInternal,
		KeyLayoutErrorBack,
		KeyHomeMetaTitle,
		KeyHomeHeroTitle,
		KeyHomeHeroSubtitle,
		KeyHomeHeroInviteButton,
		KeyHomeHeroCommandsButton,
		KeyHomeFeaturesTitle,
		KeyHomeFeaturesFeature1Title,
		KeyHomeFeaturesFeature1Description,
		KeyHomeFeaturesFeature2Title,
		KeyHomeFeaturesFeature2Description,
		KeyHomeFeaturesFeature3Title,
		KeyHomeFeaturesFeature3Description,
		KeyHomeStatsServers,
		KeyHomeStatsServersLabel,
		KeyHomeStatsUsers,
		KeyHomeStatsUsersLabel,
		KeyHomeStatsCommands,
		KeyHomeStatsCommandsLabel,
		KeyHomeStatsUptime,
		KeyHomeCtaTitle,
		KeyHomeCtaDescription,
		KeyHomeCtaButton,
		KeyCommandsMetaTitle,
		KeyCommandsTitle,
		KeyCommandsSubtitle,
		KeyCommandsCopied,
		KeyCommandsCopy,
		KeyCommandsFooter,
		KeyCommandsCategoriesPlayersName,
		KeyCommandsCategoriesPlayersCommandsRegisterName,
		KeyCommandsCategoriesPlayersCommandsRegisterDescription,
		KeyCommandsCategoriesPlayersCommandsUnregisterName,
		KeyCommandsCategoriesPlayersCommandsUnregisterDescription,
		KeyCommandsCategoriesPlayersCommandsListName,
		KeyCommandsCategoriesPlayersCommandsListDescription,
		KeyCommandsCategoriesRankingsName,
		KeyCommandsCategoriesRankingsCommandsRankName,
		KeyCommandsCategoriesRankingsCommandsRankDescription,
		KeyCommandsCategoriesConfigName,
		KeyCommandsCategoriesConfigCommandsChannelName,
		KeyCommandsCategoriesConfigCommandsChannelDescription,
		KeyCommandsCategoriesConfigCommandsSetTimeName,
		KeyCommandsCategoriesConfigCommandsSetTimeDescription,
		KeyCommandsCategoriesHelpName,
		KeyCommandsCategoriesHelpCommandsHelpName,
		KeyCommandsCategoriesHelpCommandsHelpDescription,
		KeyAboutMetaTitle,
		KeyAboutTitle,
		KeyAboutSubtitle,
		KeyAboutWhatTitle,
		KeyAboutWhatDescription,
		KeyAboutFeaturesTitle,
		KeyAboutFeaturesFeature1,
		KeyAboutFeaturesFeature2,
		KeyAboutFeaturesFeature3,
		KeyAboutFeaturesFeature4,
		KeyAboutWhyTitle,
		KeyAboutWhyDescription,
		KeyAboutWhyReason1Title,
		KeyAboutWhyReason1Description,
		KeyAboutWhyReason2Title,
		KeyAboutWhyReason2Description,
		KeyAboutDeveloperTitle,
		KeyAboutDeveloperDeveloperTitle,
		KeyAboutDeveloperDeveloperDescription,
		KeyAboutDeveloperLinksGithub,
		KeyAboutDeveloperLinksPortfolio,
		KeyAboutDeveloperLinksLinkedin,
		KeyAboutDeveloperLinksGithubLabel,
		KeyAboutDeveloperLinksPortfolioLabel,
		KeyAboutDeveloperLinksLinkedinLabel,
		KeyAboutDeveloperTechStackTitle,
		KeyAboutDeveloperTechStack,
		KeyAboutDeveloperLibrariesTitle,
		KeyAboutDeveloperLibraries,
		KeyAboutContactTitle,
		KeyAboutContactBugTab,
		KeyAboutContactFeedbackTab,
		KeyAboutBugDescription,
		KeyAboutBugNameLabel,
		KeyAboutBugNamePlaceholder,
		KeyAboutBugEmailLabel,
		KeyAboutBugEmailPlaceholder,
		KeyAboutBugTitleLabel,
		KeyAboutBugTitlePlaceholder,
		KeyAboutBugDescriptionLabel,
		KeyAboutBugDescriptionPlaceholder,
		KeyAboutBugStepsLabel,
		KeyAboutBugStepsPlaceholder,
		KeyAboutBugSubmitButton,
		KeyAboutBugSuccess,
		KeyAboutFeedbackDescription,
		KeyAboutFeedbackNameLabel,
		KeyAboutFeedbackNamePlaceholder,
		KeyAboutFeedbackEmailLabel,
		KeyAboutFeedbackEmailPlaceholder,
		KeyAboutFeedbackMessageLabel,
		KeyAboutFeedbackMessagePlaceholder,
		KeyAboutFeedbackSubmitButton,
		KeyAboutFeedbackSending,
		KeyAboutFeedbackSuccess,
		KeyAboutFeedbackError,
		KeyAboutFeedbackConfigError,
		KeyAboutFeedbackInFlight,
		KeyAboutFormRequired,
		KeyAboutFormInvalidEmail,
		KeyAboutFormTooLong,
	}
}
