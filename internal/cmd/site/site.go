// Package site parses site command configuration and runs the server.
package site

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	entrypoint "github.com/tftrival/site/internal/platform/cmd"
	"github.com/tftrival/site/internal/platform/timeouts"
	siteservice "github.com/tftrival/site/internal/services/site"
	"github.com/tftrival/site/internal/services/site/contact"
	"github.com/tftrival/site/internal/services/site/integration/emailjs"
	"github.com/tftrival/site/internal/services/site/modules/home"
)

// Supported deployment environments.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Config holds the site command configuration.
type Config struct {
	HTTPAddr   string `env:"TFTRIVAL_SITE_HTTP_ADDR" envDefault:"localhost:8080"`
	HealthAddr string `env:"TFTRIVAL_SITE_HEALTH_ADDR"`

	APIURL       string `env:"TFTRIVAL_API_URL"`
	AppEnv       string `env:"TFTRIVAL_APP_ENV" envDefault:"development"`
	AnalyticsKey string `env:"TFTRIVAL_ANALYTICS_KEY"`
	BotInviteURL string `env:"TFTRIVAL_BOT_INVITE_URL"`

	EmailJSServiceID          string        `env:"TFTRIVAL_EMAILJS_SERVICE_ID"`
	EmailJSTemplateIDFeedback string        `env:"TFTRIVAL_EMAILJS_TEMPLATE_ID_FEEDBACK"`
	EmailJSPublicKey          string        `env:"TFTRIVAL_EMAILJS_PUBLIC_KEY"`
	EmailJSAccessToken        string        `env:"TFTRIVAL_EMAILJS_ACCESS_TOKEN"`
	EmailJSBaseURL            string        `env:"TFTRIVAL_EMAILJS_BASE_URL" envDefault:"https://api.emailjs.com"`
	FeedbackRecipient         string        `env:"TFTRIVAL_FEEDBACK_RECIPIENT" envDefault:"kathou.trg@gmail.com"`
	RelayTimeout              time.Duration `env:"TFTRIVAL_RELAY_TIMEOUT" envDefault:"15s"`

	ContactRatePerMinute int  `env:"TFTRIVAL_CONTACT_RATE_PER_MIN" envDefault:"6"`
	ContactBurst         int  `env:"TFTRIVAL_CONTACT_RATE_BURST" envDefault:"3"`
	TrustForwardedProto  bool `env:"TFTRIVAL_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig loads env defaults, then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if fs != nil {
		fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
		fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (empty disables)")
		fs.StringVar(&cfg.AppEnv, "app-env", cfg.AppEnv, "Deployment environment: development, staging or production")
		fs.StringVar(&cfg.BotInviteURL, "bot-invite-url", cfg.BotInviteURL, "Discord invite URL for the bot")
		fs.StringVar(&cfg.EmailJSBaseURL, "emailjs-base-url", cfg.EmailJSBaseURL, "EmailJS API base URL")
		fs.DurationVar(&cfg.RelayTimeout, "relay-timeout", cfg.RelayTimeout, "Timeout for one feedback relay call")
		fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto from a fronting proxy")
		if err := entrypoint.ParseArgs(fs, args); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalizes and checks the configuration.
func (c *Config) Validate() error {
	c.AppEnv = strings.ToLower(strings.TrimSpace(c.AppEnv))
	switch c.AppEnv {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		return fmt.Errorf("app env %q must be one of %s, %s, %s", c.AppEnv, EnvDevelopment, EnvStaging, EnvProduction)
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	// The relay is never left untimed.
	if c.RelayTimeout <= 0 {
		c.RelayTimeout = timeouts.Relay
	}
	return nil
}

// ServerConfig maps command configuration onto the site service config.
func (c Config) ServerConfig() siteservice.Config {
	inviteURL := strings.TrimSpace(c.BotInviteURL)
	if inviteURL == "" {
		inviteURL = home.DefaultInviteURL
	}
	return siteservice.Config{
		HTTPAddr:     c.HTTPAddr,
		HealthAddr:   c.HealthAddr,
		AppEnv:       c.AppEnv,
		AnalyticsKey: strings.TrimSpace(c.AnalyticsKey),
		APIURL:       strings.TrimSpace(c.APIURL),
		InviteURL:    inviteURL,
		EmailJS: emailjs.Config{
			BaseURL:     c.EmailJSBaseURL,
			AccessToken: strings.TrimSpace(c.EmailJSAccessToken),
			Timeout:     c.RelayTimeout,
		},
		Credentials: contact.Credentials{
			ServiceID:  strings.TrimSpace(c.EmailJSServiceID),
			TemplateID: strings.TrimSpace(c.EmailJSTemplateIDFeedback),
			PublicKey:  strings.TrimSpace(c.EmailJSPublicKey),
		},
		FeedbackRecipient:    c.FeedbackRecipient,
		ContactRatePerMinute: c.ContactRatePerMinute,
		ContactBurst:         c.ContactBurst,
		TrustForwardedProto:  c.TrustForwardedProto,
	}
}

// Run starts the site server under telemetry until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		server, err := siteservice.NewServer(ctx, cfg.ServerConfig())
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}
