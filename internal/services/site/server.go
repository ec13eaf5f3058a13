// Package site hosts the TFT Rival Bot promotional website.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tftrival/site/internal/platform/grpc"
	"github.com/tftrival/site/internal/platform/i18n/catalog"
	"github.com/tftrival/site/internal/platform/timeouts"
	siteapp "github.com/tftrival/site/internal/services/site/app"
	"github.com/tftrival/site/internal/services/site/contact"
	"github.com/tftrival/site/internal/services/site/integration/emailjs"
	module "github.com/tftrival/site/internal/services/site/module"
	"github.com/tftrival/site/internal/services/site/modules"
	"github.com/tftrival/site/internal/services/site/platform/httpx"
	sitei18n "github.com/tftrival/site/internal/services/site/platform/i18n"
	"github.com/tftrival/site/internal/services/site/platform/requestmeta"
	"github.com/tftrival/site/internal/services/site/routepath"
	sitestatic "github.com/tftrival/site/internal/services/site/static"
)

// FeedbackHealthService names the gRPC health entry tracking relay readiness.
const FeedbackHealthService = "feedback"

// Config defines startup inputs for the site service.
type Config struct {
	HTTPAddr   string
	HealthAddr string

	AppEnv       string
	AnalyticsKey string
	APIURL       string
	InviteURL    string

	EmailJS           emailjs.Config
	Credentials       contact.Credentials
	FeedbackRecipient string

	ContactRatePerMinute int
	ContactBurst         int
	TrustForwardedProto  bool

	Logger *slog.Logger
	Now    func() time.Time
	// Relay overrides the EmailJS client, mainly for tests.
	Relay contact.Relay
}

// Server hosts the site HTTP surface, the optional gRPC health endpoint, and
// their lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	health     *grpc.HealthServer
}

type composition struct {
	handler   http.Handler
	submitter *contact.Submitter
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	built, err := compose(cfg)
	if err != nil {
		return nil, err
	}
	return built.handler, nil
}

func compose(cfg Config) (composition, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return composition{}, fmt.Errorf("load translation catalog: %w", err)
	}
	localizers, err := sitei18n.NewResolver(bundle)
	if err != nil {
		return composition{}, err
	}

	relay := cfg.Relay
	if relay == nil {
		relayConfig := cfg.EmailJS
		if relayConfig.Timeout <= 0 {
			relayConfig.Timeout = timeouts.Relay
		}
		relay = emailjs.NewClient(relayConfig)
	}
	submitter := contact.NewSubmitter(relay, contact.SubmitterConfig{
		Credentials: cfg.Credentials,
		Recipient:   cfg.FeedbackRecipient,
		Logger:      logger,
	})
	if missing := cfg.Credentials.Missing(); len(missing) > 0 {
		logger.Warn("feedback relay not configured", "missing", strings.Join(missing, ","))
	}

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	deps := module.Dependencies{
		Localizers:    localizers,
		Logger:        logger,
		SchemePolicy:  policy,
		Now:           cfg.Now,
		AppEnv:        cfg.AppEnv,
		AnalyticsKey:  cfg.AnalyticsKey,
		APIURL:        cfg.APIURL,
		InviteURL:     cfg.InviteURL,
		Feedback:      submitter,
		BugReports:    contact.LogSink{Logger: logger},
		ContactLimits: httpx.NewRateLimiter(cfg.ContactRatePerMinute, cfg.ContactBurst),
	}
	rootMux, err := siteapp.Compose(siteapp.ComposeInput{
		Dependencies: deps,
		Modules:      modules.DefaultModules(),
	})
	if err != nil {
		return composition{}, err
	}
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.HandleFunc(routepath.Health, httpx.MethodNotAllowed(http.MethodGet, http.MethodHead))
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(sitestatic.FS))))

	return composition{
		handler: httpx.Chain(rootMux,
			httpx.RecoverPanic(logger),
			httpx.RequestID(),
			httpx.LogRequests(logger),
		),
		submitter: submitter,
	}, nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

// NewServer validates config and constructs a site server. When HealthAddr is
// set the gRPC health listener is bound immediately.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	built, err := compose(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose site handler: %w", err)
	}
	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           built.handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}

	if healthAddr := strings.TrimSpace(cfg.HealthAddr); healthAddr != "" {
		listener, err := net.Listen("tcp", healthAddr)
		if err != nil {
			return nil, fmt.Errorf("listen grpc health on %s: %w", healthAddr, err)
		}
		health, err := grpc.NewHealthServer(listener)
		if err != nil {
			_ = listener.Close()
			return nil, err
		}
		health.SetServing(FeedbackHealthService, built.submitter.Available())
		server.health = health
	}
	return server, nil
}

// HealthAddr reports the bound gRPC health address, or "" when disabled.
func (s *Server) HealthAddr() string {
	if s == nil {
		return ""
	}
	return s.health.Addr()
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return nil
	}
	return s.httpServer.Handler
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	healthErr := make(chan error, 1)
	if s.health != nil {
		log.Printf("grpc health listening on %s", s.health.Addr())
		go func() {
			healthErr <- s.health.Serve(ctx, timeouts.Shutdown)
		}()
	} else {
		close(healthErr)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("http listening on %s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	var result error
	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		shutdownCancel()
		if err != nil {
			result = fmt.Errorf("shutdown site http server: %w", err)
		}
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			result = fmt.Errorf("serve site http: %w", err)
		}
	}

	cancel()
	if err := <-healthErr; err != nil && result == nil {
		result = err
	}
	return result
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.health.Close()
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
}
