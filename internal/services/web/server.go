// Package web hosts the browser-facing festival service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/natur-festival/natur.eco/internal/auth"
	"github.com/natur-festival/natur.eco/internal/platform/assets"
	"github.com/natur-festival/natur.eco/internal/platform/timeouts"
	"github.com/natur-festival/natur.eco/internal/profile"
	module "github.com/natur-festival/natur.eco/internal/services/web/module"
	"github.com/natur-festival/natur.eco/internal/services/web/modules"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/httpx"
	webi18n "github.com/natur-festival/natur.eco/internal/services/web/platform/i18n"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/pagerender"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/sessioncookie"
	"github.com/natur-festival/natur.eco/internal/services/web/platform/weberror"
	webstatic "github.com/natur-festival/natur.eco/internal/services/web/static"
	webtemplates "github.com/natur-festival/natur.eco/internal/services/web/templates"
	"github.com/natur-festival/natur.eco/internal/storage"
	"github.com/natur-festival/natur.eco/internal/telemetry"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr  string
	Store     storage.Store
	Accounts  *auth.Service
	Profiles  *profile.Service
	Assets    *assets.Store
	Telemetry *telemetry.Emitter
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler composes the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Accounts == nil {
		return nil, errors.New("account service is required")
	}
	if cfg.Profiles == nil {
		return nil, errors.New("profile service is required")
	}

	principal := newPrincipalResolver(cfg.Accounts, cfg.Profiles)
	resolvers := principal.resolvers()
	events := eventTelemetry{emitter: cfg.Telemetry}
	deps := modules.Dependencies{
		Wizards:          cfg.Store,
		Accounts:         cfg.Accounts,
		AccountCreator:   cfg.Accounts,
		Profiles:         cfg.Profiles,
		ProfileCreator:   cfg.Profiles,
		Sessions:         cfg.Accounts,
		Telemetry:        events,
		AuthTelemetry:    events,
		ProfileTelemetry: events,
		Resolvers:        resolvers,
	}

	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range modules.Default(deps) {
		mount, err := feature.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %q: %w", feature.ID(), err)
		}
		prefix := strings.TrimSpace(mount.Prefix)
		if prefix == "" || mount.Handler == nil {
			return nil, fmt.Errorf("mount module %q: prefix and handler are required", feature.ID())
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		if prefix == "/" {
			root.Handle("/", mount.Handler)
			continue
		}
		root.Handle(prefix, mount.Handler)
		root.Handle(prefix+"/", mount.Handler)
	}

	root.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webstatic.FS))))
	if cfg.Assets != nil {
		root.Handle("GET /assets/", cfg.Assets.Handler())
	}
	root.HandleFunc("GET /admin", handleAdminStub(resolvers))
	root.HandleFunc("POST /salir", handleSignOut)
	root.HandleFunc("GET /healthz", handleHealth)

	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.Trace("natur-web"),
		httpx.RequestID(),
		withRequestPrincipalState(),
	), nil
}

// handleAdminStub reserves the backoffice route with a placeholder page
// until the organizing team's console ships.
func handleAdminStub(resolvers module.Resolvers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := webi18n.ResolveTag(r, resolvers.ResolveLanguage)
		copyPage := webi18n.AdminStub(tag)
		page := pagerender.Page{
			Title:           copyPage.Title,
			MetaDescription: copyPage.Intro,
			Fragment:        webtemplates.Marketing(webtemplates.MarketingView{Copy: copyPage}),
		}
		if err := pagerender.WritePage(w, r, resolvers, page); err != nil {
			weberror.WriteModuleError(w, r, err, resolvers)
		}
	}
}

func handleSignOut(w http.ResponseWriter, r *http.Request) {
	sessioncookie.Clear(w, r)
	httpx.WriteRedirect(w, r, "/")
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// eventTelemetry records request-scoped operational events through the
// shared emitter.
type eventTelemetry struct {
	emitter *telemetry.Emitter
}

func (t eventTelemetry) RecordWizardEvent(ctx context.Context, eventName string, wizardID string, userID string) {
	_ = t.emitter.Emit(ctx, storage.TelemetryEvent{
		EventName: eventName,
		Severity:  string(telemetry.SeverityInfo),
		UserID:    userID,
		WizardID:  wizardID,
	})
}

func (t eventTelemetry) RecordAuthEvent(ctx context.Context, eventName string, userID string) {
	_ = t.emitter.Emit(ctx, storage.TelemetryEvent{
		EventName: eventName,
		Severity:  string(telemetry.SeverityWarn),
		UserID:    userID,
	})
}

func (t eventTelemetry) RecordUploadRejected(ctx context.Context, userID string, reason string) {
	_ = t.emitter.Emit(ctx, storage.TelemetryEvent{
		EventName:  "upload_rejected",
		Severity:   string(telemetry.SeverityWarn),
		UserID:     userID,
		Attributes: map[string]any{"reason": reason},
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
