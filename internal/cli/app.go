// Package cli is the interactive shell for the studio portal: a small REPL
// over the session store, resource cache and page controllers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/studioportal/portal-client/internal/cache"
	"github.com/studioportal/portal-client/internal/config"
	"github.com/studioportal/portal-client/internal/logging"
	"github.com/studioportal/portal-client/internal/metrics"
	"github.com/studioportal/portal-client/internal/mutate"
	"github.com/studioportal/portal-client/internal/pages"
	"github.com/studioportal/portal-client/internal/session"
	"github.com/studioportal/portal-client/internal/storage"
	"github.com/studioportal/portal-client/internal/token"
	"github.com/studioportal/portal-client/internal/transport"
)

type App struct {
	config   *config.Config
	session  *session.Store
	registry *prometheus.Registry

	dashboard  *pages.Dashboard
	projects   *pages.ProjectsPage
	bookings   *pages.BookingsPage
	files      *pages.FilesPage
	recordings *pages.RecordingsPage
	requests   *pages.RequestsPage

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp wires the full client: storage, token store, transport, session,
// cache, mutation coordinator and one controller per view. Everything is
// constructed here and passed explicitly; there are no package-level
// singletons.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	st := storage.New(cfg.StorageDir)
	tokens := token.NewStore(st)
	client := transport.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, tokens, cfg.RateLimitRPS, log)
	sess := session.New(client, tokens, st, log)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	resources := cache.New(sess, collector, log)
	mutations := mutate.New(resources, collector, log)

	return &App{
		config:     cfg,
		session:    sess,
		registry:   registry,
		dashboard:  pages.NewDashboard(resources, client),
		projects:   pages.NewProjectsPage(resources, client),
		bookings:   pages.NewBookingsPage(resources, mutations, client),
		files:      pages.NewFilesPage(resources, client),
		recordings: pages.NewRecordingsPage(resources, client),
		requests:   pages.NewRequestsPage(resources, mutations, client),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		log:        log,
	}
}

// Run hydrates the session, optionally exposes /metrics, and hands control
// to the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	if a.config.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler(a.registry))
			if err := http.ListenAndServe(a.config.MetricsAddr, mux); err != nil {
				a.log.Warn(ctx, "metrics server stopped", "error", err)
			}
		}()
	}

	state := a.session.Init(ctx)
	if state == session.StateAuthenticated {
		if user, ok := a.session.CurrentUser(); ok {
			a.printf("Welcome back, %s!\n", user.FullName)
		}
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
	a.session.Teardown(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user, ok := a.session.CurrentUser(); ok {
		return user.Email
	}
	return "guest"
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
