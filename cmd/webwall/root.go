package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"webwall/internal/bookmark"
	"webwall/internal/config"
	"webwall/internal/logger"
	"webwall/internal/metafetch"
	"webwall/internal/prefs"
	"webwall/internal/telemetry"
	"webwall/internal/ui"
	"webwall/internal/website"
)

// env carries the wired-up application dependencies shared by every
// subcommand.
type env struct {
	cfg        *config.Config
	log        *zap.Logger
	controller *website.Controller
	prefs      *prefs.Store
	bookmarks  *bookmark.Store
	fetcher    *metafetch.Fetcher
	shutdown   func(context.Context) error
}

func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	shutdown, err := telemetry.Init(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	store, err := website.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	controller, err := website.NewController(store)
	if err != nil {
		return nil, err
	}
	prefStore, err := prefs.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	bookmarks, err := bookmark.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:        cfg,
		log:        log,
		controller: controller,
		prefs:      prefStore,
		bookmarks:  bookmarks,
		fetcher:    &metafetch.Fetcher{Timeout: cfg.FetchTimeout},
		shutdown:   shutdown,
	}, nil
}

func (e *env) close(ctx context.Context) {
	if err := e.shutdown(ctx); err != nil {
		e.log.Warn("trace shutdown", zap.Error(err))
	}
	_ = e.log.Sync()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "webwall",
		Short: "Display websites as your desktop wallpaper",
		Long:  "Webwall manages a list of websites and displays the current one as your wallpaper.\nRunning without a subcommand opens the interactive site manager.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
		SilenceUsage: true,
	}
	root.AddCommand(newAddCmd(), newListCmd(), newRemoveCmd(), newCurrentCmd())
	return root
}

func runTUI(ctx context.Context) error {
	e, err := newEnv(ctx)
	if err != nil {
		return err
	}
	defer e.close(ctx)

	firstLaunch := e.prefs.Bool(prefs.KeyFirstLaunch)

	app := ui.NewAppModel(ui.AppOptions{
		Controller:  e.controller,
		Prefs:       e.prefs,
		Bookmarks:   e.bookmarks,
		Fetcher:     e.fetcher,
		Log:         e.log,
		FirstLaunch: firstLaunch,
	})

	e.log.Info("starting", zap.Int("websites", e.controller.Len()), zap.Bool("firstLaunch", firstLaunch))

	p := tea.NewProgram(ui.NewProgramModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}

	if firstLaunch {
		if err := e.prefs.SetBool(prefs.KeyFirstLaunch, false); err != nil {
			e.log.Warn("persist first-launch flag", zap.Error(err))
		}
	}
	return nil
}
