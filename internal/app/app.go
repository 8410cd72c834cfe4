package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/weatherframe/internal/config"
	"github.com/five82/weatherframe/internal/openweather"
	"github.com/five82/weatherframe/internal/prefs"
	"github.com/five82/weatherframe/internal/refresh"
	"github.com/five82/weatherframe/internal/taskqueue"
	"github.com/five82/weatherframe/internal/ui"
	"github.com/five82/weatherframe/internal/weather"
)

// Options configure the weatherframe application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/weatherframe/prefs.toml
	PollMinutes int    // refresh interval in minutes; zero uses config
	Debug       bool
}

// Run boots the dashboard and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PollMinutes > 0 {
		cfg.RefreshInterval = time.Duration(opts.PollMinutes) * time.Minute
	}

	closeLog, err := setupLogging(cfg.LogPath, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	dash, err := newDashboard(ctx, cfg, userPrefs.Theme, opts.PrefsPath)
	if err != nil {
		return err
	}

	slog.Info("weatherframe starting",
		"city", cfg.City,
		"language", cfg.Language,
		"interval", cfg.RefreshInterval,
		"theme", userPrefs.Theme)

	program := tea.NewProgram(dash.model)

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	})
	// Quit the program on SIGINT/SIGTERM.
	g.Go(func() error {
		select {
		case <-gctx.Done():
			program.Quit()
		case <-done:
		}
		return nil
	})

	err = g.Wait()

	// Never waits for an in-flight fetch.
	dash.scheduler.Shutdown()
	slog.Info("weatherframe stopped")
	return err
}

type dashboard struct {
	model     *ui.Model
	scheduler *refresh.Scheduler
	queue     *taskqueue.Queue
}

// newDashboard wires provider client → fetcher → task queue → cron trigger
// → UI model → scheduler.
func newDashboard(ctx context.Context, cfg config.Config, themeName, prefsPath string) (*dashboard, error) {
	client, err := openweather.NewClient(cfg.APIKey, cfg.Language, openweather.Options{
		BaseURL:        cfg.BaseURL,
		ConnectTimeout: cfg.ConnectTimeout,
		ReadTimeout:    cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init openweather client: %w", err)
	}

	fetcher := &weather.Fetcher{
		Source:   client,
		City:     cfg.City,
		Location: time.Local,
	}

	queue := taskqueue.New()
	trigger := refresh.NewCronTrigger(cfg.RefreshInterval, queue)

	model := ui.New(ui.Options{
		Queue:     queue,
		Locale:    cfg.Locale,
		City:      cfg.City,
		LogPath:   cfg.LogPath,
		PrefsPath: prefsPath,
		ThemeName: themeName,
	})

	scheduler, err := refresh.New(ctx, refresh.Config{
		Fetcher:   fetcher,
		Queue:     queue,
		Presenter: model,
		Trigger:   trigger,
		Interval:  cfg.RefreshInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("init refresh scheduler: %w", err)
	}
	model.Attach(scheduler)

	return &dashboard{model: model, scheduler: scheduler, queue: queue}, nil
}
