package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-admin-panel/internal/config"
	"go-admin-panel/internal/event"
	"go-admin-panel/internal/handler"
	"go-admin-panel/internal/logger"
	"go-admin-panel/internal/metrics"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/router"
	"go-admin-panel/internal/seed"
	"go-admin-panel/internal/service"
	"go-admin-panel/internal/terminal"
	"go-admin-panel/internal/websocket"
)

type App struct {
	server       *http.Server
	logger       *slog.Logger
	cleanupFuncs []func()
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed data: %w", err)
	}
	log.Info("seed data loaded",
		"source", seedSource(cfg.SeedFile),
		"files", len(data.Files),
		"articles", len(data.News.Articles),
		"users", len(data.Users),
		"logs", len(data.Logs),
		"commands", len(data.Terminal.Commands),
	)

	appHandler, cleanup, err := NewHandler(cfg, data, log)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appHandler,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server:       server,
		logger:       log,
		cleanupFuncs: []func(){cleanup},
	}, nil
}

// NewHandler wires every service behind the HTTP router. The returned cleanup
// stops background goroutines (terminal workers, log generator, websocket hub).
func NewHandler(cfg *config.Config, data *seed.Data, log *slog.Logger) (http.Handler, func(), error) {
	m := metrics.New()

	bus := event.NewBus()
	bus.OnDrop(func(e event.Event) {
		m.EventsDropped.Inc()
		log.Debug("event dropped", "type", e.Type, "topic", e.Topic)
	})

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := websocket.NewHub(bus, cfg.CORSOrigins)
	hub.OnClientCount(func(n int) { m.WSClients.Set(float64(n)) })
	go hub.Run(hubCtx)

	settingsService, err := service.NewSettingsService(data.Settings, cfg.SettingsSaveDelay, bus)
	if err != nil {
		stopHub()
		return nil, nil, fmt.Errorf("failed to initialize settings: %w", err)
	}

	terminalService := service.NewTerminalService(
		terminal.NewDefaultDictionary(dictionaryEntries(data.Terminal.Commands), nil),
		terminal.Options{
			DelayMin: cfg.TerminalDelayMin,
			DelayMax: cfg.TerminalDelayMax,
			Welcome:  data.Terminal.Welcome,
			MaxLines: cfg.TerminalMaxLines,
			OnLine: func(_ string, line model.TerminalLine) {
				m.TerminalCommands.WithLabelValues(line.Type).Inc()
			},
		},
		cfg.TerminalMaxSessions,
		bus,
	)
	terminalService.OnSessionCount(func(n int) { m.TerminalSessions.Set(float64(n)) })

	fileService := service.NewFileService(data.Files, bus)
	newsService := service.NewNewsService(data.News.Articles, data.News.Categories, bus, nil)
	userService := service.NewUserService(data.Users, bus, nil)
	logService := service.NewLogService(data.Logs, bus, service.LogServiceOptions{
		MaxEntries:      cfg.LogsMaxEntries,
		RefreshInterval: cfg.LogsRefreshInterval,
	})
	shellService := service.NewShellService(data.Nav, bus)
	dashboardService := service.NewDashboardService(data.Dashboard, statsSource(cfg.DashboardSource, data.Dashboard.Stats))

	m.ObserveCollection("files", fileService.Len)
	m.ObserveCollection("news", newsService.Len)
	m.ObserveCollection("users", userService.Len)
	m.ObserveCollection("logs", logService.Len)
	log.Info("services ready", "dashboard_source", cfg.DashboardSource)

	appRouter := router.New(cfg, router.Handlers{
		Shell:     handler.NewShellHandler(shellService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Terminal:  handler.NewTerminalHandler(terminalService),
		File:      handler.NewFileHandler(fileService),
		News:      handler.NewNewsHandler(newsService),
		User:      handler.NewUserHandler(userService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Log:       handler.NewLogHandler(logService),
	}, hub, m, log)

	cleanup := func() {
		logService.Close()
		terminalService.Close()
		stopHub()
	}

	return appRouter, cleanup, nil
}

func (a *App) Run() error {
	go func() {
		a.logger.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			a.logger.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	for _, cleanup := range a.cleanupFuncs {
		cleanup()
	}

	a.logger.Info("server stopped")
	return nil
}

func dictionaryEntries(commands []seed.Command) []terminal.Entry {
	entries := make([]terminal.Entry, 0, len(commands))
	for _, cmd := range commands {
		entries = append(entries, terminal.Entry{Name: cmd.Name, Output: cmd.Output})
	}
	return entries
}

func statsSource(name string, base model.ServerStats) service.StatsSource {
	if name == config.DashboardSourceHost {
		return service.NewHostStats(base)
	}
	return service.NewMockStats(base)
}

func seedSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
