package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-admin-panel/internal/config"
	"go-admin-panel/internal/handler"
	"go-admin-panel/internal/metrics"
	"go-admin-panel/internal/middleware"
	"go-admin-panel/internal/websocket"
)

type Handlers struct {
	Shell     *handler.ShellHandler
	Dashboard *handler.DashboardHandler
	Terminal  *handler.TerminalHandler
	File      *handler.FileHandler
	News      *handler.NewsHandler
	User      *handler.UserHandler
	Settings  *handler.SettingsHandler
	Log       *handler.LogHandler
}

func New(cfg *config.Config, h Handlers, hub *websocket.Hub, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, "/health", "/metrics")

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging(logger, "/health", "/metrics"))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/ws", hub.ServeWS)

		api.Route("/shell", func(shell chi.Router) {
			shell.Get("/", h.Shell.State)
			shell.Get("/nav", h.Shell.Nav)
			shell.Put("/tab", h.Shell.SelectTab)
			shell.Put("/theme", h.Shell.SetTheme)
		})

		api.Get("/dashboard", h.Dashboard.Get)

		api.Route("/terminal", func(term chi.Router) {
			term.Get("/commands", h.Terminal.Commands)
			term.Get("/sessions", h.Terminal.ListSessions)
			term.Post("/sessions", h.Terminal.CreateSession)
			term.Route("/sessions/{id}", func(session chi.Router) {
				session.Get("/", h.Terminal.GetSession)
				session.Delete("/", h.Terminal.DeleteSession)
				session.Get("/lines", h.Terminal.Lines)
				session.Delete("/lines", h.Terminal.Clear)
				session.Post("/exec", h.Terminal.Exec)
				session.Get("/history", h.Terminal.History)
				session.Post("/history/up", h.Terminal.HistoryUp)
				session.Post("/history/down", h.Terminal.HistoryDown)
			})
		})

		api.Route("/files", func(files chi.Router) {
			files.Get("/", h.File.List)
			files.Post("/", h.File.Create)
			files.Get("/browser", h.File.Browser)
			files.Post("/browser/open", h.File.Open)
			files.Post("/browser/home", h.File.Home)
			files.Get("/{id}", h.File.Get)
			files.Patch("/{id}", h.File.Update)
			files.Delete("/{id}", h.File.Delete)
			files.Post("/{id}/select", h.File.Select)
		})

		api.Route("/news", func(news chi.Router) {
			news.Get("/", h.News.List)
			news.Post("/", h.News.Create)
			news.Get("/stats", h.News.Stats)
			news.Get("/categories", h.News.Categories)
			news.Get("/selected", h.News.Selected)
			news.Post("/preview", h.News.Preview)
			news.Get("/{id}", h.News.Get)
			news.Patch("/{id}", h.News.Update)
			news.Delete("/{id}", h.News.Delete)
			news.Post("/{id}/select", h.News.Select)
			news.Get("/{id}/render", h.News.Render)
		})

		api.Route("/users", func(users chi.Router) {
			users.Get("/", h.User.List)
			users.Post("/", h.User.Create)
			users.Get("/stats", h.User.Stats)
			users.Get("/selected", h.User.Selected)
			users.Get("/{id}", h.User.Get)
			users.Patch("/{id}", h.User.Update)
			users.Delete("/{id}", h.User.Delete)
			users.Post("/{id}/select", h.User.Select)
		})

		api.Route("/settings", func(settings chi.Router) {
			settings.Get("/", h.Settings.Get)
			settings.Post("/save", h.Settings.Save)
			settings.Post("/reset", h.Settings.Reset)
			settings.Get("/export", h.Settings.Export)
			settings.Get("/{section}", h.Settings.Section)
			settings.Patch("/{section}", h.Settings.Patch)
		})

		api.Route("/logs", func(logs chi.Router) {
			logs.Get("/", h.Log.List)
			logs.Post("/", h.Log.Create)
			logs.Get("/stats", h.Log.Stats)
			logs.Get("/export", h.Log.Export)
			logs.Get("/auto-refresh", h.Log.AutoRefresh)
			logs.Put("/auto-refresh", h.Log.SetAutoRefresh)
			logs.Get("/{id}", h.Log.Get)
			logs.Post("/{id}/select", h.Log.Select)
		})
	})

	return r
}
