package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-admin-panel/internal/config"
	"go-admin-panel/internal/event"
	"go-admin-panel/internal/model"
	"go-admin-panel/internal/seed"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *model.APIError `json:"error"`
	Meta    *model.Meta     `json:"meta"`
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:          "0",
		RequestTimeout:      5 * time.Second,
		CORSOrigins:         []string{"*"},
		RateLimitRPM:        10000,
		LogLevel:            "error",
		LogFormat:           "text",
		TerminalMaxSessions: 8,
		TerminalMaxLines:    1000,
		LogsRefreshInterval: time.Hour,
		LogsMaxEntries:      1000,
		SettingsSaveDelay:   10 * time.Millisecond,
		DashboardSource:     config.DashboardSourceMock,
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	data, err := seed.Default()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h, cleanup, err := NewHandler(testConfig(), data, log)
	require.NoError(t, err)

	server := httptest.NewServer(h)
	t.Cleanup(func() {
		server.Close()
		cleanup()
	})
	return server
}

func doJSON(t *testing.T, method string, url string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") && resp.Header.Get("Content-Disposition") == "" {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestHealthAndHeaders(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestTerminalFlow(t *testing.T) {
	server := newTestServer(t)
	base := server.URL + "/api/v1/terminal/sessions/default"

	resp, env := doJSON(t, http.MethodPost, base+"/exec", model.ExecRequest{Command: "whoami"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	accepted := decode[model.ExecResponse](t, env)
	require.NotNil(t, accepted.Line)
	assert.Equal(t, "$ whoami", accepted.Line.Content)

	_, _ = doJSON(t, http.MethodPost, base+"/exec", model.ExecRequest{Command: "sudo rm"})

	var lines []model.TerminalLine
	require.Eventually(t, func() bool {
		_, env := doJSON(t, http.MethodGet, base+"/lines", nil)
		lines = decode[[]model.TerminalLine](t, env)
		return len(lines) == 6
	}, 3*time.Second, 20*time.Millisecond)

	assert.Equal(t, "admin", lines[3].Content)
	assert.Equal(t, model.LineError, lines[5].Type)
	assert.Equal(t, "Command not found: sudo rm", lines[5].Content)

	t.Run("empty command is rejected", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, base+"/exec", model.ExecRequest{Command: "   "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	})

	t.Run("history", func(t *testing.T) {
		_, env := doJSON(t, http.MethodPost, base+"/history/up", nil)
		assert.Equal(t, "sudo rm", decode[model.HistoryState](t, env).Input)
		_, env = doJSON(t, http.MethodPost, base+"/history/up", nil)
		assert.Equal(t, "whoami", decode[model.HistoryState](t, env).Input)
	})

	t.Run("clear", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, base+"/lines", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, env := doJSON(t, http.MethodGet, base+"/lines", nil)
		assert.Empty(t, decode[[]model.TerminalLine](t, env))
	})

	t.Run("default session cannot be deleted", func(t *testing.T) {
		resp, _ := doJSON(t, http.MethodDelete, base, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown session", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/terminal/sessions/nope/lines", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestFilesCreateThenDelete(t *testing.T) {
	server := newTestServer(t)
	url := server.URL + "/api/v1/files"

	_, env := doJSON(t, http.MethodGet, url, nil)
	before := decode[[]model.FileItem](t, env)

	resp, env := doJSON(t, http.MethodPost, url, model.CreateFileRequest{Name: "notes.md", Type: "file"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[model.FileItem](t, env)

	_, env = doJSON(t, http.MethodGet, url+"?search=NOTES", nil)
	assert.Equal(t, 1, env.Meta.Total)

	resp, _ = doJSON(t, http.MethodDelete, url+"/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, env = doJSON(t, http.MethodGet, url, nil)
	assert.Equal(t, before, decode[[]model.FileItem](t, env))

	t.Run("bad json", func(t *testing.T) {
		resp, env := doJSON(t, http.MethodPost, url, "{")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", env.Error.Code)
	})
}

func TestLogsFilterAndExport(t *testing.T) {
	server := newTestServer(t)

	_, env := doJSON(t, http.MethodGet, server.URL+"/api/v1/logs?level=error", nil)
	list := decode[struct {
		Entries []model.LogEntry `json:"entries"`
		Stats   model.LogStats   `json:"stats"`
	}](t, env)
	assert.Len(t, list.Entries, 2)
	assert.Equal(t, 2, list.Stats.Errors)
	assert.Equal(t, 2, env.Meta.Total)

	resp, err := http.Get(server.URL + "/api/v1/logs/export?category=security")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Regexp(t, `attachment; filename="logs-\d{4}-\d{2}-\d{2}\.json"`, resp.Header.Get("Content-Disposition"))

	var exported []model.LogEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&exported))
	assert.Len(t, exported, 2)
}

func TestSettingsFlow(t *testing.T) {
	server := newTestServer(t)
	url := server.URL + "/api/v1/settings"

	resp, env := doJSON(t, http.MethodPatch, url+"/api", `{"rateLimit": 5}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	resp, env = doJSON(t, http.MethodPatch, url+"/api", `{"rateLimit": 500}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decode[model.SettingsState](t, env)
	assert.True(t, state.Dirty)
	assert.Equal(t, 500, state.Config.API.RateLimit)

	resp, env = doJSON(t, http.MethodPost, url+"/save", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[model.SettingsState](t, env).Dirty)

	resp, _ = doJSON(t, http.MethodPatch, url+"/bogus", `{}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	exported, err := http.Get(url + "/export?format=yaml")
	require.NoError(t, err)
	defer exported.Body.Close()
	body, err := io.ReadAll(exported.Body)
	require.NoError(t, err)
	assert.Equal(t, `attachment; filename="server-config.yaml"`, exported.Header.Get("Content-Disposition"))
	assert.Contains(t, string(body), "rateLimit: 500")
}

func TestShellThemeCookie(t *testing.T) {
	server := newTestServer(t)

	resp, env := doJSON(t, http.MethodPut, server.URL+"/api/v1/shell/theme", model.ThemeRequest{Theme: "dark"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dark", decode[model.ShellState](t, env).Theme)

	var theme *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "theme" {
			theme = c
		}
	}
	require.NotNil(t, theme)
	assert.Positive(t, theme.MaxAge)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/shell", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "theme", Value: theme.Value})
	req.AddCookie(&http.Cookie{Name: "tab", Value: "logs"})
	got, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer got.Body.Close()

	var state envelope
	require.NoError(t, json.NewDecoder(got.Body).Decode(&state))
	shell := decode[model.ShellState](t, state)
	assert.Equal(t, "dark", shell.Theme)
	assert.Equal(t, "logs", shell.ActiveTab)

	resp, _ = doJSON(t, http.MethodPut, server.URL+"/api/v1/shell/tab", model.SelectTabRequest{Tab: "reports"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebsocketReceivesTerminalLines(t *testing.T) {
	server := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws?topics=default"
	conn, _, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The hub registers the client asynchronously; keep submitting until a
	// line arrives.
	got := make(chan event.Event, 1)
	go func() {
		_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		_, raw, err := conn.ReadMessage()
		if err != nil {
			close(got)
			return
		}
		var e event.Event
		if json.Unmarshal(raw, &e) == nil {
			got <- e
		}
	}()

	deadline := time.After(3 * time.Second)
	for {
		_, _ = doJSON(t, http.MethodPost, server.URL+"/api/v1/terminal/sessions/default/exec", model.ExecRequest{Command: "pwd"})
		select {
		case e, ok := <-got:
			require.True(t, ok, "websocket closed before an event arrived")
			assert.Equal(t, event.TypeTerminalLine, e.Type)
			assert.Equal(t, "default", e.Topic)
			return
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no websocket event received")
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)

	_, _ = doJSON(t, http.MethodGet, server.URL+"/api/v1/users", nil)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	scraped := string(body)
	assert.Contains(t, scraped, `admin_panel_http_requests_total{method="GET",route="/api/v1/users`)
	assert.Contains(t, scraped, `admin_panel_collection_records{collection="logs"} 8`)
	assert.Contains(t, scraped, `admin_panel_terminal_sessions 1`)
}
