package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DashboardSourceMock = "mock"
	DashboardSourceHost = "host"
)

type Config struct {
	ServerPort              string
	ServerReadHeaderTimeout time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration
	RequestTimeout          time.Duration
	CORSOrigins             []string
	RateLimitRPM            int
	LogLevel                string
	LogFormat               string
	SeedFile                string
	TerminalDelayMin        time.Duration
	TerminalDelayMax        time.Duration
	TerminalMaxSessions     int
	TerminalMaxLines        int
	LogsRefreshInterval     time.Duration
	LogsMaxEntries          int
	SettingsSaveDelay       time.Duration
	DashboardSource         string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		ServerReadHeaderTimeout: getDuration("SERVER_READ_HEADER_TIMEOUT", 10*time.Second),
		ServerWriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:          getDuration("REQUEST_TIMEOUT", 30*time.Second),
		CORSOrigins:             splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:            getInt("RATE_LIMIT_RPM", 300),
		LogLevel:                strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:               strings.ToLower(getEnv("LOG_FORMAT", "pretty")),
		SeedFile:                strings.TrimSpace(os.Getenv("SEED_FILE")),
		TerminalDelayMin:        getDuration("TERMINAL_DELAY_MIN", 100*time.Millisecond),
		TerminalDelayMax:        getDuration("TERMINAL_DELAY_MAX", 300*time.Millisecond),
		TerminalMaxSessions:     getInt("TERMINAL_MAX_SESSIONS", 32),
		TerminalMaxLines:        getInt("TERMINAL_MAX_LINES", 1000),
		LogsRefreshInterval:     getDuration("LOGS_REFRESH_INTERVAL", 5*time.Second),
		LogsMaxEntries:          getInt("LOGS_MAX_ENTRIES", 1000),
		SettingsSaveDelay:       getDuration("SETTINGS_SAVE_DELAY", 1500*time.Millisecond),
		DashboardSource:         strings.ToLower(getEnv("DASHBOARD_SOURCE", DashboardSourceMock)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if c.RateLimitRPM <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPM must be positive")
	}

	switch c.LogFormat {
	case "pretty", "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of pretty, text, json")
	}

	if c.TerminalDelayMin < 0 || c.TerminalDelayMax < c.TerminalDelayMin {
		return fmt.Errorf("TERMINAL_DELAY_MIN must be >= 0 and <= TERMINAL_DELAY_MAX")
	}

	if c.TerminalMaxSessions <= 0 {
		return fmt.Errorf("TERMINAL_MAX_SESSIONS must be positive")
	}

	if c.TerminalMaxLines <= 0 {
		return fmt.Errorf("TERMINAL_MAX_LINES must be positive")
	}

	if c.LogsRefreshInterval <= 0 {
		return fmt.Errorf("LOGS_REFRESH_INTERVAL must be positive")
	}

	if c.LogsMaxEntries <= 0 {
		return fmt.Errorf("LOGS_MAX_ENTRIES must be positive")
	}

	if c.SettingsSaveDelay < 0 {
		return fmt.Errorf("SETTINGS_SAVE_DELAY cannot be negative")
	}

	if c.DashboardSource != DashboardSourceMock && c.DashboardSource != DashboardSourceHost {
		return fmt.Errorf("DASHBOARD_SOURCE must be %q or %q", DashboardSourceMock, DashboardSourceHost)
	}

	return nil
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}
