package model

const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelDebug   = "debug"
	LevelSuccess = "success"
)

var LogLevels = []string{LevelInfo, LevelWarning, LevelError, LevelDebug, LevelSuccess}

var LogCategories = []string{"system", "database", "security", "api", "user", "network"}

type LogEntry struct {
	ID        string  `json:"id" yaml:"id"`
	Timestamp string  `json:"timestamp" yaml:"timestamp"`
	Level     string  `json:"level" yaml:"level"`
	Category  string  `json:"category" yaml:"category"`
	Message   string  `json:"message" yaml:"message"`
	Details   *string `json:"details,omitempty" yaml:"details,omitempty"`
	IP        *string `json:"ip,omitempty" yaml:"ip,omitempty"`
	User      *string `json:"user,omitempty" yaml:"user,omitempty"`
	Source    string  `json:"source" yaml:"source"`
}

type LogQuery struct {
	Search   string
	Level    string
	Category string
	Page     int
	Limit    int
}

type LogStats struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

type CreateLogRequest struct {
	Level    string  `json:"level"`
	Category string  `json:"category"`
	Message  string  `json:"message"`
	Details  *string `json:"details"`
	IP       *string `json:"ip"`
	User     *string `json:"user"`
	Source   string  `json:"source"`
}

type AutoRefreshState struct {
	Enabled  bool   `json:"enabled"`
	Interval string `json:"interval"`
}
