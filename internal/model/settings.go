package model

const (
	SectionGeneral       = "general"
	SectionConnection    = "connection"
	SectionDatabase      = "database"
	SectionSecurity      = "security"
	SectionPerformance   = "performance"
	SectionNotifications = "notifications"
	SectionAPI           = "api"
)

var SettingsSections = []string{
	SectionGeneral,
	SectionConnection,
	SectionDatabase,
	SectionSecurity,
	SectionPerformance,
	SectionNotifications,
	SectionAPI,
}

// ServerConfig mirrors the settings form. Validation tags encode the slider bounds
// and select options of each control.
type ServerConfig struct {
	General       GeneralSettings      `json:"general" yaml:"general" validate:"required"`
	Connection    ConnectionSettings   `json:"connection" yaml:"connection" validate:"required"`
	Database      DatabaseSettings     `json:"database" yaml:"database" validate:"required"`
	Security      SecuritySettings     `json:"security" yaml:"security" validate:"required"`
	Performance   PerformanceSettings  `json:"performance" yaml:"performance" validate:"required"`
	Notifications NotificationSettings `json:"notifications" yaml:"notifications"`
	API           APISettings          `json:"api" yaml:"api" validate:"required"`
}

type GeneralSettings struct {
	ServerName      string `json:"serverName" yaml:"serverName" validate:"required,max=128"`
	Description     string `json:"description" yaml:"description" validate:"max=1024"`
	AdminEmail      string `json:"adminEmail" yaml:"adminEmail" validate:"required,email"`
	Timezone        string `json:"timezone" yaml:"timezone" validate:"oneof=Europe/Moscow Europe/London America/New_York Asia/Tokyo"`
	Language        string `json:"language" yaml:"language" validate:"oneof=ru en de fr"`
	MaintenanceMode bool   `json:"maintenanceMode" yaml:"maintenanceMode"`
}

type ConnectionSettings struct {
	Host              string `json:"host" yaml:"host" validate:"required,hostname_rfc1123|ip"`
	Port              int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
	Protocol          string `json:"protocol" yaml:"protocol" validate:"oneof=http https ws wss"`
	SSLEnabled        bool   `json:"sslEnabled" yaml:"sslEnabled"`
	APIEndpoint       string `json:"apiEndpoint" yaml:"apiEndpoint" validate:"required,startswith=/"`
	ConnectionTimeout int    `json:"connectionTimeout" yaml:"connectionTimeout" validate:"min=5,max=120"`
	RetryAttempts     int    `json:"retryAttempts" yaml:"retryAttempts" validate:"min=1,max=10"`
	KeepAlive         bool   `json:"keepAlive" yaml:"keepAlive"`
}

type DatabaseSettings struct {
	Host           string `json:"host" yaml:"host" validate:"required"`
	Port           int    `json:"port" yaml:"port" validate:"min=1,max=65535"`
	Name           string `json:"name" yaml:"name" validate:"required"`
	MaxConnections int    `json:"maxConnections" yaml:"maxConnections" validate:"min=10,max=500"`
	Timeout        int    `json:"timeout" yaml:"timeout" validate:"min=5,max=120"`
	AutoBackup     bool   `json:"autoBackup" yaml:"autoBackup"`
	BackupInterval int    `json:"backupInterval" yaml:"backupInterval" validate:"min=1,max=168"`
}

type SecuritySettings struct {
	EnableSSL        bool     `json:"enableSSL" yaml:"enableSSL"`
	RequireTwoFactor bool     `json:"requireTwoFactor" yaml:"requireTwoFactor"`
	SessionTimeout   int      `json:"sessionTimeout" yaml:"sessionTimeout" validate:"min=1,max=168"`
	MaxLoginAttempts int      `json:"maxLoginAttempts" yaml:"maxLoginAttempts" validate:"min=3,max=20"`
	IPWhitelist      bool     `json:"ipWhitelist" yaml:"ipWhitelist"`
	AllowedIPs       []string `json:"allowedIPs" yaml:"allowedIPs" validate:"dive,ip|cidr"`
}

type PerformanceSettings struct {
	MaxCPUUsage          int  `json:"maxCpuUsage" yaml:"maxCpuUsage" validate:"min=10,max=100"`
	MaxMemoryUsage       int  `json:"maxMemoryUsage" yaml:"maxMemoryUsage" validate:"min=10,max=100"`
	CacheEnabled         bool `json:"cacheEnabled" yaml:"cacheEnabled"`
	CacheSize            int  `json:"cacheSize" yaml:"cacheSize" validate:"min=64,max=2048"`
	CompressionEnabled   bool `json:"compressionEnabled" yaml:"compressionEnabled"`
	RateLimitEnabled     bool `json:"rateLimitEnabled" yaml:"rateLimitEnabled"`
	MaxRequestsPerMinute int  `json:"maxRequestsPerMinute" yaml:"maxRequestsPerMinute" validate:"min=1"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications" yaml:"emailNotifications"`
	SystemAlerts       bool `json:"systemAlerts" yaml:"systemAlerts"`
	UserRegistration   bool `json:"userRegistration" yaml:"userRegistration"`
	ErrorReports       bool `json:"errorReports" yaml:"errorReports"`
	BackupReports      bool `json:"backupReports" yaml:"backupReports"`
	SecurityEvents     bool `json:"securityEvents" yaml:"securityEvents"`
}

type APISettings struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Version     string `json:"version" yaml:"version" validate:"required"`
	RateLimit   int    `json:"rateLimit" yaml:"rateLimit" validate:"min=10,max=1000"`
	RequireAuth bool   `json:"requireAuth" yaml:"requireAuth"`
	AllowCORS   bool   `json:"allowCors" yaml:"allowCors"`
	LogRequests bool   `json:"logRequests" yaml:"logRequests"`
}

type SettingsState struct {
	Config ServerConfig `json:"config"`
	Dirty  bool         `json:"dirty"`
	Saving bool         `json:"saving"`
}

// Clone returns a deep copy; AllowedIPs is the only reference field.
func (c ServerConfig) Clone() ServerConfig {
	out := c
	out.Security.AllowedIPs = append([]string(nil), c.Security.AllowedIPs...)
	if out.Security.AllowedIPs == nil {
		out.Security.AllowedIPs = []string{}
	}
	return out
}
