package configs

// Config holds all configuration for the reporter.
type Config struct {
	Helpscout HelpscoutConfig `mapstructure:"helpscout" validate:"required"`
	Report    ReportConfig    `mapstructure:"report" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
}

// HelpscoutConfig holds credentials and the mailbox set to poll.
type HelpscoutConfig struct {
	APIKey    string  `mapstructure:"api_key" validate:"required"`
	BaseURL   string  `mapstructure:"base_url" validate:"required,url"`
	Mailboxes []int64 `mapstructure:"mailboxes" validate:"required,min=1,dive,gt=0"`
	Timeout   int     `mapstructure:"timeout" validate:"required,min=1"` // seconds, per HTTP request
}

// ReportConfig holds the reporting schedule.
type ReportConfig struct {
	Interval int `mapstructure:"interval" validate:"required,min=1"` // seconds between ticks
}

// ServerConfig holds ops HTTP server configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}
