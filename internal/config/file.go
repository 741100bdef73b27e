package config

import "time"

// File represents the structure of the .txreport configuration file.
// Every field is optional; absent fields keep the value they already had.
type File struct {
	// Server holds HTTP server settings.
	Server ServerSection `yaml:"server,omitempty"`

	// Database holds storage settings.
	Database DatabaseSection `yaml:"database,omitempty"`

	// Report holds report rendering settings.
	Report ReportSection `yaml:"report,omitempty"`

	// Log holds logging settings.
	Log LogSection `yaml:"log,omitempty"`
}

// ServerSection is the "server" block of the config file.
type ServerSection struct {
	Addr            string        `yaml:"addr,omitempty"`
	ReadTimeout     time.Duration `yaml:"readTimeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"writeTimeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout,omitempty"`

	// RateLimit configures per-client request throttling.
	RateLimit RateLimitSection `yaml:"rateLimit,omitempty"`
}

// RateLimitSection is the "server.rateLimit" block of the config file.
type RateLimitSection struct {
	RPS   float64 `yaml:"rps,omitempty"`
	Burst int     `yaml:"burst,omitempty"`
}

// DatabaseSection is the "database" block of the config file.
type DatabaseSection struct {
	Dir string `yaml:"dir,omitempty"`
}

// ReportSection is the "report" block of the config file.
type ReportSection struct {
	Title string `yaml:"title,omitempty"`
}

// LogSection is the "log" block of the config file.
type LogSection struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Apply copies every set field of cf onto cfg.
func (cf *File) Apply(cfg *Config) {
	if cf.Server.Addr != "" {
		cfg.Addr = cf.Server.Addr
	}
	if cf.Server.ReadTimeout != 0 {
		cfg.ReadTimeout = cf.Server.ReadTimeout
	}
	if cf.Server.WriteTimeout != 0 {
		cfg.WriteTimeout = cf.Server.WriteTimeout
	}
	if cf.Server.ShutdownTimeout != 0 {
		cfg.ShutdownTimeout = cf.Server.ShutdownTimeout
	}
	if cf.Server.RateLimit.RPS != 0 {
		cfg.RateLimitRPS = cf.Server.RateLimit.RPS
	}
	if cf.Server.RateLimit.Burst != 0 {
		cfg.RateLimitBurst = cf.Server.RateLimit.Burst
	}
	if cf.Database.Dir != "" {
		cfg.DBDir = cf.Database.Dir
	}
	if cf.Report.Title != "" {
		cfg.ReportTitle = cf.Report.Title
	}
	if cf.Log.Level != "" {
		cfg.LogLevel = cf.Log.Level
	}
	if cf.Log.Format != "" {
		cfg.LogFormat = cf.Log.Format
	}
}
