// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all BioLens settings.
type Config struct {
	Viewer  ViewerConfig  `yaml:"viewer"`
	Backend BackendConfig `yaml:"backend"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewerConfig holds display and rendering settings.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// BackendConfig holds analysis/QA backend connection settings.
type BackendConfig struct {
	BaseURL        string        `yaml:"base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// ReportConfig holds analysis report output settings.
type ReportConfig struct {
	// HTMLPath is where the viewer writes the analysis report.
	// Empty disables report writing.
	HTMLPath string `yaml:"html_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:      1024,
			Height:     768,
			Fullscreen: false,
			VSync:      true,
		},
		Backend: BackendConfig{
			BaseURL:        "http://127.0.0.1:5000",
			RequestTimeout: 60 * time.Second,
		},
		Report: ReportConfig{
			HTMLPath: "report.html",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
