package config

import "fmt"

// Config holds doctriage configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Server  ServerCfg  `mapstructure:"server" yaml:"server"`
	Log     LogCfg     `mapstructure:"log" yaml:"log"`
	Analyze AnalyzeCfg `mapstructure:"analyze" yaml:"analyze"`
}

// ServerCfg configures the HTTP API server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// ListenAddr returns the host:port the server binds to.
func (s ServerCfg) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogCfg configures structured logging.
type LogCfg struct {
	Level  string `mapstructure:"level" yaml:"level"`   // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// AnalyzeCfg configures the triage analyzer.
type AnalyzeCfg struct {
	// MaxWorkers caps how many documents are analyzed concurrently by the
	// batch CLI path.
	MaxWorkers int `mapstructure:"max_workers" yaml:"max_workers"`
	// LanguageDetection toggles the language model. Disabling it saves a
	// noticeable amount of memory and startup time.
	LanguageDetection bool `mapstructure:"language_detection" yaml:"language_detection"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: 8085,
		},
		Log: LogCfg{
			Level:  "info",
			Format: "text",
		},
		Analyze: AnalyzeCfg{
			MaxWorkers:        4,
			LanguageDetection: true,
		},
	}
}
