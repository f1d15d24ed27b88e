package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Backend Configuration
	API APIConfig

	// Push Channel Configuration
	Realtime RealtimeConfig

	// Session Configuration
	Session SessionConfig

	// Logger Configuration
	Logger LoggerConfig
}

// APIConfig is the configuration for the backend HTTP API.
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/users"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// RealtimeConfig is the configuration for the websocket push channel.
type RealtimeConfig struct {
	URL              string        `env:"WS_URL" envDefault:"ws://localhost:8080/ws"`
	PingInterval     time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	PongWait         time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	WriteWait        time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	ReconnectInitial time.Duration `env:"WS_RECONNECT_INITIAL" envDefault:"5s"`
	ReconnectMax     time.Duration `env:"WS_RECONNECT_MAX" envDefault:"1m"`
}

// SessionConfig is the configuration for persisted session state.
type SessionConfig struct {
	// Path of the session file. Empty means session state is kept in memory
	// only and dropped on exit.
	Path string `env:"SESSION_PATH" envDefault:""`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"development"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	return cfg, nil
}
