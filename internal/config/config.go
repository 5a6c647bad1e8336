package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ---------------------------------------------------------------------------
// Environment variable constants
// ---------------------------------------------------------------------------

const (
	EnvPrefix = "TERMFOLIO"
	EnvAPIKey = "MISTRAL_API_KEY" // server-side credential, never shown to the session
)

// ---------------------------------------------------------------------------
// Top-level Config
// ---------------------------------------------------------------------------

// Config holds all configuration for termfolio.
type Config struct {
	// --- TUI ---
	Theme            string `mapstructure:"theme" json:"theme"`
	TypingIntervalMS int    `mapstructure:"typing_interval_ms" json:"typing_interval_ms"`

	// --- Chat ---
	Chat ChatConfig `mapstructure:"chat" json:"chat"`

	// --- Completion proxy server ---
	Server ServerConfig `mapstructure:"server" json:"server"`

	// --- Logging ---
	Log LogConfig `mapstructure:"log" json:"log"`

	// --- Credential (env only, never serialized) ---
	MistralAPIKey string `mapstructure:"mistral_api_key" json:"-"`
}

// ChatConfig configures the AI chat sub-mode.
type ChatConfig struct {
	// Endpoint is the completion proxy URL the session talks to.
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
	// Prompt shown as the chat persona name in the transcript.
	Persona string `mapstructure:"persona" json:"persona"`
}

// ServerConfig defines the completion proxy server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" json:"port"`
	Hostname string `mapstructure:"hostname" json:"hostname"`
	Model    string `mapstructure:"model" json:"model"`
}

// LogConfig defines structured-log output settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`   // debug|info|warn|error
	Format string `mapstructure:"format" json:"format"` // json|text
	File   string `mapstructure:"file" json:"file"`     // empty = default path
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load loads configuration with the precedence:
// defaults → global config file → project config file → TERMFOLIO_* env.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("theme", "matrix")
	v.SetDefault("typing_interval_ms", 20)
	v.SetDefault("chat.endpoint", "http://localhost:4117/api/chat")
	v.SetDefault("chat.persona", "jayant-ai")
	v.SetDefault("server.port", 4117)
	v.SetDefault("server.hostname", "localhost")
	v.SetDefault("server.model", "mistral-tiny")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")

	// Config file locations (precedence: project > home)
	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "termfolio"))
	}
	v.AddConfigPath(".")
	v.AddConfigPath(".termfolio")

	v.SetConfigName("termfolio")
	v.SetConfigType("yaml")

	// Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	_ = v.BindEnv("mistral_api_key", EnvAPIKey)
	_ = v.BindEnv("chat.endpoint", "TERMFOLIO_CHAT_ENDPOINT")
	_ = v.BindEnv("server.port", "TERMFOLIO_SERVER_PORT")
	_ = v.BindEnv("log.level", "TERMFOLIO_LOG_LEVEL")

	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Endpoint returns the configured completion endpoint URL.
func (c *Config) Endpoint() string {
	return c.Chat.Endpoint
}

// ServerAddr returns the listen address for the completion proxy.
func (c *Config) ServerAddr() string {
	host := c.Server.Hostname
	if host == "" {
		host = "localhost"
	}
	port := c.Server.Port
	if port == 0 {
		port = 4117
	}
	return fmt.Sprintf("%s:%d", host, port)
}

// Dump returns the effective configuration as indented JSON. The API key is
// excluded by the struct tags, so Dump output is safe to print.
func (c *Config) Dump() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}
