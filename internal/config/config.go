package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"dqx0.com/go/h1serve/internal/obs"
)

// Config is the startup configuration of the server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Files  FilesConfig  `yaml:"files"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// FilesConfig holds the serving root used by /files. An empty Directory
// disables file access without preventing startup.
type FilesConfig struct {
	Directory string `yaml:"directory"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json, std
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 4221},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load starts from Default, applies the YAML file at path if path is
// non-empty, then H1SERVE_* environment overrides, and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("H1SERVE_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("H1SERVE_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: H1SERVE_PORT %q: %w", v, err)
		}
		c.Server.Port = p
	}
	if v := os.Getenv("H1SERVE_DIRECTORY"); v != "" {
		c.Files.Directory = v
	}
	if v := os.Getenv("H1SERVE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks value ranges. It does not check that Files.Directory
// exists.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	if _, err := obs.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Format {
	case "console", "json", "std":
	default:
		return fmt.Errorf("config: invalid log format %q", c.Log.Format)
	}
	return nil
}

// Address returns host:port for net.Listen.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
