// Package config loads fsacheck settings from defaults, an optional config
// file, FSACHECK_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Output formats of the validate command.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// FileName is the config file looked up in the working directory.
const FileName = ".fsacheck"

// Config holds every tunable of the CLI.
type Config struct {
	Input    string    `mapstructure:"input"`
	Output   string    `mapstructure:"output"`
	Format   string    `mapstructure:"format"`
	LogLevel string    `mapstructure:"log_level"`
	LogJSON  bool      `mapstructure:"log_json"`
	Serve    ServeConf `mapstructure:"serve"`
	MCP      MCPConf   `mapstructure:"mcp"`
}

// ServeConf configures the HTTP server.
type ServeConf struct {
	Port         int   `mapstructure:"port"`
	MaxBodyBytes int64 `mapstructure:"max_body_bytes"`
}

// MCPConf configures the MCP server.
type MCPConf struct {
	Transport string `mapstructure:"transport"`
	Port      int    `mapstructure:"port"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Input:    "fsa.txt",
		Output:   "result.txt",
		Format:   FormatText,
		LogLevel: "off",
		Serve: ServeConf{
			Port:         8080,
			MaxBodyBytes: 1 << 20,
		},
		MCP: MCPConf{
			Transport: "stdio",
			Port:      8081,
		},
	}
}

// SetDefaults registers Defaults() on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("input", d.Input)
	v.SetDefault("output", d.Output)
	v.SetDefault("format", d.Format)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_json", d.LogJSON)
	v.SetDefault("serve.port", d.Serve.Port)
	v.SetDefault("serve.max_body_bytes", d.Serve.MaxBodyBytes)
	v.SetDefault("mcp.transport", d.MCP.Transport)
	v.SetDefault("mcp.port", d.MCP.Port)
}

// Load reads configuration into a Config.
// cfgFile, when set, must exist. Otherwise ./.fsacheck.{yaml,json,toml} is
// used if present.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("FSACHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			// No config file anywhere: defaults, env and flags only.
		case cfgFile == "" && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the commands cannot act on.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: expected %q or %q", c.Format, FormatText, FormatJSON)
	}
	switch c.MCP.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("invalid mcp transport %q: expected \"stdio\" or \"sse\"", c.MCP.Transport)
	}
	if c.Serve.MaxBodyBytes <= 0 {
		return fmt.Errorf("serve.max_body_bytes must be positive")
	}
	return nil
}
