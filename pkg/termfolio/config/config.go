// Package config loads the runtime settings of the portfolio terminal from
// defaults, an optional YAML file, TERMFOLIO_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/arthur-debert/termfolio/pkg/termfolio"
	"github.com/arthur-debert/termfolio/pkg/termfolio/shell"
	"github.com/arthur-debert/termfolio/pkg/termfolio/vfs"
)

// Keys understood in config files, the environment and flags.
const (
	KeyUser     = "user"
	KeyHost     = "host"
	KeyManifest = "manifest"
	KeyLogLevel = "log-level"
	KeyColor    = "color"
)

const envPrefix = "TERMFOLIO"

// Config is the resolved configuration.
type Config struct {
	User     string `mapstructure:"user"`
	Host     string `mapstructure:"host"`
	Manifest string `mapstructure:"manifest"`
	LogLevel string `mapstructure:"log-level"`
	Color    bool   `mapstructure:"color"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// New returns a viper instance with the defaults and environment binding
// in place. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyUser, shell.DefaultUser)
	v.SetDefault(KeyHost, shell.DefaultHost)
	v.SetDefault(KeyManifest, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyColor, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file and unmarshals the result. With an empty
// cfgFile it searches $HOME/.termfolio and the working directory for
// termfolio.yaml and carries on with defaults when there is none; an
// explicit cfgFile must exist.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("termfolio")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.termfolio")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	c.File = v.ConfigFileUsed()

	if _, err := c.Level(); err != nil {
		return nil, err
	}
	return c, nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := termfolio.LogLevelFromString(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, c.LogLevel, err)
	}
	return level, nil
}

// Logger builds a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := c.Level()
	if err != nil {
		level = zerolog.WarnLevel
	}
	return termfolio.NewLogger(w, level)
}

// Filesystem builds the tree the session runs on: the manifest when one is
// configured, the embedded portfolio otherwise.
func (c *Config) Filesystem(logger zerolog.Logger) (*vfs.Filesystem, error) {
	logger = termfolio.Component(logger, "vfs")
	if c.Manifest == "" {
		return vfs.Default(logger)
	}
	return vfs.LoadManifest(c.Manifest, logger)
}

// SessionOptions turns the identity settings into shell options.
func (c *Config) SessionOptions(logger zerolog.Logger) []shell.Option {
	return []shell.Option{
		shell.WithUser(c.User),
		shell.WithHost(c.Host),
		shell.WithLogger(termfolio.Component(logger, "shell")),
	}
}
