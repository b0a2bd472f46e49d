// config/config.go

// Package config resolves statcli settings from flags, STATCLI_* environment
// variables, an optional .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment variable statcli reads.
	EnvPrefix = "STATCLI"

	defaultLang      = "en"
	defaultPrecision = 6
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	dotEnvFile       = ".env"
)

// Keys shared by flags, environment variables and config files.
const (
	KeyInput     = "input"
	KeyOperation = "operation"
	KeyLang      = "lang"
	KeyPrecision = "precision"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyDebug     = "debug"
)

var (
	validate = validator.New()

	// ErrInvalidConfig is wrapped around validation failures.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the resolved settings for one invocation. Input and Operation
// may be empty; the command decides how to report that.
type Config struct {
	Input     string `mapstructure:"input"`
	Operation string `mapstructure:"operation"`
	Lang      string `mapstructure:"lang" validate:"required"`
	Precision int    `mapstructure:"precision" validate:"min=1,max=17"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`
	Debug     bool   `mapstructure:"debug"`
}

// New returns a viper instance with statcli defaults and environment lookup
// configured. Commands bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyInput, "")
	v.SetDefault(KeyOperation, "")
	v.SetDefault(KeyLang, defaultLang)
	v.SetDefault(KeyPrecision, defaultPrecision)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	v.SetDefault(KeyDebug, false)
	return v
}

// Load reads .env (if present) and the optional config file at configPath
// into v, then decodes and validates the result.
func Load(v *viper.Viper, configPath string) (Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", dotEnvFile, err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, cfg.Validate()
}

// Validate returns an error if the Config object is invalid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
