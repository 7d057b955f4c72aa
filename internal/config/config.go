package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".snooze"
	envPrefix  = "SNOOZE"

	KeyAPIBaseURL      = "api.base_url"
	KeyAPITimeout      = "api.timeout"
	KeyCredentialsPath = "credentials.path"
	KeySecretsDir      = "secrets.dir"
	KeySecretsBackend  = "secrets.backend"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"

	DefaultBaseURL = "https://hack-or-snooze-v3.herokuapp.com"
	DefaultTimeout = 30 * time.Second
)

type SecretsBackend string

const (
	SecretsBackendChain SecretsBackend = "chain"
	SecretsBackendFile  SecretsBackend = "file"
	SecretsBackendPass  SecretsBackend = "pass"
)

type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	Secrets     SecretsConfig
	Log         LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CredentialsConfig struct {
	Path string
}

type SecretsConfig struct {
	Dir     string
	Backend SecretsBackend
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads ~/.snooze/config.toml when present and applies SNOOZE_* overrides.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)

	v.SetDefault(KeyAPIBaseURL, DefaultBaseURL)
	v.SetDefault(KeyAPITimeout, DefaultTimeout)
	v.SetDefault(KeyCredentialsPath, filepath.Join(baseDir, "credentials.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(baseDir, "secrets"))
	v.SetDefault(KeySecretsBackend, string(SecretsBackendChain))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		API: APIConfig{
			BaseURL: strings.TrimSpace(v.GetString(KeyAPIBaseURL)),
			Timeout: v.GetDuration(KeyAPITimeout),
		},
		Credentials: CredentialsConfig{Path: v.GetString(KeyCredentialsPath)},
		Secrets: SecretsConfig{
			Dir:     v.GetString(KeySecretsDir),
			Backend: SecretsBackend(strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend)))),
		},
		Log: LogConfig{
			Level:  strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
			Format: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("%s is empty", KeyAPIBaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", KeyAPITimeout, c.API.Timeout)
	}
	if strings.TrimSpace(c.Credentials.Path) == "" {
		return fmt.Errorf("%s is empty", KeyCredentialsPath)
	}

	switch c.Secrets.Backend {
	case SecretsBackendChain, SecretsBackendFile, SecretsBackendPass:
	default:
		return fmt.Errorf("unsupported %s %q", KeySecretsBackend, c.Secrets.Backend)
	}

	if c.Secrets.Backend != SecretsBackendPass && strings.TrimSpace(c.Secrets.Dir) == "" {
		return fmt.Errorf("%s is empty", KeySecretsDir)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported %s %q", KeyLogFormat, c.Log.Format)
	}

	return nil
}

// NewLogger builds the process logger writing to out.
func NewLogger(cfg LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return logger, nil
}
