package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/five82/weatherframe/internal/locale"
)

// ErrMissingAPIKey is returned when no OpenWeather API key is configured.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

// Config is the dashboard's startup configuration.
type Config struct {
	APIKey          string        `mapstructure:"api_key"`
	City            string        `mapstructure:"city"`
	Language        string        `mapstructure:"language"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	BaseURL         string        `mapstructure:"base_url"`
	LogPath         string        `mapstructure:"log_path"`

	Locale locale.Locale `mapstructure:"-"`
}

const (
	defaultConfigPath      = "~/.config/weatherframe/config.toml"
	defaultLogPath         = "~/.local/state/weatherframe/weatherframe.log"
	defaultCity            = "Seoul"
	defaultLanguage        = locale.Korean
	defaultRefreshInterval = 5 * time.Minute
	defaultConnectTimeout  = 3 * time.Second
	defaultReadTimeout     = 5 * time.Second
	envPrefix              = "WEATHERFRAME"
)

// Load reads .env from the working directory, then merges defaults, the
// optional TOML file at path and the environment. An empty path uses
// ~/.config/weatherframe/config.toml; a missing file is not an error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("api_key", "")
	v.SetDefault("city", defaultCity)
	v.SetDefault("language", defaultLanguage)
	v.SetDefault("refresh_interval", defaultRefreshInterval)
	v.SetDefault("connect_timeout", defaultConnectTimeout)
	v.SetDefault("read_timeout", defaultReadTimeout)
	v.SetDefault("base_url", "")
	v.SetDefault("log_path", defaultLogPath)

	// Unprefixed names match existing .env files.
	_ = v.BindEnv("api_key", "OPENWEATHER_API_KEY", envPrefix+"_API_KEY")
	_ = v.BindEnv("city", envPrefix+"_CITY", "CITY")
	_ = v.BindEnv("language", envPrefix+"_LANGUAGE", "LANGUAGE")

	v.SetConfigFile(resolved)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", resolved, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	cfg.City = strings.TrimSpace(cfg.City)
	if cfg.City == "" {
		cfg.City = defaultCity
	}

	lang := languageCode(cfg.Language)
	if lang == "" {
		lang = defaultLanguage
	}
	loc, err := locale.Parse(lang)
	if err != nil {
		return Config{}, fmt.Errorf("language: %w", err)
	}
	cfg.Locale = loc
	cfg.Language = loc.Code()

	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	logPath := strings.TrimSpace(cfg.LogPath)
	if logPath == "" {
		logPath = defaultLogPath
	}
	cfg.LogPath = mustExpand(logPath)

	return cfg, nil
}

// languageCode accepts gettext style values such as "en_US:en" as well as
// plain codes.
func languageCode(raw string) string {
	code, _, _ := strings.Cut(strings.TrimSpace(raw), ":")
	code, _, _ = strings.Cut(code, ".")
	return strings.ReplaceAll(code, "_", "-")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
