package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/weatherframe/internal/locale"
)

var configEnv = []string{
	"OPENWEATHER_API_KEY", "CITY", "LANGUAGE",
	"WEATHERFRAME_API_KEY", "WEATHERFRAME_CITY", "WEATHERFRAME_LANGUAGE",
	"WEATHERFRAME_REFRESH_INTERVAL", "WEATHERFRAME_CONNECT_TIMEOUT",
	"WEATHERFRAME_READ_TIMEOUT", "WEATHERFRAME_BASE_URL", "WEATHERFRAME_LOG_PATH",
}

// isolate points HOME and the working directory at temp dirs and unsets
// every variable Load reads. t.Setenv restores the originals afterwards.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range configEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	isolate(t)

	_, err := Load("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Load error = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)
	t.Setenv("OPENWEATHER_API_KEY", "  secret  ")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want %q", cfg.APIKey, "secret")
	}
	if cfg.City != defaultCity {
		t.Fatalf("City = %q, want %q", cfg.City, defaultCity)
	}
	if cfg.Language != locale.Korean || cfg.Locale.Code() != locale.Korean {
		t.Fatalf("Language = %q / %q, want kr", cfg.Language, cfg.Locale.Code())
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Fatalf("RefreshInterval = %v, want 5m", cfg.RefreshInterval)
	}
	if cfg.ConnectTimeout != 3*time.Second || cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("timeouts = %v / %v, want 3s / 5s", cfg.ConnectTimeout, cfg.ReadTimeout)
	}
	wantLog := filepath.Join(home, ".local", "state", "weatherframe", "weatherframe.log")
	if cfg.LogPath != wantLog {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, wantLog)
	}
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
api_key = "from-file"
city = "Busan"
language = "en"
refresh_interval = "10m"
read_timeout = "8s"
log_path = "~/logs/wf.log"
`)
	t.Setenv("WEATHERFRAME_REFRESH_INTERVAL", "15m")
	t.Setenv("CITY", "Incheon")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Fatalf("APIKey = %q, want from-file", cfg.APIKey)
	}
	if cfg.City != "Incheon" {
		t.Fatalf("City = %q, want environment value Incheon", cfg.City)
	}
	if cfg.Locale.Code() != locale.English {
		t.Fatalf("Locale = %q, want en", cfg.Locale.Code())
	}
	if cfg.RefreshInterval != 15*time.Minute {
		t.Fatalf("RefreshInterval = %v, want 15m", cfg.RefreshInterval)
	}
	if cfg.ReadTimeout != 8*time.Second {
		t.Fatalf("ReadTimeout = %v, want 8s", cfg.ReadTimeout)
	}
	if !strings.HasPrefix(cfg.LogPath, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", cfg.LogPath, home)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	writeFile(t, ".env", "OPENWEATHER_API_KEY=dotenv-key\nCITY=Daegu\nLANGUAGE=en\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "dotenv-key" || cfg.City != "Daegu" || cfg.Language != locale.English {
		t.Fatalf("cfg = %+v, want values from .env", cfg)
	}
}

func TestLoad_GettextLanguage(t *testing.T) {
	isolate(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("LANGUAGE", "en_US:en")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Language != locale.English {
		t.Fatalf("Language = %q, want en", cfg.Language)
	}
}

func TestLoad_UnsupportedLanguage(t *testing.T) {
	isolate(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("WEATHERFRAME_LANGUAGE", "fr")

	if _, err := Load(""); err == nil {
		t.Fatal("Load error = nil, want unsupported language error")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	isolate(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "city = [unterminated")

	if _, err := Load(path); err == nil {
		t.Fatal("Load error = nil, want parse error")
	}
}

func TestLanguageCode(t *testing.T) {
	tests := map[string]string{
		"kr":          "kr",
		" en ":        "en",
		"en_US:en":    "en-US",
		"ko_KR.UTF-8": "ko-KR",
		"":            "",
	}
	for in, want := range tests {
		if got := languageCode(in); got != want {
			t.Errorf("languageCode(%q) = %q, want %q", in, got, want)
		}
	}
}
