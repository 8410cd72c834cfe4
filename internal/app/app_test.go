package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/weatherframe/internal/config"
	"github.com/five82/weatherframe/internal/locale"
)

func TestRun_MissingAPIKeyFailsBeforeUI(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	for _, key := range []string{"OPENWEATHER_API_KEY", "WEATHERFRAME_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	err := Run(context.Background(), Options{})
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("Run error = %v, want ErrMissingAPIKey", err)
	}
}

func TestSetupLogging_WritesTextRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "weatherframe.log")

	closeLog, err := setupLogging(path, false)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	slog.Debug("hidden")
	slog.Info("weather refreshed", "city", "Seoul")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `level=INFO msg="weather refreshed" city=Seoul`) {
		t.Fatalf("log = %q, want info record", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("log = %q, debug record written at info level", out)
	}
}

func TestNewDashboard_RefreshReachesView(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/data/2.5/weather":
			_, _ = w.Write([]byte(`{"name":"Seoul","coord":{"lat":37.57,"lon":126.98},` +
				`"main":{"temp":21.3,"feels_like":20.8,"temp_min":19,"temp_max":23,"humidity":40},` +
				`"wind":{"speed":3.6},"weather":[{"description":"맑음","icon":"01d"}]}`))
		case "/data/2.5/air_pollution":
			_, _ = w.Write([]byte(`{"list":[{"main":{"aqi":1}}]}`))
		case "/data/2.5/forecast":
			_, _ = w.Write([]byte(`{"list":[{"dt":1714564800,"main":{"temp":18,"temp_min":14,"temp_max":20},` +
				`"weather":[{"description":"맑음","icon":"01d"}]}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cfg := config.Config{
		APIKey:          "secret",
		City:            "Seoul",
		Language:        locale.Korean,
		Locale:          locale.Default(),
		RefreshInterval: time.Hour,
		ConnectTimeout:  time.Second,
		ReadTimeout:     2 * time.Second,
		BaseURL:         server.URL + "/data/2.5",
	}
	dash, err := newDashboard(context.Background(), cfg, "", filepath.Join(t.TempDir(), "prefs.toml"))
	if err != nil {
		t.Fatalf("newDashboard returned error: %v", err)
	}
	t.Cleanup(dash.scheduler.Shutdown)

	if !dash.scheduler.ConsiderRefresh() {
		t.Fatal("ConsiderRefresh() = false on a fresh dashboard")
	}
	deadline := time.Now().Add(3 * time.Second)
	for dash.queue.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("refresh outcome never reached the queue")
		}
		time.Sleep(5 * time.Millisecond)
	}
	dash.queue.DrainAll()

	st := dash.scheduler.State()
	if st.ConsecutiveFailures != 0 || st.LastSuccess.IsZero() {
		t.Fatalf("state = %+v, want one success", st)
	}
	view := dash.model.View()
	for _, want := range []string{"21°C", "좋음", "↓14°", "↑20°"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
