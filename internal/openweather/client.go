package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/five82/weatherframe/internal/weather"
)

// Ensure Client implements weather.Source at compile time.
var _ weather.Source = (*Client)(nil)

const (
	defaultBaseURL        = "https://api.openweathermap.org/data/2.5"
	defaultIconBaseURL    = "https://openweathermap.org/img/wn"
	defaultUserAgent      = "weatherframe/0.1"
	defaultConnectTimeout = 3 * time.Second
	defaultReadTimeout    = 5 * time.Second

	breakerTripAfter = 3
	breakerCooldown  = 10 * time.Minute
)

// Options tune a Client. Zero values use defaults.
type Options struct {
	BaseURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	HTTPClient     *http.Client
}

// Client talks to the OpenWeather 2.5 REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	language  string
	userAgent string
	breaker   *gobreaker.CircuitBreaker
}

// NewClient builds a Client for apiKey, requesting descriptions in language
// (the provider's code, e.g. "kr" or "en").
func NewClient(apiKey, language string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openweather api key is empty")
	}
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = newHTTPClient(opts.ConnectTimeout, opts.ReadTimeout)
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		apiKey:    strings.TrimSpace(apiKey),
		language:  strings.TrimSpace(language),
		userAgent: defaultUserAgent,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openweather",
			Timeout: breakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerTripAfter
			},
		}),
	}, nil
}

func newHTTPClient(connect, read time.Duration) *http.Client {
	if connect <= 0 {
		connect = defaultConnectTimeout
	}
	if read <= 0 {
		read = defaultReadTimeout
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: connect}).DialContext
	transport.TLSHandshakeTimeout = connect
	transport.ResponseHeaderTimeout = read
	return &http.Client{
		Transport: transport,
		Timeout:   connect + read,
	}
}

// FetchCurrent retrieves current conditions for city.
func (c *Client) FetchCurrent(ctx context.Context, city string) (weather.Observation, error) {
	if c == nil {
		return weather.Observation{}, fmt.Errorf("client is nil")
	}
	return getJSON(ctx, c, "/weather", c.cityQuery(city), currentResponse.observation)
}

// FetchAirQuality returns the AQI (1..5) at coords, or 0 when the provider
// has no reading.
func (c *Client) FetchAirQuality(ctx context.Context, coords weather.Coordinates) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	values.Set("appid", c.apiKey)
	return getJSON(ctx, c, "/air_pollution", values, airQualityResponse.index)
}

// FetchForecast retrieves the 5 day / 3 hour forecast for city.
func (c *Client) FetchForecast(ctx context.Context, city string) ([]weather.ForecastEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	return getJSON(ctx, c, "/forecast", c.cityQuery(city), forecastResponse.entries)
}

// IconURL returns the provider-hosted PNG for an icon code. size is "2x" or "4x".
func IconURL(code, size string) string {
	if size == "" {
		size = "2x"
	}
	return fmt.Sprintf("%s/%s@%s.png", defaultIconBaseURL, url.PathEscape(code), size)
}

func (c *Client) cityQuery(city string) url.Values {
	values := url.Values{}
	values.Set("q", strings.TrimSpace(city))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")
	if c.language != "" {
		values.Set("lang", c.language)
	}
	return values
}

// getJSON decodes and converts a response inside the breaker, so a payload
// with missing fields counts as a failed call just like one that does not
// decode.
func getJSON[P, T any](ctx context.Context, c *Client, path string, values url.Values, convert func(P) (T, error)) (T, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		var payload P
		if err := c.doURL(ctx, http.MethodGet, path, values, &payload); err != nil {
			return nil, err
		}
		return convert(payload)
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, fmt.Errorf("%w: %v", weather.ErrCircuitOpen, err)
		}
		return zero, err
	}
	return res.(T), nil
}

func (c *Client) doURL(ctx context.Context, method, path string, values url.Values, dest any) error {
	reqURL := *c.baseURL
	reqURL.Path = strings.TrimRight(c.baseURL.Path, "/") + path
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		// Strip the query so the api key never reaches the logs.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = path
		}
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &weather.StatusError{Endpoint: path, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return weather.Malformed("decode %s: %v", path, err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
