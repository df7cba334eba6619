package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-panel/internal/weather"
)

// DefaultWeatherAPIURL is the current-conditions endpoint of WeatherAPI.com.
const DefaultWeatherAPIURL = "https://api.weatherapi.com/v1/current.json"

// WeatherAPIProvider implements weather.Provider for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// WeatherAPIOptions configures a WeatherAPIProvider. Zero values select defaults.
type WeatherAPIOptions struct {
	BaseURL string
	Backoff BackoffConfig
}

func NewWeatherAPIProvider(client *http.Client, apiKey string, opts WeatherAPIOptions) *WeatherAPIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultWeatherAPIURL
	}
	backoff := opts.Backoff
	if backoff.MaxRetries > 0 && backoff.InitialInterval <= 0 {
		backoff.InitialInterval = 500 * time.Millisecond
	}
	if backoff.MaxRetries > 0 && backoff.MaxInterval <= 0 {
		backoff.MaxInterval = 5 * time.Second
	}

	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Backoff: backoff,
		},
		circuit: cb,
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

// Current fetches current.json for q. q is sent as-is, so "Delhi,IN" and
// "Mumbai" are both valid.
func (p *WeatherAPIProvider) Current(ctx context.Context, q string) (*weather.Payload, error) {
	buildRequest := func(ctx context.Context) (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		values.Set("q", q)
		values.Set("aqi", "no")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload *weather.Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", weather.ErrPayload, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty body", weather.ErrPayload)
	}

	return payload, nil
}
