package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/i474232898/weather-panel/internal/weather"
)

const testAPIKey = "test-key"

const delhiBody = `{
  "location": {"name": "Delhi", "country": "India"},
  "current": {
    "temp_c": 30, "feelslike_c": 33.4, "humidity": 40, "wind_kph": 11.2,
    "cloud": 25, "is_day": 1,
    "condition": {"text": "Sunny", "icon": "//x/icon.png"}
  }
}`

func newTestProvider(baseURL string, opts WeatherAPIOptions) *WeatherAPIProvider {
	opts.BaseURL = baseURL
	return NewWeatherAPIProvider(&http.Client{Timeout: 5 * time.Second}, testAPIKey, opts)
}

func TestCurrentSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("q"); got != "Delhi,IN" {
			t.Errorf("expected q=Delhi,IN, got %s", got)
		}
		if got := q.Get("key"); got != testAPIKey {
			t.Errorf("expected key=%s, got %s", testAPIKey, got)
		}
		if got := q.Get("aqi"); got != "no" {
			t.Errorf("expected aqi=no, got %s", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(delhiBody))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL, WeatherAPIOptions{}).Current(context.Background(), "Delhi,IN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.LocationName() != "Delhi" {
		t.Errorf("expected name Delhi, got %s", got.LocationName())
	}
	if got.Country() != "India" {
		t.Errorf("expected country India, got %s", got.Country())
	}
	if temp := got.TempC(); temp == nil || *temp != 30 {
		t.Errorf("expected temp 30, got %v", temp)
	}
	if day, ok := got.IsDay(); !ok || !day {
		t.Errorf("expected is_day=1, got day=%v ok=%v", day, ok)
	}
	if got.ConditionIcon() != "//x/icon.png" {
		t.Errorf("expected icon //x/icon.png, got %s", got.ConditionIcon())
	}
}

func TestCurrentMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current": {"temp_c": 12}}`))
	}))
	defer srv.Close()

	got, err := newTestProvider(srv.URL, WeatherAPIOptions{}).Current(context.Background(), "Oslo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LocationName() != "" || got.ConditionText() != "" {
		t.Errorf("expected empty location and condition, got %q %q", got.LocationName(), got.ConditionText())
	}
	if got.Humidity() != nil {
		t.Errorf("expected nil humidity, got %v", *got.Humidity())
	}
	if _, ok := got.IsDay(); ok {
		t.Error("expected is_day to be absent")
	}
}

func TestCurrentNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL, WeatherAPIOptions{}).Current(context.Background(), "Nowhere")
	if !errors.Is(err, weather.ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
}

func TestCurrentMalformedPayload(t *testing.T) {
	for name, body := range map[string]string{
		"truncated": `{"current": {`,
		"null":      `null`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestProvider(srv.URL, WeatherAPIOptions{}).Current(context.Background(), "Delhi")
			if !errors.Is(err, weather.ErrPayload) {
				t.Fatalf("expected ErrPayload, got %v", err)
			}
		})
	}
}

func TestCurrentNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestProvider(url, WeatherAPIOptions{}).Current(context.Background(), "Delhi")
	if !errors.Is(err, weather.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestCurrentDoesNotRetryByDefault(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestProvider(srv.URL, WeatherAPIOptions{}).Current(context.Background(), "Delhi")
	if err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("expected exactly one request, got %d", n)
	}
}

func TestCurrentRetriesWhenConfigured(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(delhiBody))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, WeatherAPIOptions{
		Backoff: BackoffConfig{MaxRetries: 3, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Millisecond},
	})
	got, err := p.Current(context.Background(), "Delhi,IN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LocationName() != "Delhi" {
		t.Errorf("expected name Delhi, got %s", got.LocationName())
	}
	if n := hits.Load(); n != 3 {
		t.Errorf("expected 3 requests, got %d", n)
	}
}

func TestCurrentContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProvider(srv.URL, WeatherAPIOptions{}).Current(ctx, "Delhi")
	if !errors.Is(err, weather.ErrNetwork) {
		t.Fatalf("expected ErrNetwork for cancelled context, got %v", err)
	}
}

func TestCurrentUnknownCitiesDoNotOpenCircuit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("q") != "Delhi,IN" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
			return
		}
		w.Write([]byte(delhiBody))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, WeatherAPIOptions{})
	for i := 0; i < 10; i++ {
		if _, err := p.Current(context.Background(), "Typo"); !errors.Is(err, weather.ErrStatus) {
			t.Fatalf("attempt %d: expected ErrStatus, got %v", i, err)
		}
	}

	got, err := p.Current(context.Background(), "Delhi,IN")
	if err != nil {
		t.Fatalf("expected valid city to succeed after unknown ones, got %v", err)
	}
	if got.LocationName() != "Delhi" {
		t.Errorf("expected name Delhi, got %s", got.LocationName())
	}
	if n := hits.Load(); n != 11 {
		t.Errorf("expected 11 requests, got %d", n)
	}
}

func TestCurrentServerErrorsOpenCircuit(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL, WeatherAPIOptions{})
	for i := 0; i < 6; i++ {
		p.Current(context.Background(), "Delhi,IN")
	}

	_, err := p.Current(context.Background(), "Delhi,IN")
	if !errors.Is(err, weather.ErrNetwork) || !errors.Is(err, errCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
	if n := hits.Load(); n != 6 {
		t.Errorf("expected 6 requests before the circuit opened, got %d", n)
	}
}
