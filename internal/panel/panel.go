// Package panel holds the state of the weather widget: what the user typed,
// the last fetched snapshot and the day/night display mode.
package panel

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/i474232898/weather-panel/internal/weather"
)

// DefaultCity is fetched on Initialize when Options.DefaultCity is empty.
const DefaultCity = "Delhi,IN"

// Mode is the day/night visual theme.
type Mode int

const (
	Day Mode = iota
	Night
)

func (m Mode) String() string {
	if m == Night {
		return "night"
	}
	return "day"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Day {
		return Night
	}
	return Day
}

// LoadState tracks the outcome of the most recently issued fetch.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "not_loaded"
	}
}

// QueryState is the user-entered text and the city last searched for.
type QueryState struct {
	CityInput   string `json:"cityInput"`
	CurrentCity string `json:"currentCity"`
}

// Request identifies one issued fetch. Only the latest request may update
// the panel.
type Request struct {
	Seq  uint64
	ID   string
	City string
}

// Options configures a Panel.
type Options struct {
	DefaultCity string
	// CountrySuffix is appended as ",<suffix>" to searches submitted from the
	// city input. Empty disables the suffix.
	CountrySuffix string
}

// Panel is the weather widget. It is safe for concurrent use; network I/O
// never happens while the lock is held.
type Panel struct {
	provider weather.Provider
	opts     Options

	mu       sync.Mutex
	query    QueryState
	snapshot *weather.Payload
	mode     Mode
	state    LoadState
	lastErr  error
	seq      uint64
}

// New creates a Panel with no data, in Day mode.
func New(provider weather.Provider, opts Options) *Panel {
	if opts.DefaultCity == "" {
		opts.DefaultCity = DefaultCity
	}
	return &Panel{
		provider: provider,
		opts:     opts,
		mode:     Day,
	}
}

// DefaultCity returns the city fetched by Initialize.
func (p *Panel) DefaultCity() string {
	return p.opts.DefaultCity
}

// Initialize fetches the default city.
func (p *Panel) Initialize(ctx context.Context) {
	p.Search(ctx, p.opts.DefaultCity)
}

// Search fetches cityName and applies the result. Empty or whitespace-only
// names are ignored.
func (p *Panel) Search(ctx context.Context, cityName string) {
	req, ok := p.Begin(cityName)
	if !ok {
		return
	}
	payload, err := p.Fetch(ctx, req)
	p.Complete(req, payload, err)
}

// SubmitSearch searches for the current city input with the country suffix
// appended, as the search button does.
func (p *Panel) SubmitSearch(ctx context.Context) {
	req, ok := p.BeginSubmit()
	if !ok {
		return
	}
	payload, err := p.Fetch(ctx, req)
	p.Complete(req, payload, err)
}

// Refresh re-fetches the city currently on display.
func (p *Panel) Refresh(ctx context.Context) {
	p.mu.Lock()
	city := p.query.CurrentCity
	p.mu.Unlock()

	p.Search(ctx, city)
}

// BeginSubmit is the non-blocking half of SubmitSearch.
func (p *Panel) BeginSubmit() (Request, bool) {
	p.mu.Lock()
	input := p.query.CityInput
	p.mu.Unlock()

	if strings.TrimSpace(input) == "" {
		return Request{}, false
	}
	q := input
	if p.opts.CountrySuffix != "" {
		q = input + "," + p.opts.CountrySuffix
	}
	return p.Begin(q)
}

// Begin registers a new request for cityName and marks the panel as loading.
// The snapshot on display is kept until the request completes.
func (p *Panel) Begin(cityName string) (Request, bool) {
	if strings.TrimSpace(cityName) == "" {
		return Request{}, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	req := Request{
		Seq:  p.seq,
		ID:   uuid.NewString(),
		City: cityName,
	}
	p.query.CurrentCity = cityName
	p.state = Loading

	log.Printf("INFO: panel: fetching %q (request %s)", cityName, req.ID)
	return req, true
}

// Fetch performs the network call for req. It does not touch panel state.
func (p *Panel) Fetch(ctx context.Context, req Request) (*weather.Payload, error) {
	return p.provider.Current(ctx, req.City)
}

// Complete applies the outcome of req. It reports false when req has been
// superseded by a later request, in which case the outcome is dropped.
func (p *Panel) Complete(req Request, payload *weather.Payload, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if req.Seq != p.seq {
		log.Printf("DEBUG: panel: dropping stale response for %q (request %s, seq %d < %d)", req.City, req.ID, req.Seq, p.seq)
		return false
	}

	if err == nil && payload == nil {
		err = weather.ErrPayload
	}
	if err != nil {
		log.Printf("ERROR: panel: error fetching weather for %q (request %s): %v", req.City, req.ID, err)
		p.snapshot = nil
		p.state = Failed
		p.lastErr = err
		return true
	}

	p.snapshot = payload
	p.state = Loaded
	p.lastErr = nil
	if day, ok := payload.IsDay(); ok {
		if day {
			p.mode = Day
		} else {
			p.mode = Night
		}
	}
	return true
}

// ToggleMode flips between Day and Night.
func (p *Panel) ToggleMode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = p.mode.Toggle()
	return p.mode
}

// UpdateCityInput stores the raw text of the city input.
func (p *Panel) UpdateCityInput(text string) {
	p.mu.Lock()
	p.query.CityInput = text
	p.mu.Unlock()
}

func (p *Panel) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *Panel) Query() QueryState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// Snapshot returns the last successful payload, or nil.
func (p *Panel) Snapshot() *weather.Payload {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Status returns the state of the latest request and, when it failed, why.
func (p *Panel) Status() (LoadState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.lastErr
}
