package weather

import (
	"context"
	"errors"
)

// Failure classes of a current-weather fetch. Providers wrap one of these so
// callers can tell them apart with errors.Is.
var (
	ErrNetwork = errors.New("network failure")
	ErrStatus  = errors.New("non-success status")
	ErrPayload = errors.New("malformed payload")
)

// Provider abstracts the current-weather collaborator (WeatherAPI.com).
type Provider interface {
	Name() string
	// Current fetches current conditions for q, which is passed to the API verbatim.
	Current(ctx context.Context, q string) (*Payload, error)
}
