package provider

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrOffline is returned by weather sources that have no data feed.
var ErrOffline = errors.New("weather source offline")

// Weather is the current conditions and a short forecast for a location.
type Weather struct {
	Location    string
	Conditions  string
	Temperature float64
	FeelsLike   float64
	Humidity    int
	WindMPH     float64
	Sunrise     time.Time
	Sunset      time.Time
	Observed    time.Time
	Forecast    []ForecastDay
}

type ForecastDay struct {
	Day        string
	Conditions string
	High, Low  float64
}

// WeatherSource fetches weather for a location code. Implementations may
// block on I/O.
type WeatherSource interface {
	Fetch(ctx context.Context, location string) (Weather, error)
}

// WeatherSourceFunc adapts a function to WeatherSource.
type WeatherSourceFunc func(ctx context.Context, location string) (Weather, error)

func (f WeatherSourceFunc) Fetch(ctx context.Context, location string) (Weather, error) {
	return f(ctx, location)
}

// Offline never has data.
type Offline struct{}

func (Offline) Fetch(context.Context, string) (Weather, error) {
	return Weather{}, ErrOffline
}

// NewWeather wraps src in an Async provider. location is called on every
// fetch so changes to the configured location apply to the next refresh.
func NewWeather(ctx context.Context, src WeatherSource, interval time.Duration, location func() string, logger *slog.Logger) *Async[Weather] {
	if src == nil {
		src = Offline{}
	}
	fetch := func(ctx context.Context) (Weather, error) {
		return src.Fetch(ctx, location())
	}
	return NewAsync(ctx, "weather", interval, fetch, logger)
}
