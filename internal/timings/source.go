// Package timings fetches raw prayer timings from a remote provider.
package timings

import (
	"context"
	"errors"
)

// ErrFetchFailed wraps any network or API failure from a timings provider.
// Callers recover with a local fallback schedule; this error is never
// surfaced to the user as a hard failure.
var ErrFetchFailed = errors.New("timings fetch failed")

// Source is any provider of raw prayer timings for a city. The returned
// map keys are the canonical prayer names (Fajr, Sunrise, Dhuhr, Asr,
// Maghrib, Isha), values are wall-clock "HH:MM" strings.
type Source interface {
	Name() string
	Fetch(ctx context.Context, city, country string, method int) (map[string]string, error)
}
