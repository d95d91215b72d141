package timings

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedSource wraps a Source with a token-bucket limiter so a
// misbehaving client cannot hammer the upstream API.
type RateLimitedSource struct {
	source  Source
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource allows rps requests per second (fractional values
// permitted) with the given burst size.
func NewRateLimitedSource(source Source, rps float64, burst int) *RateLimitedSource {
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

func (r *RateLimitedSource) Name() string { return r.name }

// Fetch waits for limiter permission (or context cancellation) and then
// forwards to the underlying source.
func (r *RateLimitedSource) Fetch(ctx context.Context, city, country string, method int) (map[string]string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait canceled: %v", ErrFetchFailed, err)
	}
	return r.source.Fetch(ctx, city, country, method)
}
