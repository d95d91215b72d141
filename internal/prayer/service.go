package prayer

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/timings"
)

const (
	// SourceAPI and SourceFallback tag where a schedule's timings came from.
	SourceAPI      = "api"
	SourceFallback = "fallback"

	fetchTimeout = 10 * time.Second
)

// Cache stores raw timings per (cityKey, dateKey). Implemented by the
// redis package; a map-backed implementation serves the tests.
type Cache interface {
	GetTimings(ctx context.Context, cityKey, dateKey string) (map[string]string, bool)
	SetTimings(ctx context.Context, cityKey, dateKey string, raw map[string]string, ttl time.Duration)
}

// Service produces the daily schedule for a city: cache first, then the
// remote source, then the static fallback. Flags are re-derived against
// "now" on every read, so a cached schedule still reports the right next
// slot as the day advances.
type Service struct {
	source  timings.Source
	cache   Cache
	country string
	method  int

	mu     sync.Mutex
	issued map[string]uint64 // newest fetch token per cache key
}

// NewService wires a schedule service. method is the aladhan calculation
// method ID (13 = Diyanet).
func NewService(source timings.Source, cache Cache, country string, method int) *Service {
	return &Service{
		source:  source,
		cache:   cache,
		country: country,
		method:  method,
		issued:  make(map[string]uint64),
	}
}

// Schedule returns the derived schedule for the city at "now". A fetch
// failure degrades to the mock schedule and is not surfaced as an error.
func (s *Service) Schedule(ctx context.Context, city string, now time.Time) model.DailySchedule {
	cityKey := timings.NormalizeCity(city)
	dateKey := now.Format("2006-01-02")
	cacheKey := cityKey + "|" + dateKey

	if raw, ok := s.cache.GetTimings(ctx, cityKey, dateKey); ok {
		return Derive(raw, city, cityKey, dateKey, now)
	}

	token := s.nextToken(cacheKey)

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	raw, err := s.source.Fetch(fetchCtx, city, s.country, s.method)
	if err != nil {
		log.Warn().Err(err).Str("city", city).Msg("timings fetch failed, serving fallback schedule")
		schedule := Derive(MockTimings(), city, cityKey, dateKey, now)
		schedule.Source = SourceFallback
		return schedule
	}

	// Commit only if no newer fetch for this key was issued while we were
	// in flight; a superseded result is served to its caller but must not
	// overwrite the cache behind the newer request.
	if s.isNewest(cacheKey, token) {
		s.cache.SetTimings(ctx, cityKey, dateKey, raw, ttlUntilMidnight(now))
	} else {
		log.Debug().Str("city", city).Msg("discarding superseded timings fetch")
	}

	schedule := Derive(raw, city, cityKey, dateKey, now)
	schedule.Source = SourceAPI
	return schedule
}

func (s *Service) nextToken(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[key]++
	return s.issued[key]
}

func (s *Service) isNewest(key string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued[key] == token
}

// ttlUntilMidnight expires cached timings at local midnight, since the
// cache key is only valid for one calendar day.
func ttlUntilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
