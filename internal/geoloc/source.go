// Package geoloc abstracts where the device position comes from. The
// mobile shell reports fixes through the API; the cached source keeps the
// last fix per user and tolerates a bounded staleness, mirroring the
// position-cache behavior of the platform geolocation call.
package geoloc

import (
	"context"
	"sync"
	"time"

	"github.com/Duvar1/vakit/internal/qibla"
)

const (
	// DefaultTimeout bounds a position request.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxStaleness is how old a cached fix may be and still count.
	DefaultMaxStaleness = 5 * time.Minute
)

// Position is one device fix.
type Position struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp"`
}

// Source yields the current position or fails with LocationUnavailable.
type Source interface {
	Current(ctx context.Context) (Position, error)
}

// Store keeps the most recent fix per user and serves it while fresh.
type Store struct {
	mu           sync.Mutex
	fixes        map[int]Position
	maxStaleness time.Duration
	now          func() time.Time
}

func NewStore(maxStaleness time.Duration) *Store {
	if maxStaleness <= 0 {
		maxStaleness = DefaultMaxStaleness
	}
	return &Store{
		fixes:        make(map[int]Position),
		maxStaleness: maxStaleness,
		now:          time.Now,
	}
}

// Report records a fix for the user. Out-of-range coordinates are refused.
func (s *Store) Report(userID int, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return &qibla.LocationUnavailable{Cause: "coordinates out of range"}
	}
	s.mu.Lock()
	s.fixes[userID] = Position{Lat: lat, Lng: lng, Timestamp: s.now()}
	s.mu.Unlock()
	return nil
}

// ForUser narrows the store to a single user as a Source.
func (s *Store) ForUser(userID int) Source {
	return userSource{store: s, userID: userID}
}

type userSource struct {
	store  *Store
	userID int
}

func (u userSource) Current(_ context.Context) (Position, error) {
	return u.store.Latest(u.userID)
}

// Latest returns the user's last fix if it is fresher than the staleness
// bound, otherwise LocationUnavailable. Never returns a zero position as
// if it were valid.
func (s *Store) Latest(userID int) (Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fix, ok := s.fixes[userID]
	if !ok {
		return Position{}, &qibla.LocationUnavailable{Cause: "no position reported yet"}
	}
	if s.now().Sub(fix.Timestamp) > s.maxStaleness {
		return Position{}, &qibla.LocationUnavailable{Cause: "last position is stale"}
	}
	return fix, nil
}
