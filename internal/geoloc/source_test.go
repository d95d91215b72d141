package geoloc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Duvar1/vakit/internal/qibla"
)

func TestStoreServesFreshFix(t *testing.T) {
	s := NewStore(5 * time.Minute)
	if err := s.Report(7, 41.0082, 28.9784); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	fix, err := s.Latest(7)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if fix.Lat != 41.0082 || fix.Lng != 28.9784 {
		t.Errorf("unexpected fix: %+v", fix)
	}
}

func TestStoreRejectsStaleFix(t *testing.T) {
	s := NewStore(5 * time.Minute)
	base := time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	if err := s.Report(7, 41, 29); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	s.now = func() time.Time { return base.Add(6 * time.Minute) }
	_, err := s.Latest(7)
	var unavailable *qibla.LocationUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("stale fix should be LocationUnavailable, got %v", err)
	}
}

func TestStoreNoFixIsUnavailableNotZero(t *testing.T) {
	s := NewStore(0)
	_, err := s.Latest(99)
	var unavailable *qibla.LocationUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("missing fix should be LocationUnavailable, got %v", err)
	}
}

func TestStoreRejectsOutOfRange(t *testing.T) {
	s := NewStore(0)
	if err := s.Report(1, 120, 0); err == nil {
		t.Fatal("out-of-range latitude accepted")
	}
}

func TestForUserNarrowsStore(t *testing.T) {
	s := NewStore(5 * time.Minute)
	if err := s.Report(7, 41, 29); err != nil {
		t.Fatalf("Report failed: %v", err)
	}

	fix, err := s.ForUser(7).Current(context.Background())
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if fix.Lat != 41 {
		t.Errorf("unexpected fix: %+v", fix)
	}

	if _, err := s.ForUser(8).Current(context.Background()); err == nil {
		t.Fatal("other user should have no fix")
	}
}
