// Package content serves the daily dua and hadith cards. Selection is a
// pure function of the day of year, so every user sees the same card all
// day and re-reads are idempotent.
package content

import (
	"context"
	"time"

	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/quran"
)

// Service rotates through the embedded corpora and attaches the verse of
// the day from the quran client.
type Service struct {
	quran *quran.Client
}

func NewService(quranClient *quran.Client) *Service {
	return &Service{quran: quranClient}
}

// DayOfYear for the given time, 1-based.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// Daily returns the content bundle for the given day.
func (s *Service) Daily(ctx context.Context, now time.Time) model.DailyContent {
	day := DayOfYear(now)
	bundle := model.DailyContent{
		DayOfYear: day,
		Dua:       duas[day%len(duas)],
		Hadith:    hadiths[day%len(hadiths)],
	}
	if s.quran != nil {
		v := s.quran.DailyVerse(ctx, day)
		bundle.Verse = &v
	}
	return bundle
}

// DuaOfDay exposes the dua rotation without the remote verse lookup.
func DuaOfDay(now time.Time) model.Dua {
	return duas[DayOfYear(now)%len(duas)]
}

// HadithOfDay exposes the hadith rotation without the remote verse lookup.
func HadithOfDay(now time.Time) model.Hadith {
	return hadiths[DayOfYear(now)%len(hadiths)]
}
