package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyIsStableWithinADay(t *testing.T) {
	svc := NewService(nil)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	morning := svc.Daily(context.Background(), day.Add(6*time.Hour))
	evening := svc.Daily(context.Background(), day.Add(22*time.Hour))

	assert.Equal(t, morning.Dua, evening.Dua)
	assert.Equal(t, morning.Hadith, evening.Hadith)
	assert.Equal(t, morning.DayOfYear, evening.DayOfYear)
}

func TestDailyRotatesAcrossDays(t *testing.T) {
	svc := NewService(nil)
	today := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	a := svc.Daily(context.Background(), today)
	b := svc.Daily(context.Background(), tomorrow)

	assert.NotEqual(t, a.Dua, b.Dua)
	assert.NotEqual(t, a.Hadith, b.Hadith)
}

func TestDailyWithoutQuranClient(t *testing.T) {
	svc := NewService(nil)
	bundle := svc.Daily(context.Background(), time.Now())

	assert.Nil(t, bundle.Verse)
	require.NotEmpty(t, bundle.Dua.Turkish)
	require.NotEmpty(t, bundle.Hadith.Text)
}

func TestCorpusEntriesComplete(t *testing.T) {
	for _, d := range duas {
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Turkish)
	}
	for _, h := range hadiths {
		assert.NotEmpty(t, h.Text)
		assert.NotEmpty(t, h.Source)
	}
}
