package quran

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a canceled context forces both remote providers to fail immediately,
// exercising the fallback path without touching the network.
func canceledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func TestRandomVerseFallsBack(t *testing.T) {
	c := NewClient()
	v := c.RandomVerse(canceledContext())

	assert.NotEmpty(t, v.Turkish)
	assert.NotEmpty(t, v.Reference)
	assert.Equal(t, "fallback", v.Source)
}

func TestDailyVerseFallbackIsStable(t *testing.T) {
	c := NewClient()

	first := c.DailyVerse(canceledContext(), 42)
	second := c.DailyVerse(canceledContext(), 42)
	assert.Equal(t, first, second)

	other := c.DailyVerse(canceledContext(), 43)
	assert.NotEqual(t, first, other)
}

// Verse picks run on gin request goroutines, so the fallback path must be
// safe under the race detector when many requests land at once.
func TestConcurrentVersePicks(t *testing.T) {
	c := NewClient()
	ctx := canceledContext()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				v := c.RandomVerse(ctx)
				assert.NotEmpty(t, v.Turkish)
				c.DailyVerse(ctx, j)
			}
		}()
	}
	wg.Wait()
}

func TestFallbackCorpusComplete(t *testing.T) {
	require.NotEmpty(t, fallbackVerses)
	for _, v := range fallbackVerses {
		assert.NotEmpty(t, v.Turkish)
		assert.NotEmpty(t, v.Reference)
		assert.Equal(t, "fallback", v.Source)
	}
}
