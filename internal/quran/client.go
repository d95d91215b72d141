// Package quran serves the daily and random verse cards. Providers are
// tried in a fixed order and the embedded fallback corpus guarantees the
// card never comes up empty.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
)

const (
	alquranURL = "https://api.alquran.cloud/v1/ayah/random/tr.ozyuksel"
	tanzilURL  = "https://cdn.jsdelivr.net/gh/fawazahmed0/quran-api@1/editions/tur-diyanet/%d.min.json"

	surahCount = 114
)

// Client fetches verses with two remote providers and a static fallback.
// Safe for concurrent use; random picks go through the locked top-level
// math/rand source.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// RandomVerse tries alquran.cloud first, then the tanzil mirror, then the
// embedded corpus. It never returns an error: a verse always comes back,
// tagged with its source.
func (c *Client) RandomVerse(ctx context.Context) model.Verse {
	if v, err := c.fromAlquran(ctx); err == nil {
		return v
	} else {
		log.Warn().Err(err).Msg("alquran.cloud verse fetch failed, trying tanzil mirror")
	}

	if v, err := c.fromTanzil(ctx); err == nil {
		return v
	} else {
		log.Warn().Err(err).Msg("tanzil verse fetch failed, serving fallback verse")
	}

	return fallbackVerses[rand.Intn(len(fallbackVerses))]
}

// DailyVerse returns the verse of the day: a remote verse when a provider
// answers, otherwise the fallback entry for the given day of year so the
// card is stable across reloads on the same day.
func (c *Client) DailyVerse(ctx context.Context, dayOfYear int) model.Verse {
	if v, err := c.fromAlquran(ctx); err == nil {
		return v
	}
	if v, err := c.fromTanzil(ctx); err == nil {
		return v
	}
	return fallbackVerses[dayOfYear%len(fallbackVerses)]
}

type alquranResponse struct {
	Code int `json:"code"`
	Data struct {
		Text        string `json:"text"`
		Translation string `json:"translation"`
		NumberInSur int    `json:"numberInSurah"`
		Surah       struct {
			Number      int    `json:"number"`
			EnglishName string `json:"englishName"`
		} `json:"surah"`
	} `json:"data"`
}

func (c *Client) fromAlquran(ctx context.Context) (model.Verse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, alquranURL, nil)
	if err != nil {
		return model.Verse{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return model.Verse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Verse{}, fmt.Errorf("alquran status %d", resp.StatusCode)
	}

	var parsed alquranResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.Verse{}, err
	}
	if parsed.Code != http.StatusOK || parsed.Data.Text == "" {
		return model.Verse{}, fmt.Errorf("alquran empty payload")
	}

	turkish := parsed.Data.Translation
	if turkish == "" {
		turkish = fallbackTranslation(parsed.Data.Surah.Number)
	}
	return model.Verse{
		Arabic:    parsed.Data.Text,
		Turkish:   turkish,
		Reference: fmt.Sprintf("%s %d. Ayet", parsed.Data.Surah.EnglishName, parsed.Data.NumberInSur),
		Source:    "alquran.cloud",
	}, nil
}

type tanzilResponse struct {
	Name    string `json:"name"`
	Chapter []struct {
		Verse       int    `json:"verse"`
		Text        string `json:"text"`
		Translation string `json:"translation"`
	} `json:"chapter"`
}

func (c *Client) fromTanzil(ctx context.Context) (model.Verse, error) {
	surah := rand.Intn(surahCount) + 1
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(tanzilURL, surah), nil)
	if err != nil {
		return model.Verse{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return model.Verse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.Verse{}, fmt.Errorf("tanzil status %d", resp.StatusCode)
	}

	var parsed tanzilResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.Verse{}, err
	}
	if len(parsed.Chapter) == 0 {
		return model.Verse{}, fmt.Errorf("tanzil empty chapter")
	}

	verse := parsed.Chapter[rand.Intn(len(parsed.Chapter))]
	turkish := verse.Translation
	if turkish == "" {
		turkish = fallbackTranslation(surah)
	}
	return model.Verse{
		Arabic:    verse.Text,
		Turkish:   turkish,
		Reference: fmt.Sprintf("%s %d. Ayet", parsed.Name, verse.Verse),
		Source:    "tanzil",
	}, nil
}
