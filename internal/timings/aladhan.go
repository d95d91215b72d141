package timings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// AladhanSource fetches timings from the aladhan.com timingsByCity API.
type AladhanSource struct {
	baseURL string
	client  *http.Client
}

// NewAladhanSource creates a source against the public aladhan API.
// baseURL may be overridden for tests; empty means the production endpoint.
func NewAladhanSource(baseURL string) *AladhanSource {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &AladhanSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *AladhanSource) Name() string { return "aladhan" }

type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// Fetch retrieves the raw timings map for the given city. The city name is
// normalized (Turkish characters folded to ASCII, lowercased) before being
// sent, matching what the API expects for Turkish cities.
func (s *AladhanSource) Fetch(ctx context.Context, city, country string, method int) (map[string]string, error) {
	q := url.Values{}
	q.Set("city", NormalizeCity(city))
	q.Set("country", country)
	q.Set("method", strconv.Itoa(method))

	endpoint := fmt.Sprintf("%s/timingsByCity?%s", s.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("aladhan request failed")
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Str("city", city).Msg("aladhan returned non-OK status")
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var parsed aladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrFetchFailed, err)
	}
	if parsed.Code != http.StatusOK || len(parsed.Data.Timings) == 0 {
		return nil, fmt.Errorf("%w: empty timings payload", ErrFetchFailed)
	}
	return parsed.Data.Timings, nil
}

var turkishFold = strings.NewReplacer(
	"ı", "i", "İ", "i",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
)

// NormalizeCity folds Turkish characters to ASCII and lowercases the name,
// e.g. "İstanbul" -> "istanbul", "Şanlıurfa" -> "sanliurfa".
func NormalizeCity(city string) string {
	return strings.ToLower(turkishFold.Replace(strings.TrimSpace(city)))
}
