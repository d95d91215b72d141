// Package steps pulls daily step totals from Google Fit and keeps a short
// per-user history.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	aggregateURL = "https://www.googleapis.com/fitness/v1/users/me/dataset:aggregate"
	dataSourceID = "derived:com.google.step_count.delta:com.google.android.gms:estimated_steps"

	// LoginTimeout bounds the interactive OAuth flow before auto-cancel.
	LoginTimeout = 120 * time.Second
)

// OAuthConfig builds the Google Fit OAuth2 config for the given client
// credentials and redirect URL.
func OAuthConfig(clientID, clientSecret, redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"https://www.googleapis.com/auth/fitness.activity.read"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
	}
}

// FitClient calls the Google Fit aggregate API with a user's token.
type FitClient struct {
	oauth *oauth2.Config
	http  *http.Client
}

func NewFitClient(oauthCfg *oauth2.Config) *FitClient {
	return &FitClient{
		oauth: oauthCfg,
		http:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Exchange turns the OAuth callback code into a token. The context should
// carry the login flow timeout.
func (c *FitClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google oauth exchange: %w", err)
	}
	return token, nil
}

// AuthURL returns the consent page URL for the state token.
func (c *FitClient) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

type aggregateRequest struct {
	AggregateBy []struct {
		DataTypeName string `json:"dataTypeName"`
		DataSourceID string `json:"dataSourceId"`
	} `json:"aggregateBy"`
	BucketByTime struct {
		DurationMillis int64 `json:"durationMillis"`
	} `json:"bucketByTime"`
	StartTimeMillis int64 `json:"startTimeMillis"`
	EndTimeMillis   int64 `json:"endTimeMillis"`
}

type aggregateResponse struct {
	Bucket []struct {
		Dataset []struct {
			Point []struct {
				Value []struct {
					IntVal int `json:"intVal"`
				} `json:"value"`
			} `json:"point"`
		} `json:"dataset"`
	} `json:"bucket"`
}

// TodaySteps aggregates the user's step deltas from local midnight to now.
// Missing buckets mean zero steps, not an error.
func (c *FitClient) TodaySteps(ctx context.Context, token *oauth2.Token, now time.Time) (int, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var body aggregateRequest
	body.AggregateBy = append(body.AggregateBy, struct {
		DataTypeName string `json:"dataTypeName"`
		DataSourceID string `json:"dataSourceId"`
	}{
		DataTypeName: "com.google.step_count.delta",
		DataSourceID: dataSourceID,
	})
	body.BucketByTime.DurationMillis = 24 * 60 * 60 * 1000
	body.StartTimeMillis = startOfDay.UnixMilli()
	body.EndTimeMillis = now.UnixMilli()

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, aggregateURL, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	token.SetAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("google fit aggregate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("google fit aggregate: status %d", resp.StatusCode)
	}

	var parsed aggregateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("google fit aggregate: decode: %w", err)
	}

	if len(parsed.Bucket) == 0 {
		return 0, nil
	}
	datasets := parsed.Bucket[0].Dataset
	if len(datasets) == 0 || len(datasets[0].Point) == 0 || len(datasets[0].Point[0].Value) == 0 {
		return 0, nil
	}
	return datasets[0].Point[0].Value[0].IntVal, nil
}
