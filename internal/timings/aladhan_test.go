package timings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Istanbul", "istanbul"},
		{"İstanbul", "istanbul"},
		{"Şanlıurfa", "sanliurfa"},
		{"Çanakkale", "canakkale"},
		{"Gümüşhane", "gumushane"},
		{"  Ankara  ", "ankara"},
		{"IZMIR", "izmir"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCity(tc.in), tc.in)
	}
}

func TestAladhanFetch(t *testing.T) {
	var gotCity, gotCountry, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCity = r.URL.Query().Get("city")
		gotCountry = r.URL.Query().Get("country")
		gotMethod = r.URL.Query().Get("method")
		w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"06:18","Dhuhr":"12:54"}}}`))
	}))
	defer srv.Close()

	source := NewAladhanSource(srv.URL)
	raw, err := source.Fetch(context.Background(), "İstanbul", "Turkey", 13)
	require.NoError(t, err)

	assert.Equal(t, "istanbul", gotCity)
	assert.Equal(t, "Turkey", gotCountry)
	assert.Equal(t, "13", gotMethod)
	assert.Equal(t, "06:18", raw["Fajr"])
	assert.Equal(t, "12:54", raw["Dhuhr"])
}

func TestAladhanFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	source := NewAladhanSource(srv.URL)
	_, err := source.Fetch(context.Background(), "Istanbul", "Turkey", 13)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestAladhanFetchEmptyTimings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":200,"data":{"timings":{}}}`))
	}))
	defer srv.Close()

	source := NewAladhanSource(srv.URL)
	_, err := source.Fetch(context.Background(), "Istanbul", "Turkey", 13)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

type countingSource struct {
	calls int
}

func (c *countingSource) Name() string { return "counting" }

func (c *countingSource) Fetch(_ context.Context, city, country string, method int) (map[string]string, error) {
	c.calls++
	return map[string]string{"Fajr": "06:18"}, nil
}

func TestRateLimitedSourceForwards(t *testing.T) {
	inner := &countingSource{}
	limited := NewRateLimitedSource(inner, 100, 1)

	raw, err := limited.Fetch(context.Background(), "Istanbul", "Turkey", 13)
	require.NoError(t, err)
	assert.Equal(t, "06:18", raw["Fajr"])
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "counting [Rate Limited]", limited.Name())
}

func TestRateLimitedSourceCanceledContext(t *testing.T) {
	inner := &countingSource{}
	// zero burst means the first request already has to wait
	limited := NewRateLimitedSource(inner, 0.001, 1)

	// drain the single burst token
	_, err := limited.Fetch(context.Background(), "Istanbul", "Turkey", 13)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = limited.Fetch(ctx, "Istanbul", "Turkey", 13)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFetchFailed))
	assert.Equal(t, 1, inner.calls)
}
