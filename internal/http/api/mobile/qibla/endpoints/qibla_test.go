package endpoints_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/geoloc"
	"github.com/Duvar1/vakit/internal/heading"
	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/qibla/endpoints"
	"github.com/Duvar1/vakit/internal/http/middleware"
	"github.com/Duvar1/vakit/internal/model"
)

const testSecret = "test-secret"

type fakeStore struct {
	db.Store
	user model.User
}

func (f *fakeStore) GetUserByID(id int) (*model.User, error) {
	user := f.user
	return &user, nil
}

func newTestRouter(store *fakeStore) (*gin.Engine, *geoloc.Store) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.InjectStore(store))

	positions := geoloc.NewStore(geoloc.DefaultMaxStaleness)
	compasses := heading.NewManager(heading.NewSubscriber(nil))

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/mobile",
		Auth:      true,
		SecretKey: testSecret,
	}, endpoints.QiblaModule(positions, compasses))
	return r, positions
}

func authedRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	token, err := middleware.GenerateJWT(1, testSecret)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestReportLocationReturnsReading(t *testing.T) {
	store := &fakeStore{user: model.User{ID: 1, City: "Istanbul"}}
	router, _ := newTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/mobile/qibla/location", gin.H{
		"latitude":  41.0082,
		"longitude": 28.9784,
	}))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reading model.QiblaReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.InDelta(t, 152, reading.BearingDeg, 1)
	assert.InDelta(t, 2405, reading.DistanceKm, 20)
}

func TestGetReadingAfterReport(t *testing.T) {
	store := &fakeStore{user: model.User{ID: 1, City: "Istanbul"}}
	router, positions := newTestRouter(store)
	require.NoError(t, positions.Report(1, 41.0082, 28.9784))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/mobile/qibla", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var reading model.QiblaReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reading))
	assert.InDelta(t, 152, reading.BearingDeg, 1)
}

func TestGetReadingWithoutFix(t *testing.T) {
	store := &fakeStore{user: model.User{ID: 1, City: "Istanbul"}}
	router, _ := newTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/mobile/qibla", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestReportLocationOutOfRange(t *testing.T) {
	store := &fakeStore{user: model.User{ID: 1, City: "Istanbul"}}
	router, _ := newTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/mobile/qibla/location", gin.H{
		"latitude":  95.0,
		"longitude": 28.9784,
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCompassWithoutDevice(t *testing.T) {
	store := &fakeStore{user: model.User{ID: 1, City: "Istanbul"}}
	router, positions := newTestRouter(store)
	require.NoError(t, positions.Report(1, 41.0082, 28.9784))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodGet, "/api/mobile/qibla/compass", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCalibrateWithoutCompass(t *testing.T) {
	store := &fakeStore{user: model.User{ID: 1, City: "Istanbul"}}
	router, _ := newTestRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, http.MethodPost, "/api/mobile/qibla/compass/calibrate", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}
