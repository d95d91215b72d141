package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireTestDB connects to TEST_DATABASE_URL or skips the test.
func requireTestDB(t *testing.T) Store {
	t.Helper()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if TestStore == nil {
		require.NoError(t, InitTestDB("../../migrations"))
	}
	return TestStore
}

func TestUserRoundTrip(t *testing.T) {
	store := requireTestDB(t)

	name := "Test User"
	id, err := store.CreateUser("user-roundtrip@example.com", "hashed", &name, "Istanbul")
	require.NoError(t, err)

	user, err := store.GetUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, "user-roundtrip@example.com", user.Email)
	assert.Equal(t, "Istanbul", user.City)
	assert.False(t, user.IsPremium)

	require.NoError(t, store.UpdateUserDevice(id, "device-42"))
	require.NoError(t, store.SetUserPremium(id, true))

	user, err = store.GetUserByID(id)
	require.NoError(t, err)
	require.NotNil(t, user.DeviceID)
	assert.Equal(t, "device-42", *user.DeviceID)
	assert.True(t, user.IsPremium)
}

func TestReminderPrefUpsert(t *testing.T) {
	store := requireTestDB(t)

	id, err := store.CreateUser("prefs@example.com", "hashed", nil, "Ankara")
	require.NoError(t, err)

	require.NoError(t, store.UpsertReminderPref(id, "yatsi", 15, true))
	require.NoError(t, store.UpsertReminderPref(id, "yatsi", 30, true))
	require.NoError(t, store.UpsertReminderPref(id, "imsak", 5, false))

	prefs, err := store.GetReminderPrefs(id)
	require.NoError(t, err)
	require.Len(t, prefs, 2)

	byID := map[string]int{}
	for _, p := range prefs {
		byID[p.SlotID] = p.LeadMinutes
	}
	// the second upsert replaced the first, no duplicate row
	assert.Equal(t, 30, byID["yatsi"])
	assert.Equal(t, 5, byID["imsak"])
}

func TestBookmarkLifecycle(t *testing.T) {
	store := requireTestDB(t)

	id, err := store.CreateUser("bookmarks@example.com", "hashed", nil, "Izmir")
	require.NoError(t, err)

	note := "sabah okuması"
	b, err := store.CreateBookmark(id, 2, 255, &note)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Surah)
	assert.Equal(t, 255, b.Ayah)

	list, err := store.ListBookmarks(id)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, store.DeleteBookmark(id, b.ID))
	list, err = store.ListBookmarks(id)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStepSampleUpsert(t *testing.T) {
	store := requireTestDB(t)

	id, err := store.CreateUser("steps@example.com", "hashed", nil, "Bursa")
	require.NoError(t, err)

	require.NoError(t, store.UpsertStepSample(id, "2025-03-10", 4200))
	require.NoError(t, store.UpsertStepSample(id, "2025-03-10", 6800))
	require.NoError(t, store.UpsertStepSample(id, "2025-03-11", 1200))

	samples, err := store.ListStepSamples(id, 7)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	// newest first, and the later upsert won
	assert.Equal(t, "2025-03-11", samples[0].Day)
	assert.Equal(t, 6800, samples[1].Steps)
}
