package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/notify"
)

var testNow = time.Date(2026, 8, 28, 13, 0, 0, 0, time.Local)

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func ikindi() model.PrayerSlot {
	return model.PrayerSlot{ID: "ikindi", Name: "İkindi", Time: "15:50"}
}

func TestEnableSchedulesPair(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	ticket, err := s.Enable(context.Background(), ikindi(), 15)
	require.NoError(t, err)

	wantExact := time.Date(2026, 8, 28, 15, 50, 0, 0, time.Local)
	assert.Equal(t, wantExact, ticket.ExactFireAt)
	assert.Equal(t, wantExact.Add(-15*time.Minute), ticket.LeadFireAt)
	assert.NotEqual(t, ticket.LeadHandle, ticket.ExactHandle)

	pending, err := n.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestEnablePastTimeRollsToTomorrow(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	slot := model.PrayerSlot{ID: "imsak", Name: "İmsak", Time: "05:30"}
	ticket, err := s.Enable(context.Background(), slot, 10)
	require.NoError(t, err)

	want := time.Date(2026, 8, 29, 5, 30, 0, 0, time.Local)
	assert.Equal(t, want, ticket.ExactFireAt, "05:30 is already past at 13:00, must roll to tomorrow")
}

func TestEnableThenDisableLeavesNothingPending(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	_, err := s.Enable(context.Background(), ikindi(), 15)
	require.NoError(t, err)
	require.NoError(t, s.Disable(context.Background(), "ikindi"))

	pending, err := n.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending, "disable must leave zero pending handles")

	_, ok := s.Ticket("ikindi")
	assert.False(t, ok)
}

func TestLeadChangeNeverExceedsTwoPending(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	for _, lead := range []int{5, 15, 30, 45, 10} {
		_, err := s.Enable(context.Background(), ikindi(), lead)
		require.NoError(t, err)

		pending, err := n.ListPending(context.Background())
		require.NoError(t, err)
		assert.Len(t, pending, 2, "lead=%d: old pair must be cancelled before the new one", lead)
	}

	ticket, ok := s.Ticket("ikindi")
	require.True(t, ok)
	assert.Equal(t, ticket.ExactFireAt.Add(-10*time.Minute), ticket.LeadFireAt)
}

func TestEnableRejectsBadLead(t *testing.T) {
	s := NewScheduler(notify.NewMemoryNotifier(), WithClock(fixedClock()))
	for _, lead := range []int{0, 3, 7, 50, -5} {
		_, err := s.Enable(context.Background(), ikindi(), lead)
		assert.Error(t, err, "lead=%d must be rejected", lead)
	}
}

func TestEnableRejectsSunriseSlot(t *testing.T) {
	s := NewScheduler(notify.NewMemoryNotifier(), WithClock(fixedClock()))
	_, err := s.Enable(context.Background(), model.PrayerSlot{ID: "gunes", Name: "Güneş", Time: "07:00"}, 15)
	assert.Error(t, err)
}

func TestSchedulingDeniedLeavesNoHalfPair(t *testing.T) {
	n := notify.NewMemoryNotifier()
	n.Deny(&notify.SchedulingDenied{Cause: "permission revoked"})
	s := NewScheduler(n, WithClock(fixedClock()))

	_, err := s.Enable(context.Background(), ikindi(), 15)
	require.Error(t, err)

	var denied *notify.SchedulingDenied
	assert.True(t, errors.As(err, &denied))

	pending, listErr := n.ListPending(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, pending, "a denied pair must be all-or-nothing")
	assert.Empty(t, s.Tickets())
}

func TestSyncPurgesStaleTicketsFirst(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	// yesterday's state: two enabled slots
	_, err := s.Enable(context.Background(), ikindi(), 15)
	require.NoError(t, err)
	_, err = s.Enable(context.Background(), model.PrayerSlot{ID: "aksam", Name: "Akşam", Time: "18:20"}, 15)
	require.NoError(t, err)

	// fresh schedule: only yatsi still wants a reminder
	schedule := model.DailySchedule{Slots: []model.PrayerSlot{
		{ID: "imsak", Name: "İmsak", Time: "05:31"},
		{ID: "gunes", Name: "Güneş", Time: "07:01"},
		{ID: "yatsi", Name: "Yatsı", Time: "19:46", ReminderEnabled: true, LeadMinutes: 20},
	}}
	require.NoError(t, s.Sync(context.Background(), schedule))

	tickets := s.Tickets()
	require.Len(t, tickets, 1)
	assert.Equal(t, "yatsi", tickets[0].SlotID)

	pending, err := n.ListPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 2, "stale alarms must be purged before re-deriving")
}

func TestCancelAll(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	_, err := s.Enable(context.Background(), ikindi(), 15)
	require.NoError(t, err)
	require.NoError(t, s.CancelAll(context.Background()))

	pending, err := n.ListPending(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestHandlesAreStablePerSlot(t *testing.T) {
	n := notify.NewMemoryNotifier()
	s := NewScheduler(n, WithClock(fixedClock()))

	first, err := s.Enable(context.Background(), ikindi(), 15)
	require.NoError(t, err)
	require.NoError(t, s.Disable(context.Background(), "ikindi"))
	second, err := s.Enable(context.Background(), ikindi(), 25)
	require.NoError(t, err)

	assert.Equal(t, first.LeadHandle, second.LeadHandle, "re-deriving the same slot must yield the same handles")
	assert.Equal(t, first.ExactHandle, second.ExactHandle)
}

func TestHandleDerivationDistinctAcrossSlots(t *testing.T) {
	slots := []string{"imsak", "ogle", "ikindi", "aksam", "yatsi"}
	seen := make(map[int]string)
	for _, slot := range slots {
		for _, kind := range []string{KindLead, KindExact} {
			h := handleFor(slot, kind)
			if owner, dup := seen[h]; dup {
				t.Fatalf("handle %d derived for both %s and %s/%s", h, owner, slot, kind)
			}
			seen[h] = slot + "/" + kind
			if h <= 0 {
				t.Fatalf("handle for %s/%s is not positive: %d", slot, kind, h)
			}
		}
	}
}
