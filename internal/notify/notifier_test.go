package notify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(id int) Request {
	return Request{
		ID:       id,
		Title:    "⏰ Yatsı Vakti Yaklaşıyor",
		Body:     "15 dakika sonra Yatsı vakti",
		FireAt:   time.Now().Add(time.Hour),
		SoundKey: DefaultSoundKey,
		Channel:  ChannelPrayerReminders,
	}
}

func TestMemoryNotifierScheduleAndCancel(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	require.NoError(t, n.Schedule(ctx, validRequest(1)))
	require.NoError(t, n.Schedule(ctx, validRequest(2)))

	pending, err := n.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].ID)
	assert.Equal(t, 2, pending[1].ID)

	require.NoError(t, n.Cancel(ctx, []int{1}))
	pending, err = n.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].ID)
}

func TestMemoryNotifierDeny(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	denied := &SchedulingDenied{Cause: "permission revoked"}
	n.Deny(denied)
	err := n.Schedule(ctx, validRequest(1))
	assert.ErrorIs(t, err, denied)

	pending, listErr := n.ListPending(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, pending)

	// restoring permission makes scheduling work again
	n.Deny(nil)
	assert.NoError(t, n.Schedule(ctx, validRequest(1)))
}

func TestScheduleRejectsBadRequests(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	unfired := validRequest(1)
	unfired.FireAt = time.Time{}
	assert.Error(t, n.Schedule(ctx, unfired))

	untitled := validRequest(2)
	untitled.Title = ""
	assert.Error(t, n.Schedule(ctx, untitled))

	unidentified := validRequest(3)
	unidentified.ID = 0
	assert.Error(t, n.Schedule(ctx, unidentified))
}
