// Package notify is the single gateway to the device's notification
// scheduler. Only the reminder scheduler talks to it, which keeps the
// notification-ID derivation invariant in one place.
package notify

import (
	"context"
	"fmt"
	"time"
)

// ChannelPrayerReminders is the Android notification channel all prayer
// alerts are delivered on.
const ChannelPrayerReminders = "prayer_reminders"

// DefaultSoundKey is the adhan alert sound shipped with the app.
const DefaultSoundKey = "alert_sound.wav"

// SchedulingDenied is returned when the device refuses to schedule an
// alarm, typically because the notification permission was revoked. The
// caller must roll the slot's enabled flag back and surface a remedy.
type SchedulingDenied struct {
	Cause string
}

func (e *SchedulingDenied) Error() string {
	return fmt.Sprintf("scheduling denied: %s", e.Cause)
}

// Request is one alarm to be scheduled on the device.
type Request struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	FireAt   time.Time `json:"fire_at"`
	SoundKey string    `json:"sound_key"`
	Channel  string    `json:"channel"`
}

// Pending is a scheduled alarm the device still holds.
type Pending struct {
	ID     int       `json:"id"`
	FireAt time.Time `json:"fire_at"`
}

// Notifier is the narrow capability over the platform alarm facility.
type Notifier interface {
	Schedule(ctx context.Context, req Request) error
	Cancel(ctx context.Context, ids []int) error
	ListPending(ctx context.Context) ([]Pending, error)
}

// validate rejects malformed requests before they cross the platform
// boundary, isolating device-side failures from caller bugs.
func validate(req Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("invalid notification id %d", req.ID)
	}
	if req.Title == "" {
		return fmt.Errorf("notification %d has no title", req.ID)
	}
	if req.FireAt.IsZero() {
		return fmt.Errorf("notification %d has no fire time", req.ID)
	}
	return nil
}
