// Package reminder schedules the lead and exact-time alerts for enabled
// prayer slots and owns their notification-ID lifecycle.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/notify"
	"github.com/Duvar1/vakit/internal/prayer"
)

const (
	// MinLeadMinutes..MaxLeadMinutes in LeadStepMinutes increments are the
	// only lead times the UI offers.
	MinLeadMinutes  = 5
	MaxLeadMinutes  = 45
	LeadStepMinutes = 5
)

// ValidLead reports whether a lead-minutes value is one the UI offers.
func ValidLead(minutes int) bool {
	return minutes >= MinLeadMinutes && minutes <= MaxLeadMinutes && minutes%LeadStepMinutes == 0
}

// Scheduler is the only component allowed to create or cancel device
// alarms. Per slot it moves Disabled -> Scheduled -> (Fired) -> Disabled;
// a ticket exists exactly while the slot is scheduled.
//
// Tickets live in memory and do not survive a restart. Until Sync runs,
// a fresh process reports no scheduled slots regardless of what the
// device still holds; Sync cancels everything on the device and
// reschedules from the stored prefs, which closes that window.
type Scheduler struct {
	notifier notify.Notifier
	now      func() time.Time
	soundKey string

	mu      sync.Mutex
	tickets map[string]model.ReminderTicket
	owners  map[int]string // handle -> slotID, collision guard
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithSoundKey overrides the alert sound.
func WithSoundKey(key string) Option {
	return func(s *Scheduler) { s.soundKey = key }
}

func NewScheduler(notifier notify.Notifier, opts ...Option) *Scheduler {
	s := &Scheduler{
		notifier: notifier,
		now:      time.Now,
		soundKey: notify.DefaultSoundKey,
		tickets:  make(map[string]model.ReminderTicket),
		owners:   make(map[int]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enable schedules the lead+exact pair for a slot. Any existing pair for
// the slot is cancelled first, so changing the lead time never leaves more
// than two pending alarms per slot. The pair is issued both-or-neither:
// if the exact alert cannot be scheduled the lead alert is rolled back and
// the error is returned for the caller to revert the enabled flag.
func (s *Scheduler) Enable(ctx context.Context, slot model.PrayerSlot, leadMinutes int) (model.ReminderTicket, error) {
	if !ValidLead(leadMinutes) {
		return model.ReminderTicket{}, fmt.Errorf("lead minutes %d out of range [%d,%d] step %d",
			leadMinutes, MinLeadMinutes, MaxLeadMinutes, LeadStepMinutes)
	}
	if !prayer.ReminderableSlot(slot.ID) {
		return model.ReminderTicket{}, fmt.Errorf("slot %s does not take reminders", slot.ID)
	}

	exactAt, err := s.nextOccurrence(slot.Time)
	if err != nil {
		return model.ReminderTicket{}, fmt.Errorf("slot %s: %w", slot.ID, err)
	}
	leadAt := exactAt.Add(-time.Duration(leadMinutes) * time.Minute)

	s.mu.Lock()
	defer s.mu.Unlock()

	// replace any previous pair before creating the new one
	if err := s.cancelLocked(ctx, slot.ID); err != nil {
		return model.ReminderTicket{}, err
	}

	leadHandle, err := s.claimHandleLocked(slot.ID, KindLead)
	if err != nil {
		return model.ReminderTicket{}, err
	}
	exactHandle, err := s.claimHandleLocked(slot.ID, KindExact)
	if err != nil {
		s.releaseHandleLocked(leadHandle)
		return model.ReminderTicket{}, err
	}

	leadReq := notify.Request{
		ID:       leadHandle,
		Title:    fmt.Sprintf("⏰ %s Vakti Yaklaşıyor", slot.Name),
		Body:     fmt.Sprintf("%d dakika sonra %s vakti", leadMinutes, slot.Name),
		FireAt:   leadAt,
		SoundKey: s.soundKey,
		Channel:  notify.ChannelPrayerReminders,
	}
	exactReq := notify.Request{
		ID:       exactHandle,
		Title:    fmt.Sprintf("🕌 %s Vakti", slot.Name),
		Body:     fmt.Sprintf("%s vakti girdi", slot.Name),
		FireAt:   exactAt,
		SoundKey: s.soundKey,
		Channel:  notify.ChannelPrayerReminders,
	}

	if err := s.notifier.Schedule(ctx, leadReq); err != nil {
		s.releaseHandleLocked(leadHandle)
		s.releaseHandleLocked(exactHandle)
		return model.ReminderTicket{}, err
	}
	if err := s.notifier.Schedule(ctx, exactReq); err != nil {
		// both-or-neither: undo the half-scheduled pair
		if cancelErr := s.notifier.Cancel(ctx, []int{leadHandle}); cancelErr != nil {
			log.Error().Err(cancelErr).Str("slot", slot.ID).Msg("failed to roll back lead alert")
		}
		s.releaseHandleLocked(leadHandle)
		s.releaseHandleLocked(exactHandle)
		return model.ReminderTicket{}, err
	}

	ticket := model.ReminderTicket{
		SlotID:      slot.ID,
		LeadFireAt:  leadAt,
		ExactFireAt: exactAt,
		LeadHandle:  leadHandle,
		ExactHandle: exactHandle,
	}
	s.tickets[slot.ID] = ticket

	log.Info().
		Str("slot", slot.ID).
		Int("lead_minutes", leadMinutes).
		Time("exact_at", exactAt).
		Msg("reminder scheduled")
	return ticket, nil
}

// Disable cancels the slot's pair. Disabling a slot that has no ticket is
// a no-op.
func (s *Scheduler) Disable(ctx context.Context, slotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(ctx, slotID)
}

// Sync rebuilds every ticket against a freshly fetched schedule: all
// previously scheduled alarms are purged first, so a day rollover can
// never leave stale cross-day alarms behind, then a new pair is derived
// for each slot still marked enabled.
func (s *Scheduler) Sync(ctx context.Context, schedule model.DailySchedule) error {
	if err := s.CancelAll(ctx); err != nil {
		return err
	}
	var firstErr error
	for _, slot := range schedule.Slots {
		if !slot.ReminderEnabled || !prayer.ReminderableSlot(slot.ID) {
			continue
		}
		if _, err := s.Enable(ctx, slot, slot.LeadMinutes); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sync slot %s: %w", slot.ID, err)
		}
	}
	return firstErr
}

// CancelAll purges every ticket and its device alarms.
func (s *Scheduler) CancelAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for slotID := range s.tickets {
		if err := s.cancelLocked(ctx, slotID); err != nil {
			return err
		}
	}
	return nil
}

// Ticket returns the live ticket for a slot, if any.
func (s *Scheduler) Ticket(slotID string) (model.ReminderTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[slotID]
	return t, ok
}

// Tickets returns all live tickets.
func (s *Scheduler) Tickets() []model.ReminderTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ReminderTicket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	return out
}

func (s *Scheduler) cancelLocked(ctx context.Context, slotID string) error {
	ticket, ok := s.tickets[slotID]
	if !ok {
		return nil
	}
	if err := s.notifier.Cancel(ctx, []int{ticket.LeadHandle, ticket.ExactHandle}); err != nil {
		return fmt.Errorf("cancel slot %s: %w", slotID, err)
	}
	s.releaseHandleLocked(ticket.LeadHandle)
	s.releaseHandleLocked(ticket.ExactHandle)
	delete(s.tickets, slotID)
	log.Info().Str("slot", slotID).Msg("reminder cancelled")
	return nil
}

// claimHandleLocked registers the derived handle for the slot. A handle
// already owned by a different slot means an FNV collision; the claim is
// refused rather than silently aliasing another slot's alarms.
func (s *Scheduler) claimHandleLocked(slotID, kind string) (int, error) {
	handle := handleFor(slotID, kind)
	if owner, taken := s.owners[handle]; taken && owner != slotID {
		return 0, fmt.Errorf("notification id %d for slot %s collides with slot %s", handle, slotID, owner)
	}
	s.owners[handle] = slotID
	return handle, nil
}

func (s *Scheduler) releaseHandleLocked(handle int) {
	delete(s.owners, handle)
}

// nextOccurrence resolves "HH:MM" to the next wall-clock moment it names:
// today if still ahead, otherwise tomorrow.
func (s *Scheduler) nextOccurrence(hhmm string) (time.Time, error) {
	if i := strings.IndexByte(hhmm, ' '); i >= 0 {
		// tolerate "05:30 (+03)" style annotations from the timings API
		hhmm = hhmm[:i]
	}
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q: %w", hhmm, err)
	}
	now := s.now()
	at := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at, nil
}
