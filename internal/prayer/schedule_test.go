package prayer

import (
	"testing"
	"time"

	"github.com/Duvar1/vakit/internal/model"
)

var sampleRaw = map[string]string{
	"Fajr":    "05:30",
	"Sunrise": "07:00",
	"Dhuhr":   "12:45",
	"Asr":     "15:50",
	"Maghrib": "18:20",
	"Isha":    "19:45",
}

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 28, hour, min, 0, 0, time.Local)
}

func TestDeriveMidday(t *testing.T) {
	s := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", at(13, 0))

	wantOrder := []string{"imsak", "gunes", "ogle", "ikindi", "aksam", "yatsi"}
	if len(s.Slots) != len(wantOrder) {
		t.Fatalf("got %d slots, want %d", len(s.Slots), len(wantOrder))
	}
	for i, id := range wantOrder {
		if s.Slots[i].ID != id {
			t.Errorf("slot[%d] = %s, want %s", i, s.Slots[i].ID, id)
		}
	}

	wantPassed := map[string]bool{
		"imsak": true, "gunes": true, "ogle": true,
		"ikindi": false, "aksam": false, "yatsi": false,
	}
	for _, slot := range s.Slots {
		if slot.IsPassed != wantPassed[slot.ID] {
			t.Errorf("slot %s passed = %v, want %v", slot.ID, slot.IsPassed, wantPassed[slot.ID])
		}
	}

	if s.NextSlotID != "ikindi" {
		t.Errorf("next = %q, want ikindi", s.NextSlotID)
	}
	if s.RollsOver {
		t.Error("schedule should not roll over at midday")
	}
}

func TestDeriveIdempotent(t *testing.T) {
	now := at(13, 0)
	first := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", now)
	second := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", now)
	if first.NextSlotID != second.NextSlotID {
		t.Errorf("next differs between identical derivations: %q vs %q", first.NextSlotID, second.NextSlotID)
	}
	if len(first.Slots) != len(second.Slots) {
		t.Fatalf("slot count differs: %d vs %d", len(first.Slots), len(second.Slots))
	}
	for i := range first.Slots {
		if first.Slots[i] != second.Slots[i] {
			t.Errorf("slot[%d] differs: %+v vs %+v", i, first.Slots[i], second.Slots[i])
		}
	}
}

func TestDeriveAllPassedRollsOver(t *testing.T) {
	s := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", at(23, 30))
	if s.NextSlotID != "imsak" {
		t.Errorf("next = %q, want first slot imsak after day rollover", s.NextSlotID)
	}
	if !s.RollsOver {
		t.Error("RollsOver should be set when every slot has passed")
	}
	if !s.Slots[0].IsNext {
		t.Error("first slot should carry the next flag")
	}
}

func TestDeriveExactMinuteCountsAsPassed(t *testing.T) {
	s := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", at(12, 45))
	ogle := s.Slot("ogle")
	if ogle == nil || !ogle.IsPassed {
		t.Error("a slot at exactly now must count as passed")
	}
	if s.NextSlotID != "ikindi" {
		t.Errorf("next = %q, want ikindi", s.NextSlotID)
	}
}

func TestDeriveDropsUnknownAndMalformed(t *testing.T) {
	raw := map[string]string{
		"Fajr":     "05:30",
		"Midnight": "00:07", // not a display slot
		"Imsak":    "05:20", // aladhan extra, not canonical
		"Dhuhr":    "broken",
		"Isha":     "19:45",
	}
	s := Derive(raw, "İstanbul", "istanbul", "2026-08-28", at(6, 0))
	if len(s.Slots) != 2 {
		t.Fatalf("got %d slots, want 2 (imsak, yatsi)", len(s.Slots))
	}
	if s.Slots[0].ID != "imsak" || s.Slots[1].ID != "yatsi" {
		t.Errorf("unexpected slots: %v, %v", s.Slots[0].ID, s.Slots[1].ID)
	}
}

func TestDeriveToleratesTimezoneSuffix(t *testing.T) {
	raw := map[string]string{"Fajr": "05:30 (+03)"}
	s := Derive(raw, "İstanbul", "istanbul", "2026-08-28", at(6, 0))
	if len(s.Slots) != 1 || !s.Slots[0].IsPassed {
		t.Fatalf("suffixed time not parsed: %+v", s.Slots)
	}
}

func TestRefreshMovesNextForward(t *testing.T) {
	s := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", at(6, 0))
	if s.NextSlotID != "gunes" {
		t.Fatalf("next at 06:00 = %q, want gunes", s.NextSlotID)
	}
	Refresh(&s, at(16, 0))
	if s.NextSlotID != "aksam" {
		t.Errorf("next after refresh at 16:00 = %q, want aksam", s.NextSlotID)
	}
}

func TestApplyPrefs(t *testing.T) {
	s := Derive(sampleRaw, "İstanbul", "istanbul", "2026-08-28", at(6, 0))
	ApplyPrefs(&s, []model.ReminderPref{
		{SlotID: "ikindi", Enabled: true, LeadMinutes: 30},
		{SlotID: "gunes", Enabled: true, LeadMinutes: 10}, // sunrise marker, ignored
		{SlotID: "nosuch", Enabled: true, LeadMinutes: 5},
	})

	ikindi := s.Slot("ikindi")
	if !ikindi.ReminderEnabled || ikindi.LeadMinutes != 30 {
		t.Errorf("ikindi pref not applied: %+v", ikindi)
	}
	if s.Slot("gunes").ReminderEnabled {
		t.Error("sunrise slot must never carry a reminder")
	}
}
