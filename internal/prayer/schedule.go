// Package prayer derives the daily prayer schedule shown to the user from
// raw timings and keeps it cached per city and calendar day.
package prayer

import (
	"strconv"
	"strings"
	"time"

	"github.com/Duvar1/vakit/internal/model"
)

// DefaultLeadMinutes is the reminder lead applied to a slot until the user
// picks their own.
const DefaultLeadMinutes = 15

// slotDef maps one canonical prayer name to its display slot.
type slotDef struct {
	Canonical string
	ID        string
	Name      string
}

// canonicalSlots is the fixed chronological order of the six daily slots.
// The sunrise slot is a marker only; reminders are never attached to it.
var canonicalSlots = []slotDef{
	{"Fajr", "imsak", "İmsak"},
	{"Sunrise", "gunes", "Güneş"},
	{"Dhuhr", "ogle", "Öğle"},
	{"Asr", "ikindi", "İkindi"},
	{"Maghrib", "aksam", "Akşam"},
	{"Isha", "yatsi", "Yatsı"},
}

// ReminderableSlot reports whether reminders may be attached to the slot.
func ReminderableSlot(slotID string) bool {
	return slotID != "gunes"
}

// parseMinutes converts "HH:MM" to minutes since midnight. Trailing
// annotations like "05:30 (+03)" are tolerated and stripped. ok is false
// for anything unparseable.
func parseMinutes(hhmm string) (int, bool) {
	if i := strings.IndexByte(hhmm, ' '); i >= 0 {
		hhmm = hhmm[:i]
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// Derive builds a DailySchedule from raw canonical-name timings. Slots
// always come out in the fixed chronological order; unrecognized keys and
// malformed times are dropped. Passed/next flags are computed against now
// at minute granularity: a slot has passed when its time is <= now, and
// the next slot is the first that has not passed. If every slot has
// passed, the next slot wraps to index 0 and RollsOver is set so the
// caller knows to fetch a fresh schedule for the following day.
func Derive(raw map[string]string, city, cityKey, dateKey string, now time.Time) model.DailySchedule {
	nowMin := now.Hour()*60 + now.Minute()

	slots := make([]model.PrayerSlot, 0, len(canonicalSlots))
	for _, def := range canonicalSlots {
		t, ok := raw[def.Canonical]
		if !ok {
			continue
		}
		min, ok := parseMinutes(t)
		if !ok {
			continue
		}
		slots = append(slots, model.PrayerSlot{
			ID:          def.ID,
			Name:        def.Name,
			Time:        t,
			LeadMinutes: DefaultLeadMinutes,
			IsPassed:    min <= nowMin,
		})
	}

	schedule := model.DailySchedule{
		DateKey: dateKey,
		CityKey: cityKey,
		City:    city,
		Date:    now.Format("02 January 2006, Monday"),
		Slots:   slots,
	}
	markNext(&schedule)
	return schedule
}

// Refresh recomputes the passed/next flags of an existing schedule against
// a new "now". Deriving twice from the same inputs yields the same result.
func Refresh(schedule *model.DailySchedule, now time.Time) {
	nowMin := now.Hour()*60 + now.Minute()
	for i := range schedule.Slots {
		min, ok := parseMinutes(schedule.Slots[i].Time)
		schedule.Slots[i].IsPassed = ok && min <= nowMin
		schedule.Slots[i].IsNext = false
	}
	markNext(schedule)
}

func markNext(schedule *model.DailySchedule) {
	schedule.NextSlotID = ""
	schedule.RollsOver = false
	if len(schedule.Slots) == 0 {
		return
	}
	next := -1
	for i := range schedule.Slots {
		if !schedule.Slots[i].IsPassed {
			next = i
			break
		}
	}
	if next == -1 {
		// everything has passed: tomorrow's first slot is next
		next = 0
		schedule.RollsOver = true
	}
	schedule.Slots[next].IsNext = true
	schedule.NextSlotID = schedule.Slots[next].ID
}

// ApplyPrefs overlays the user's persisted reminder settings onto the
// derived slots. Prefs for unknown or non-reminderable slots are ignored.
func ApplyPrefs(schedule *model.DailySchedule, prefs []model.ReminderPref) {
	byID := make(map[string]model.ReminderPref, len(prefs))
	for _, p := range prefs {
		byID[p.SlotID] = p
	}
	for i := range schedule.Slots {
		p, ok := byID[schedule.Slots[i].ID]
		if !ok || !ReminderableSlot(schedule.Slots[i].ID) {
			continue
		}
		schedule.Slots[i].ReminderEnabled = p.Enabled
		if p.LeadMinutes > 0 {
			schedule.Slots[i].LeadMinutes = p.LeadMinutes
		}
	}
}
