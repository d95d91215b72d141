package model

// PrayerSlot is one of the six daily prayer entries shown to the user.
// ID is stable per prayer kind (imsak, gunes, ogle, ikindi, aksam, yatsi);
// Time is wall-clock "HH:MM" with no date component.
type PrayerSlot struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Time            string `json:"time"`
	LeadMinutes     int    `json:"lead_minutes"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	IsPassed        bool   `json:"is_passed"`
	IsNext          bool   `json:"is_next"`
}

// DailySchedule holds the derived schedule for one (city, calendar day) pair.
// NextSlotID is recomputed on every read and never persisted. RollsOver is
// set when every slot has passed and NextSlotID wrapped to the first slot of
// the following day; callers should re-fetch a fresh schedule at that point.
type DailySchedule struct {
	DateKey    string       `json:"date_key"`
	CityKey    string       `json:"city_key"`
	City       string       `json:"city"`
	Date       string       `json:"date"`
	Slots      []PrayerSlot `json:"slots"`
	NextSlotID string       `json:"next_slot_id,omitempty"`
	RollsOver  bool         `json:"rolls_over"`
	Source     string       `json:"source"`
}

// Slot returns the slot with the given ID, or nil.
func (s *DailySchedule) Slot(id string) *PrayerSlot {
	for i := range s.Slots {
		if s.Slots[i].ID == id {
			return &s.Slots[i]
		}
	}
	return nil
}
