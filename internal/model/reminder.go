package model

import "time"

// ReminderTicket tracks the pair of OS alarms backing one enabled slot:
// a lead alert some minutes before the prayer and an exact-time alert.
// Handles are the deterministic notification IDs issued to the device;
// two tickets never share a handle.
type ReminderTicket struct {
	SlotID      string    `json:"slot_id"`
	LeadFireAt  time.Time `json:"lead_fire_at"`
	ExactFireAt time.Time `json:"exact_fire_at"`
	LeadHandle  int       `json:"lead_handle"`
	ExactHandle int       `json:"exact_handle"`
}

// ReminderPref is the persisted per-user reminder setting for one slot.
type ReminderPref struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	SlotID      string    `db:"slot_id" json:"slot_id"`
	LeadMinutes int       `db:"lead_minutes" json:"lead_minutes"`
	Enabled     bool      `db:"enabled" json:"enabled"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
