package packets

// body for toggling one slot's reminder
type ReminderToggleRequest struct {
	SlotID      string `json:"slot_id" binding:"required"`
	LeadMinutes int    `json:"lead_minutes"`
	Enabled     *bool  `json:"enabled" binding:"required"`
}
