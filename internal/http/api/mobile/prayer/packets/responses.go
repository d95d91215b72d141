package packets

import "github.com/Duvar1/vakit/internal/model"

type ReminderToggleResponse struct {
	SlotID      string                `json:"slot_id"`
	Enabled     bool                  `json:"enabled"`
	LeadMinutes int                   `json:"lead_minutes"`
	Ticket      *model.ReminderTicket `json:"ticket,omitempty"`
}

type ReminderSyncResponse struct {
	Synced  int                    `json:"synced"`
	Tickets []model.ReminderTicket `json:"tickets"`
}
