package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/http/api"
	"github.com/Duvar1/vakit/internal/http/api/mobile/prayer/packets"
	"github.com/Duvar1/vakit/internal/model"
	"github.com/Duvar1/vakit/internal/notify"
	"github.com/Duvar1/vakit/internal/prayer"
	"github.com/Duvar1/vakit/internal/reminder"
)

// PrayerModule mounts the daily schedule and reminder endpoints.
func PrayerModule(store db.Store, service *prayer.Service, schedulers *reminder.Registry) api.Module {
	ctl := &PrayerController{store: store, service: service, schedulers: schedulers, now: time.Now}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/prayers", ctl.getSchedule)
		c.POST("/prayers/reminders", ctl.toggleReminder)
		c.POST("/prayers/reminders/sync", ctl.syncReminders)
	})
}

type PrayerController struct {
	store      db.Store
	service    *prayer.Service
	schedulers *reminder.Registry
	now        func() time.Time
}

// city is taken from the profile; ?city= overrides for a one-off lookup.
func (p *PrayerController) city(ctx *gin.Context, user *model.User) string {
	if override := ctx.Query("city"); override != "" {
		return override
	}
	return user.City
}

// GET /api/mobile/prayers
func (p *PrayerController) getSchedule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	schedule := p.service.Schedule(ctx.Request.Context(), p.city(ctx, user), p.now())

	prefs, err := p.store.GetReminderPrefs(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load reminder settings"}
	}
	prayer.ApplyPrefs(&schedule, prefs)

	return schedule, nil
}

// POST /api/mobile/prayers/reminders
func (p *PrayerController) toggleReminder(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReminderToggleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !prayer.ReminderableSlot(request.SlotID) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "slot does not take reminders"}
	}

	// the previous setting backs both the omitted-lead default and the
	// revert on a scheduling failure
	previous := p.previousPref(user.ID, request.SlotID)

	enabled := *request.Enabled
	lead := request.LeadMinutes
	if lead == 0 {
		// omitted: keep the lead the user chose earlier
		if previous != nil {
			lead = previous.LeadMinutes
		} else {
			lead = prayer.DefaultLeadMinutes
		}
	}
	if enabled && !reminder.ValidLead(lead) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "lead minutes out of range"}
	}
	if user.DeviceID == nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "no device registered"}
	}

	schedule := p.service.Schedule(ctx.Request.Context(), p.city(ctx, user), p.now())
	slot := schedule.Slot(request.SlotID)
	if slot == nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown slot"}
	}

	if err := p.store.UpsertReminderPref(user.ID, request.SlotID, lead, enabled); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save reminder setting"}
	}

	scheduler := p.schedulers.For(user.ID, *user.DeviceID)
	response := packets.ReminderToggleResponse{SlotID: request.SlotID, Enabled: enabled, LeadMinutes: lead}

	if !enabled {
		if err := scheduler.Disable(ctx.Request.Context(), request.SlotID); err != nil {
			log.Error().Err(err).Str("slot", request.SlotID).Msg("failed to cancel reminder pair")
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not cancel reminder"}
		}
		return response, nil
	}

	ticket, err := scheduler.Enable(ctx.Request.Context(), *slot, lead)
	if err != nil {
		p.revertPref(user.ID, request.SlotID, previous)
		var denied *notify.SchedulingDenied
		if errors.As(err, &denied) {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "device rejected the alarm request"}
		}
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	response.Ticket = &ticket
	return response, nil
}

// POST /api/mobile/prayers/reminders/sync
//
// Reconciles the device with the stored prefs: cancels every alarm on the
// device, then reschedules the enabled slots. Clients call it on app start
// because scheduler state is in-memory and a backend restart loses it.
func (p *PrayerController) syncReminders(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if user.DeviceID == nil {
		return nil, &api.APIError{Code: http.StatusConflict, Message: "no device registered"}
	}

	schedule := p.service.Schedule(ctx.Request.Context(), p.city(ctx, user), p.now())
	prefs, err := p.store.GetReminderPrefs(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load reminder settings"}
	}
	prayer.ApplyPrefs(&schedule, prefs)

	scheduler := p.schedulers.For(user.ID, *user.DeviceID)
	if err := scheduler.Sync(ctx.Request.Context(), schedule); err != nil {
		var denied *notify.SchedulingDenied
		if errors.As(err, &denied) {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "device rejected the alarm request"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not sync reminders"}
	}

	tickets := scheduler.Tickets()
	return packets.ReminderSyncResponse{Synced: len(tickets), Tickets: tickets}, nil
}

func (p *PrayerController) previousPref(userID int, slotID string) *model.ReminderPref {
	prefs, err := p.store.GetReminderPrefs(userID)
	if err != nil {
		return nil
	}
	for i := range prefs {
		if prefs[i].SlotID == slotID {
			return &prefs[i]
		}
	}
	return nil
}

func (p *PrayerController) revertPref(userID int, slotID string, previous *model.ReminderPref) {
	var err error
	if previous == nil {
		err = p.store.UpsertReminderPref(userID, slotID, prayer.DefaultLeadMinutes, false)
	} else {
		err = p.store.UpsertReminderPref(userID, slotID, previous.LeadMinutes, previous.Enabled)
	}
	if err != nil {
		log.Error().Err(err).Str("slot", slotID).Int("user", userID).Msg("failed to revert reminder setting")
	}
}
