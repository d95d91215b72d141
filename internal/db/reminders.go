package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
)

// writes the user's reminder setting for one slot, replacing any previous
// row for that (user, slot) pair.
func UpsertReminderPref(userID int, slotID string, leadMinutes int, enabled bool) error {
	const q = `
	INSERT INTO reminder_prefs (user_id, slot_id, lead_minutes, enabled, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	ON CONFLICT (user_id, slot_id)
	DO UPDATE SET lead_minutes = EXCLUDED.lead_minutes,
	              enabled = EXCLUDED.enabled,
	              updated_at = now();`
	if _, err := DB.Exec(q, userID, slotID, leadMinutes, enabled); err != nil {
		log.Error().Err(err).Int("user_id", userID).Str("slot_id", slotID).Msg("UpsertReminderPref failed")
		return err
	}
	return nil
}

func GetReminderPrefs(userID int) ([]model.ReminderPref, error) {
	var out []model.ReminderPref
	const q = `
	SELECT id, user_id, slot_id, lead_minutes, enabled, created_at, updated_at
	  FROM reminder_prefs
	 WHERE user_id = $1
	 ORDER BY slot_id;`
	if err := DB.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("GetReminderPrefs failed")
		return nil, err
	}
	return out, nil
}
