package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
)

// records the user's step total for one day, replacing an earlier poll of
// the same day.
func UpsertStepSample(userID int, day string, steps int) error {
	const q = `
	INSERT INTO step_samples (user_id, day, steps, recorded_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (user_id, day)
	DO UPDATE SET steps = EXCLUDED.steps, recorded_at = now();`
	if _, err := DB.Exec(q, userID, day, steps); err != nil {
		log.Error().Err(err).Int("user_id", userID).Str("day", day).Msg("UpsertStepSample failed")
		return err
	}
	return nil
}

// returns up to the last `days` samples, newest first.
func ListStepSamples(userID int, days int) ([]model.StepSample, error) {
	var out []model.StepSample
	const q = `
	SELECT id, user_id, day, steps, recorded_at
	  FROM step_samples
	 WHERE user_id = $1
	 ORDER BY day DESC
	 LIMIT $2;`
	if err := DB.Select(&out, q, userID, days); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("ListStepSamples failed")
		return nil, err
	}
	return out, nil
}
