package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
)

func CreateReferral(userID int, code string) (model.Referral, error) {
	var r model.Referral
	const q = `
	INSERT INTO referrals (user_id, code, referral_count, earnings, pending_invites, created_at, updated_at)
	VALUES ($1, $2, 0, 0, 0, now(), now())
	RETURNING id, user_id, code, referral_count, earnings, pending_invites, created_at, updated_at;`
	if err := DB.Get(&r, q, userID, code); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("CreateReferral failed")
		return model.Referral{}, err
	}
	return r, nil
}

func GetReferralByUser(userID int) (*model.Referral, error) {
	var r model.Referral
	const q = `
	SELECT id, user_id, code, referral_count, earnings, pending_invites, created_at, updated_at
	  FROM referrals WHERE user_id = $1;`
	if err := DB.Get(&r, q, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Int("user_id", userID).Msg("GetReferralByUser failed")
		return nil, err
	}
	return &r, nil
}

func GetReferralByCode(code string) (*model.Referral, error) {
	var r model.Referral
	const q = `
	SELECT id, user_id, code, referral_count, earnings, pending_invites, created_at, updated_at
	  FROM referrals WHERE code = $1;`
	if err := DB.Get(&r, q, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Str("code", code).Msg("GetReferralByCode failed")
		return nil, err
	}
	return &r, nil
}

// credits one redemption against the code's owner and returns the updated
// row.
func RecordRedemption(code string, reward int) (*model.Referral, error) {
	var r model.Referral
	const q = `
	UPDATE referrals
	   SET referral_count = referral_count + 1,
	       earnings = earnings + $2,
	       updated_at = now()
	 WHERE code = $1
	RETURNING id, user_id, code, referral_count, earnings, pending_invites, created_at, updated_at;`
	if err := DB.Get(&r, q, code, reward); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Str("code", code).Msg("RecordRedemption failed")
		return nil, err
	}
	return &r, nil
}
