// Package referral owns the invite codes and the premium unlock counters.
package referral

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/model"
)

const (
	// CodeLength is the shareable code size shown to users.
	CodeLength = 6

	// DefaultReward is the points credited per successful redemption.
	DefaultReward = 10

	// DefaultPremiumThreshold unlocks premium once this many invites land.
	DefaultPremiumThreshold = 5
)

var (
	ErrCodeNotFound = errors.New("referral code not found")
	ErrSelfReferral = errors.New("cannot redeem your own referral code")
)

// Service wraps the store with code generation and redemption rules.
type Service struct {
	store            db.Store
	reward           int
	premiumThreshold int
}

func NewService(store db.Store, reward, premiumThreshold int) *Service {
	if reward <= 0 {
		reward = DefaultReward
	}
	if premiumThreshold <= 0 {
		premiumThreshold = DefaultPremiumThreshold
	}
	return &Service{store: store, reward: reward, premiumThreshold: premiumThreshold}
}

// GenerateCode derives a 6-character uppercase code from a fresh UUID.
// Hex characters only, which keeps the code unambiguous to read aloud.
func GenerateCode() string {
	id := uuid.New()
	return strings.ToUpper(id.String()[:CodeLength])
}

// EnsureReferral returns the user's referral row, creating it with a fresh
// code on first access. A code collision on insert retries with a new
// UUID.
func (s *Service) EnsureReferral(userID int) (*model.Referral, error) {
	existing, err := s.store.GetReferralByUser(userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	for attempt := 0; attempt < 3; attempt++ {
		r, err := s.store.CreateReferral(userID, GenerateCode())
		if err == nil {
			log.Info().Int("user_id", userID).Str("code", r.Code).Msg("referral code created")
			return &r, nil
		}
		log.Warn().Err(err).Int("user_id", userID).Msg("referral create failed, retrying with new code")
	}
	return nil, fmt.Errorf("could not create referral for user %d", userID)
}

// Redeem credits the code's owner with one invite and the configured
// reward, then flips the owner to premium once the threshold is reached.
// The redeeming user may not use their own code.
func (s *Service) Redeem(code string, redeemingUserID int) (*model.Referral, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	owner, err := s.store.GetReferralByCode(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCodeNotFound
		}
		return nil, err
	}
	if owner.UserID == redeemingUserID {
		return nil, ErrSelfReferral
	}

	updated, err := s.store.RecordRedemption(code, s.reward)
	if err != nil {
		return nil, err
	}

	if updated.ReferralCount >= s.premiumThreshold {
		if err := s.store.SetUserPremium(updated.UserID, true); err != nil {
			log.Error().Err(err).Int("user_id", updated.UserID).Msg("failed to unlock premium")
		} else {
			log.Info().Int("user_id", updated.UserID).Int("count", updated.ReferralCount).Msg("premium unlocked via referrals")
		}
	}
	return updated, nil
}

// Reward exposes the configured per-redemption reward.
func (s *Service) Reward() int { return s.reward }
