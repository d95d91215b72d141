package steps

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/model"
)

// Service polls Google Fit for the logged-in users and persists one sample
// per user per day. Tokens live in memory only; the device re-authorizes
// after a server restart.
type Service struct {
	fit   *FitClient
	store db.Store

	mu     sync.Mutex
	tokens map[int]*oauth2.Token
}

func NewService(fit *FitClient, store db.Store) *Service {
	return &Service{
		fit:    fit,
		store:  store,
		tokens: make(map[int]*oauth2.Token),
	}
}

// SaveToken remembers the user's Google Fit token after the OAuth flow.
func (s *Service) SaveToken(userID int, token *oauth2.Token) {
	s.mu.Lock()
	s.tokens[userID] = token
	s.mu.Unlock()
}

// Connected reports whether the user has a usable token.
func (s *Service) Connected(userID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[userID]
	return ok && token.Valid()
}

// RefreshToday polls Google Fit for the user's current daily total and
// persists it, returning the stored sample day and count.
func (s *Service) RefreshToday(ctx context.Context, userID int, now time.Time) (int, error) {
	s.mu.Lock()
	token, ok := s.tokens[userID]
	s.mu.Unlock()
	if !ok {
		return 0, ErrNotConnected
	}

	total, err := s.fit.TodaySteps(ctx, token, now)
	if err != nil {
		log.Warn().Err(err).Int("user_id", userID).Msg("google fit poll failed")
		return 0, err
	}

	day := now.Format("2006-01-02")
	if err := s.store.UpsertStepSample(userID, day, total); err != nil {
		return 0, err
	}
	return total, nil
}

// History returns up to `days` recent samples, newest first.
func (s *Service) History(userID int, days int) ([]model.StepSample, error) {
	if days <= 0 || days > 31 {
		days = 7
	}
	return s.store.ListStepSamples(userID, days)
}
