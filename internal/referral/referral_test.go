package referral

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Duvar1/vakit/internal/db"
	"github.com/Duvar1/vakit/internal/model"
)

// fakeStore keeps referrals in memory; unimplemented Store methods panic.
type fakeStore struct {
	db.Store

	byUser  map[int]*model.Referral
	byCode  map[string]*model.Referral
	premium map[int]bool
	nextID  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		byUser:  make(map[int]*model.Referral),
		byCode:  make(map[string]*model.Referral),
		premium: make(map[int]bool),
	}
}

func (f *fakeStore) GetReferralByUser(userID int) (*model.Referral, error) {
	if r, ok := f.byUser[userID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) GetReferralByCode(code string) (*model.Referral, error) {
	if r, ok := f.byCode[code]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) CreateReferral(userID int, code string) (model.Referral, error) {
	f.nextID++
	r := &model.Referral{ID: f.nextID, UserID: userID, Code: code}
	f.byUser[userID] = r
	f.byCode[code] = r
	return *r, nil
}

func (f *fakeStore) RecordRedemption(code string, reward int) (*model.Referral, error) {
	r, ok := f.byCode[code]
	if !ok {
		return nil, sql.ErrNoRows
	}
	r.ReferralCount++
	r.Earnings += reward
	copied := *r
	return &copied, nil
}

func (f *fakeStore) SetUserPremium(id int, premium bool) error {
	f.premium[id] = premium
	return nil
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode()
	assert.Len(t, code, CodeLength)
	assert.Equal(t, strings.ToUpper(code), code)
	assert.NotEqual(t, code, GenerateCode())
}

func TestEnsureReferralCreatesOnce(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, DefaultReward, DefaultPremiumThreshold)

	first, err := svc.EnsureReferral(7)
	require.NoError(t, err)
	assert.Equal(t, 7, first.UserID)
	assert.Len(t, first.Code, CodeLength)

	second, err := svc.EnsureReferral(7)
	require.NoError(t, err)
	assert.Equal(t, first.Code, second.Code)
}

func TestRedeemCreditsOwner(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, DefaultReward, DefaultPremiumThreshold)

	owner, err := svc.EnsureReferral(1)
	require.NoError(t, err)

	updated, err := svc.Redeem(owner.Code, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ReferralCount)
	assert.Equal(t, DefaultReward, updated.Earnings)
	assert.False(t, store.premium[1])
}

func TestRedeemCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, DefaultReward, DefaultPremiumThreshold)

	owner, err := svc.EnsureReferral(1)
	require.NoError(t, err)

	_, err = svc.Redeem("  "+strings.ToLower(owner.Code)+" ", 2)
	assert.NoError(t, err)
}

func TestRedeemUnknownCode(t *testing.T) {
	svc := NewService(newFakeStore(), DefaultReward, DefaultPremiumThreshold)
	_, err := svc.Redeem("NOPE99", 2)
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestRedeemOwnCode(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, DefaultReward, DefaultPremiumThreshold)

	owner, err := svc.EnsureReferral(1)
	require.NoError(t, err)

	_, err = svc.Redeem(owner.Code, 1)
	assert.ErrorIs(t, err, ErrSelfReferral)
}

func TestPremiumUnlockedAtThreshold(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, DefaultReward, 2)

	owner, err := svc.EnsureReferral(1)
	require.NoError(t, err)

	_, err = svc.Redeem(owner.Code, 2)
	require.NoError(t, err)
	assert.False(t, store.premium[1])

	_, err = svc.Redeem(owner.Code, 3)
	require.NoError(t, err)
	assert.True(t, store.premium[1])
}
