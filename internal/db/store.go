// exposes a Store interface that is passed to API controllers
package db

import (
	"github.com/Duvar1/vakit/internal/model"
	"github.com/jmoiron/sqlx"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string, city string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string, city string) error
	UpdateUserDevice(id int, deviceID string) error
	SetUserPremium(id int, premium bool) error

	// reminder preferences
	UpsertReminderPref(userID int, slotID string, leadMinutes int, enabled bool) error
	GetReminderPrefs(userID int) ([]model.ReminderPref, error)

	// quran bookmarks
	CreateBookmark(userID, surah, ayah int, note *string) (model.Bookmark, error)
	ListBookmarks(userID int) ([]model.Bookmark, error)
	DeleteBookmark(userID, bookmarkID int) error

	// referrals
	CreateReferral(userID int, code string) (model.Referral, error)
	GetReferralByUser(userID int) (*model.Referral, error)
	GetReferralByCode(code string) (*model.Referral, error)
	RecordRedemption(code string, reward int) (*model.Referral, error)

	// steps
	UpsertStepSample(userID int, day string, steps int) error
	ListStepSamples(userID int, days int) ([]model.StepSample, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(database *sqlx.DB) Store {
	if database == nil {
		database = DB
	}
	return &pgStore{db: database}
}

func (s *pgStore) CreateUser(email, hashedPassword string, name *string, city string) (int, error) {
	return CreateUser(email, hashedPassword, name, city)
}
func (s *pgStore) GetUserByEmail(email string) (*model.User, error) { return GetUserByEmail(email) }
func (s *pgStore) GetUserByID(id int) (*model.User, error)         { return GetUserByID(id) }
func (s *pgStore) UpdateUserProfile(id int, email string, name *string, city string) error {
	return UpdateUserProfile(id, email, name, city)
}
func (s *pgStore) UpdateUserDevice(id int, deviceID string) error { return UpdateUserDevice(id, deviceID) }
func (s *pgStore) SetUserPremium(id int, premium bool) error      { return SetUserPremium(id, premium) }

func (s *pgStore) UpsertReminderPref(userID int, slotID string, leadMinutes int, enabled bool) error {
	return UpsertReminderPref(userID, slotID, leadMinutes, enabled)
}
func (s *pgStore) GetReminderPrefs(userID int) ([]model.ReminderPref, error) {
	return GetReminderPrefs(userID)
}

func (s *pgStore) CreateBookmark(userID, surah, ayah int, note *string) (model.Bookmark, error) {
	return CreateBookmark(userID, surah, ayah, note)
}
func (s *pgStore) ListBookmarks(userID int) ([]model.Bookmark, error) { return ListBookmarks(userID) }
func (s *pgStore) DeleteBookmark(userID, bookmarkID int) error {
	return DeleteBookmark(userID, bookmarkID)
}

func (s *pgStore) CreateReferral(userID int, code string) (model.Referral, error) {
	return CreateReferral(userID, code)
}
func (s *pgStore) GetReferralByUser(userID int) (*model.Referral, error) {
	return GetReferralByUser(userID)
}
func (s *pgStore) GetReferralByCode(code string) (*model.Referral, error) {
	return GetReferralByCode(code)
}
func (s *pgStore) RecordRedemption(code string, reward int) (*model.Referral, error) {
	return RecordRedemption(code, reward)
}

func (s *pgStore) UpsertStepSample(userID int, day string, steps int) error {
	return UpsertStepSample(userID, day, steps)
}
func (s *pgStore) ListStepSamples(userID int, days int) ([]model.StepSample, error) {
	return ListStepSamples(userID, days)
}
