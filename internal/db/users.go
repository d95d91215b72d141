package db

import (
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
)

// inserts a new user into the table, returns the new user ID.
func CreateUser(email, hashedPassword string, name *string, city string) (int, error) {
	query := `
	INSERT INTO users (email, hashed_password, name, city, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING id;
	`
	var newID int
	err := DB.QueryRow(query, email, hashedPassword, name, city).Scan(&newID)
	if err != nil {
		log.Error().Err(err).Msg("failed to create user")
		return 0, err
	}
	return newID, nil
}

// fetches user by email. returns nil, sql.ErrNoRows if not found.
func GetUserByEmail(email string) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, hashed_password, name, city, device_id, is_premium, created_at, updated_at
	FROM users
	WHERE email = $1;
	`
	err := DB.Get(&u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get user by email")
		return nil, err
	}
	return &u, nil
}

// fetches a user by ID. Returns nil, sql.ErrNoRows if not found.
func GetUserByID(id int) (*model.User, error) {
	var u model.User
	query := `
	SELECT id, email, hashed_password, name, city, device_id, is_premium, created_at, updated_at
	FROM users
	WHERE id = $1;
	`
	err := DB.Get(&u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Int("user_id", id).Msg("failed to get user by id")
		return nil, err
	}
	return &u, nil
}

// updates a user's email, name and city, and bumps updated_at.
// returns an error if no rows were affected (user ID doesn't exist).
func UpdateUserProfile(id int, email string, name *string, city string) error {
	query := `
	UPDATE users
	SET email = $2,
	name = $3,
	city = $4,
	updated_at = now()
	WHERE id = $1;
	`
	res, err := DB.Exec(query, id, email, name, city)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("failed to update user profile")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		log.Error().Int("user_id", id).Msg("failed to update user profile - no such user")
		return errors.New("no such user")
	}
	return nil
}

// binds the user to the companion device whose MQTT topics carry its
// heading samples and alarm commands.
func UpdateUserDevice(id int, deviceID string) error {
	_, err := DB.Exec(`UPDATE users SET device_id = $2, updated_at = now() WHERE id = $1;`, id, deviceID)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("failed to update user device")
	}
	return err
}

func SetUserPremium(id int, premium bool) error {
	_, err := DB.Exec(`UPDATE users SET is_premium = $2, updated_at = now() WHERE id = $1;`, id, premium)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("failed to set premium flag")
	}
	return err
}
