package model

import "time"

type User struct {
	ID             int       `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Name           *string   `db:"name" json:"name"`
	City           string    `db:"city" json:"city"`
	DeviceID       *string   `db:"device_id" json:"device_id"`
	IsPremium      bool      `db:"is_premium" json:"is_premium"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
