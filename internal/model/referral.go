package model

import "time"

// Referral is the per-user invite state: a shareable code plus simple
// counters. Earnings are abstract reward points, not currency.
type Referral struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"user_id"`
	Code           string    `db:"code" json:"code"`
	ReferralCount  int       `db:"referral_count" json:"referral_count"`
	Earnings       int       `db:"earnings" json:"earnings"`
	PendingInvites int       `db:"pending_invites" json:"pending_invites"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
