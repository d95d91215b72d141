package model

import "time"

// Verse is a single ayah with its Turkish translation.
type Verse struct {
	Arabic    string `json:"arabic"`
	Turkish   string `json:"turkish"`
	Reference string `json:"reference"`
	Source    string `json:"source"`
}

type Bookmark struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Surah     int       `db:"surah" json:"surah"`
	Ayah      int       `db:"ayah" json:"ayah"`
	Note      *string   `db:"note" json:"note"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
