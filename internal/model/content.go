package model

// Dua is one entry of the daily supplication rotation.
type Dua struct {
	Title   string `json:"title"`
	Arabic  string `json:"arabic"`
	Turkish string `json:"turkish"`
	Source  string `json:"source"`
}

// Hadith is one entry of the daily hadith rotation.
type Hadith struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// DailyContent bundles the content cards shown on the home page for one day.
type DailyContent struct {
	DayOfYear int    `json:"day_of_year"`
	Dua       Dua    `json:"dua"`
	Hadith    Hadith `json:"hadith"`
	Verse     *Verse `json:"verse,omitempty"`
}
