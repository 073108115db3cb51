package models

import "time"

// Mood category codes shared by entries, suggestions and eaten feedback.
const (
	MoodHappy   = "MD01"
	MoodSad     = "MD02"
	MoodAngry   = "MD03"
	MoodNeutral = "MD04"
)

// MoodLabels translates a category code to its display name.
var MoodLabels = map[string]string{
	MoodHappy:   "Happy",
	MoodSad:     "Sad",
	MoodAngry:   "Angry",
	MoodNeutral: "Neutral",
}

// MoodEntry is one reported mood. Inserted exactly once per /save_mood
// request, never mutated afterwards.
type MoodEntry struct {
	MoodEntryID    uint   `gorm:"primaryKey"`
	UserID         string `gorm:"index;size:128;not null"`
	MoodCategoryID string `gorm:"size:8;not null"`
	MoodIntensity  int
	DateTime       time.Time `gorm:"index"`
}
