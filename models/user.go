package models

import "time"

// User mirrors the profile document store. The sync job owns every column;
// the suggestion path only reads.
type User struct {
	UserID    string `gorm:"primaryKey;size:128"`
	Birthday  time.Time
	BloodType string  `gorm:"size:10"` // free text, e.g. "O+"
	Weight    float64 // kg
	Height    float64 // cm
	Allergies string  // comma-separated free-text names
	UpdatedAt time.Time
}
