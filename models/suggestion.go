package models

import "time"

// EatenFlagValue is the single value EatenFlag ever transitions to.
const EatenFlagValue = "Eaten"

// FoodSuggestion is one suggested food for one mood entry, inserted in
// batches of up to 3. EatenFlag stays NULL until the user confirms eating;
// the transition is one-way.
type FoodSuggestion struct {
	SuggestionID   uint    `gorm:"primaryKey"`
	MoodEntryID    uint    `gorm:"index;not null"`
	UserID         string  `gorm:"index;size:128;not null"`
	FoodID         string  `gorm:"size:16;not null"`
	MoodCategoryID string  `gorm:"size:8"`
	SuggestedDate  time.Time
	EatenFlag      *string `gorm:"size:16"`
}
