package models

import "time"

// UserEaten records post-meal feedback. FeelBetter normally holds a mood
// category code (MD01..MD04); older rows may carry "Better"/"Same"/"Worse"
// or the legacy numeric strings "1"/"0"/"-1", which the report tolerates.
type UserEaten struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        string `gorm:"index;size:128;not null"`
	FoodID        string `gorm:"size:16;not null"`
	EatenDateTime time.Time `gorm:"index"`
	FeelBetter    string `gorm:"size:16"`
}

// TableName keeps the historical table name from the original schema.
func (UserEaten) TableName() string { return "user_eaten" }
