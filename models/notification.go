package models

import "time"

// Reminder recurrence frequencies.
const (
	FreqOnce    = "once"
	FreqDaily   = "daily"
	Freq3Days   = "3days"
	Freq5Days   = "5days"
	FreqWeekly  = "weekly"
	FreqMonthly = "monthly"
)

// Notification is one scheduled reminder occurrence. SentFlag transitions
// exactly once from false to true (the claim); recurring reminders get a
// fresh row per occurrence instead of resetting the flag.
type Notification struct {
	NotificationID uint   `gorm:"primaryKey"`
	Email          string `gorm:"size:255;not null"`
	RemindTime     time.Time `gorm:"index"`
	CreatedAt      time.Time
	SentFlag       bool   `gorm:"index;default:false"`
	Frequency      string `gorm:"size:16;default:once"`
}
