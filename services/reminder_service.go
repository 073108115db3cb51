package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmailSender is the notification sink. utils.SESMailer is the production
// implementation; tests substitute a recorder.
type EmailSender interface {
	SendReminder(to string) error
}

// ReminderService claims and dispatches due notifications on a fixed poll
// interval. Delivery is at-most-once per occurrence: the conditional claim
// update is the only concurrency guard, and a failed send is never retried.
type ReminderService struct {
	db       *gorm.DB
	sender   EmailSender
	interval time.Duration
}

func NewReminderService(db *gorm.DB, sender EmailSender, interval time.Duration) *ReminderService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderService{db: db, sender: sender, interval: interval}
}

// Start blocks, polling every interval until ctx is cancelled. A failing or
// panicking cycle is logged and the loop carries on at the next tick.
func (s *ReminderService) Start(ctx context.Context) {
	logger.Info("reminder scheduler started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *ReminderService) tick() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("reminder poll panicked", zap.Any("panic", r))
		}
	}()
	if err := s.ProcessDue(time.Now()); err != nil {
		logger.Error("reminder poll failed", zap.Error(err))
	}
}

// ProcessDue handles every notification due at now, each independently:
// one failed row does not block the rest of the batch.
func (s *ReminderService) ProcessDue(now time.Time) error {
	var due []models.Notification
	if err := s.db.
		Where("sent_flag = ? AND remind_time <= ?", false, now).
		Find(&due).Error; err != nil {
		return fmt.Errorf("%w: load due notifications: %v", utils.ErrStore, err)
	}

	for _, notif := range due {
		if err := s.dispatch(notif); err != nil {
			logger.Error("notification dispatch failed",
				zap.Uint("notification_id", notif.NotificationID),
				zap.Error(err))
		}
	}
	return nil
}

// dispatch claims, sends and (for recurring reminders) reschedules one
// notification on a single transaction. Exactly one concurrent poller wins
// the claim because only one conditional update can report a changed row.
func (s *ReminderService) dispatch(notif models.Notification) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Notification{}).
			Where("notification_id = ? AND sent_flag = ?", notif.NotificationID, false).
			Update("sent_flag", true)
		if res.Error != nil {
			return fmt.Errorf("%w: claim notification: %v", utils.ErrStore, res.Error)
		}
		if res.RowsAffected == 0 {
			// Another poller claimed it first.
			return nil
		}

		// At-most-once: a send failure is logged, the claim stands.
		if err := s.sender.SendReminder(notif.Email); err != nil {
			logger.Error("reminder email failed",
				zap.String("email", notif.Email),
				zap.Error(err))
		} else {
			logger.Info("reminder email sent", zap.String("email", notif.Email))
		}

		next, ok := NextRemindTime(notif.RemindTime, notif.Frequency)
		if !ok {
			return nil
		}
		follow := models.Notification{
			Email:      notif.Email,
			RemindTime: next,
			CreatedAt:  time.Now(),
			SentFlag:   false,
			Frequency:  notif.Frequency,
		}
		if err := tx.Create(&follow).Error; err != nil {
			return fmt.Errorf("%w: schedule next occurrence: %v", utils.ErrStore, err)
		}
		return nil
	})
}

// NextRemindTime computes the follow-up due time from the ORIGINAL due time
// (not from the moment of dispatch). ok is false for "once" and unknown
// frequencies.
func NextRemindTime(oldTime time.Time, freq string) (time.Time, bool) {
	switch freq {
	case models.FreqDaily:
		return oldTime.AddDate(0, 0, 1), true
	case models.Freq3Days:
		return oldTime.AddDate(0, 0, 3), true
	case models.Freq5Days:
		return oldTime.AddDate(0, 0, 5), true
	case models.FreqWeekly:
		return oldTime.AddDate(0, 0, 7), true
	case models.FreqMonthly:
		// naive month: ~30 days
		return oldTime.AddDate(0, 0, 30), true
	default:
		return time.Time{}, false
	}
}
