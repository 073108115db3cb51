package controllers

import (
	"net/http"
	"time"

	"github.com/ThanapatNon/FOODMOOD/config"
	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /schedule_reminder
// Inserts a pending notification picked up by the reminder scheduler.
func ScheduleReminder(c *gin.Context) {
	var body struct {
		Email        string `json:"email"`
		ReminderDate string `json:"reminderDate"` // "2006-01-02T15:04" local
		Frequency    string `json:"frequency"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}
	if body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing email"})
		return
	}
	if body.ReminderDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing reminderDate"})
		return
	}

	remindTime, err := parseLocalDateTime(body.ReminderDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid reminderDate"})
		return
	}

	freq := body.Frequency
	if freq == "" {
		freq = models.FreqOnce
	}

	notif := models.Notification{
		Email:      body.Email,
		RemindTime: remindTime,
		CreatedAt:  time.Now(),
		SentFlag:   false,
		Frequency:  freq,
	}
	if err := config.DB.Create(&notif).Error; err != nil {
		logger.Error("notification insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "insert failed"})
		return
	}

	logger.Info("reminder scheduled",
		zap.String("email", body.Email),
		zap.Time("remind_time", remindTime),
		zap.String("frequency", freq))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parseLocalDateTime accepts the client's ISO local datetime, with or
// without seconds.
func parseLocalDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", s, time.Local)
}
