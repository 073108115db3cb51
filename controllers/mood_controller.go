package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/ThanapatNon/FOODMOOD/config"
	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// POST /save_mood
// Creates the mood entry and generates suggestions on the same transaction.
// A suggestion failure degrades to an empty batch and never fails the
// request.
func SaveMood(c *gin.Context) {
	var body struct {
		UserID         string `json:"userID"`
		MoodCategoryID string `json:"moodCategoryID"` // e.g. "MD01"
		MoodIntensity  *int   `json:"moodIntensity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}
	if body.UserID == "" || body.MoodCategoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "missing userID or moodCategoryID"})
		return
	}
	intensity := 5
	if body.MoodIntensity != nil {
		intensity = *body.MoodIntensity
	}

	sugSvc := services.NewSuggestionService()
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.MoodEntry{
			UserID:         body.UserID,
			MoodCategoryID: body.MoodCategoryID,
			MoodIntensity:  intensity,
			DateTime:       time.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		// Exactly one call per entry; empty result is a valid outcome.
		sugSvc.GenerateForMoodEntry(tx, entry.MoodEntryID, body.UserID, body.MoodCategoryID)
		return nil
	})
	if err != nil {
		logger.Error("mood entry insert failed", zap.String("user_id", body.UserID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "could not save mood"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /moodentry?userId=
func GetMoodEntries(c *gin.Context) {
	userID := c.Query("userId")

	q := config.DB.Order("date_time DESC")
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var entries []models.MoodEntry
	if err := q.Find(&entries).Error; err != nil {
		logger.Error("mood entry query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, []gin.H{})
		return
	}

	data := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		data = append(data, gin.H{
			"MoodEntryID": e.MoodEntryID,
			"userId":      e.UserID,
			"mood":        strings.ToUpper(strings.TrimSpace(e.MoodCategoryID)),
			"intensity":   e.MoodIntensity,
			"dateLabel":   e.DateTime.Format("Jan 02"),
			"timeLabel":   e.DateTime.Format("15:04"),
		})
	}
	c.JSON(http.StatusOK, data)
}

// GET /moodsummary?range=weekly|monthly&userId=
func MoodSummary(c *gin.Context) {
	rangeParam := c.DefaultQuery("range", "weekly")
	userID := c.Query("userId")

	daysBack := 7
	if rangeParam == "monthly" {
		daysBack = 30
	}
	since := time.Now().AddDate(0, 0, -daysBack)

	q := config.DB.Model(&models.MoodEntry{}).Where("date_time >= ?", since)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var codes []string
	if err := q.Pluck("mood_category_id", &codes).Error; err != nil {
		logger.Error("mood summary query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"total": 0, "counts": gin.H{}})
		return
	}

	counts := map[string]int{}
	for _, code := range codes {
		counts[strings.ToUpper(strings.TrimSpace(code))]++
	}
	c.JSON(http.StatusOK, gin.H{"total": len(codes), "counts": counts})
}
