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

var feelingMap = map[string]string{
	"Happy":   models.MoodHappy,
	"Sad":     models.MoodSad,
	"Angry":   models.MoodAngry,
	"Neutral": models.MoodNeutral,
}

// POST /store_eaten_feedback
// Records how the user felt after eating a suggested food. Unrecognized
// feelings default to Neutral.
func StoreEatenFeedback(c *gin.Context) {
	var body struct {
		UserID  string `json:"userId"`
		FoodID  string `json:"foodId"`
		Feeling string `json:"feeling"` // "Happy" | "Sad" | "Angry" | "Neutral"
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid body"})
		return
	}
	if body.UserID == "" || body.FoodID == "" || body.Feeling == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing userId, foodId, or feeling"})
		return
	}

	code, ok := feelingMap[body.Feeling]
	if !ok {
		code = models.MoodNeutral
	}

	row := models.UserEaten{
		UserID:        body.UserID,
		FoodID:        body.FoodID,
		EatenDateTime: time.Now(),
		FeelBetter:    code,
	}
	if err := config.DB.Create(&row).Error; err != nil {
		logger.Error("eaten feedback insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "insert failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
