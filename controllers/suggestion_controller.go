package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ThanapatNon/FOODMOOD/config"
	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type suggestionRow struct {
	SuggestionID   uint      `json:"SuggestionID"`
	FoodID         string    `json:"FoodID"`
	FoodName       string    `json:"FoodName"`
	ImageURL       string    `json:"ImageURL"`
	MoodCategoryID string    `json:"MoodCategoryID"`
	SuggestedDate  time.Time `json:"SuggestedDate"`
	EatenFlag      *string   `json:"EatenFlag"`
}

// GET /foodsuggestion?userId=
// Up to 3 suggestions tied to the user's most recent mood entry.
func GetFoodSuggestions(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, []suggestionRow{})
		return
	}

	var latest models.MoodEntry
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date_time DESC").
		First(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, []suggestionRow{})
		return
	}
	if err != nil {
		logger.Error("latest mood entry lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	rows := []suggestionRow{}
	err = config.DB.
		Table("food_suggestions fs").
		Select(`fs.suggestion_id, fs.food_id, fi.food_name, fi.image_url,
			fs.mood_category_id, fs.suggested_date, fs.eaten_flag`).
		Joins("JOIN food_items fi ON fs.food_id = fi.food_id").
		Where("fs.user_id = ? AND fs.mood_entry_id = ?", userID, latest.MoodEntryID).
		Order("fs.suggestion_id DESC").
		Limit(3).
		Scan(&rows).Error
	if err != nil {
		logger.Error("food suggestion query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /updateEatenFlag
// Conditional one-way transition: only rows still unset can flip to Eaten.
func UpdateEatenFlag(c *gin.Context) {
	var body struct {
		SuggestionID uint `json:"suggestionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.SuggestionID == 0 {
		c.String(http.StatusBadRequest, "Missing suggestionId")
		return
	}

	res := config.DB.Model(&models.FoodSuggestion{}).
		Where("suggestion_id = ? AND eaten_flag IS NULL", body.SuggestionID).
		Update("eaten_flag", models.EatenFlagValue)
	if res.Error != nil {
		logger.Error("eaten flag update failed", zap.Error(res.Error))
		c.String(http.StatusInternalServerError, "update failed")
		return
	}
	if res.RowsAffected == 0 {
		c.String(http.StatusNotFound, "No matching suggestion found or already eaten.")
		return
	}
	c.String(http.StatusOK, "OK")
}

// GET /foodsugg_history?userId=
func GetFoodSuggestionHistory(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId"})
		return
	}

	rows := []suggestionRow{}
	err := config.DB.
		Table("food_suggestions fs").
		Select(`fs.suggestion_id, fs.food_id, fi.food_name, fi.image_url,
			fs.mood_category_id, fs.suggested_date, fs.eaten_flag`).
		Joins("JOIN food_items fi ON fs.food_id = fi.food_id").
		Where("fs.user_id = ?", userID).
		Order("fs.suggested_date DESC").
		Scan(&rows).Error
	if err != nil {
		logger.Error("suggestion history query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
