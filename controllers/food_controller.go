package controllers

import (
	"errors"
	"net/http"

	"github.com/ThanapatNon/FOODMOOD/config"
	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type menuRow struct {
	FoodID   string `json:"FoodID"`
	FoodName string `json:"FoodName"`
	ImageURL string `json:"ImageURL"`
}

// GET /ourmenu
func GetOurMenu(c *gin.Context) {
	rows := []menuRow{}
	err := config.DB.Model(&models.FoodItem{}).
		Select("food_id, food_name, image_url").
		Order("food_id").
		Scan(&rows).Error
	if err != nil {
		logger.Error("menu query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /foodingredient?foodId=
// One food item plus its ingredient list.
func GetFoodIngredients(c *gin.Context) {
	foodID := c.Query("foodId")
	if foodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"food": nil, "ingredients": []gin.H{}})
		return
	}

	var food models.FoodItem
	err := config.DB.First(&food, "food_id = ?", foodID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"food": nil, "ingredients": []gin.H{}})
		return
	}
	if err != nil {
		logger.Error("food lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"food": nil, "ingredients": []gin.H{}})
		return
	}

	var ingredients []models.Ingredient
	err = config.DB.
		Table("ingredients i").
		Joins("JOIN food_ingredients fi ON fi.ingredient_id = i.ingredient_id").
		Where("fi.food_id = ?", foodID).
		Scan(&ingredients).Error
	if err != nil {
		logger.Error("ingredient query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"food": nil, "ingredients": []gin.H{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"food": gin.H{
			"FoodID":         food.FoodID,
			"FoodName":       food.FoodName,
			"MoodCategoryID": food.MoodCategoryID,
			"BMI":            food.BMI,
			"Age_Range":      food.AgeRange,
		},
		"ingredients": ingredients,
	})
}

// GET /food_eaten_info?foodId=
func GetFoodEatenInfo(c *gin.Context) {
	foodID := c.Query("foodId")
	if foodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing foodId"})
		return
	}

	var row menuRow
	res := config.DB.Model(&models.FoodItem{}).
		Select("food_id, food_name, image_url").
		Where("food_id = ?", foodID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		logger.Error("food info query failed", zap.Error(res.Error))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No item found for FoodID=" + foodID})
		return
	}
	c.JSON(http.StatusOK, row)
}
