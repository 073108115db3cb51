package routes

import (
	"github.com/ThanapatNon/FOODMOOD/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Mood entries
	r.POST("/save_mood", controllers.SaveMood)
	r.GET("/moodentry", controllers.GetMoodEntries)
	r.GET("/moodsummary", controllers.MoodSummary)

	// Food catalog
	r.GET("/ourmenu", controllers.GetOurMenu)
	r.GET("/foodingredient", controllers.GetFoodIngredients)
	r.GET("/food_eaten_info", controllers.GetFoodEatenInfo)

	// Suggestions
	r.GET("/foodsuggestion", controllers.GetFoodSuggestions)
	r.GET("/foodsugg_history", controllers.GetFoodSuggestionHistory)
	r.POST("/updateEatenFlag", controllers.UpdateEatenFlag)

	// Feedback & reports
	r.POST("/store_eaten_feedback", controllers.StoreEatenFeedback)
	r.GET("/report_data", controllers.GetReportData)

	// Reminders
	r.POST("/schedule_reminder", controllers.ScheduleReminder)

	return r
}
