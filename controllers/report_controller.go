package controllers

import (
	"net/http"
	"time"

	"github.com/ThanapatNon/FOODMOOD/config"
	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /report_data?userId=&start=YYYY-MM-DD&end=YYYY-MM-DD
func GetReportData(c *gin.Context) {
	userID := c.Query("userId")
	startStr := c.Query("start")
	endStr := c.Query("end")
	if userID == "" || startStr == "" || endStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing userId, start or end parameters"})
		return
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	// Make the end date inclusive.
	end = end.AddDate(0, 0, 1)

	out, err := services.NewReportService(config.DB).Report(c.Request.Context(), userID, start, end)
	if err != nil {
		logger.Error("report query failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, out)
}
