package activityControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/savi279/clothing-api/middleware"
	"github.com/savi279/clothing-api/models"
)

type LogInput struct {
	Action  string         `json:"action" binding:"required"`
	Details map[string]any `json:"details"`
}

// POST /api/user-activity
func LogActivity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LogInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidActivityAction(input.Action) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action"})
			return
		}

		activity := models.UserActivity{
			UserID:    middleware.UserID(c),
			Action:    input.Action,
			Details:   input.Details,
			IPAddress: c.ClientIP(),
			UserAgent: c.GetHeader("User-Agent"),
		}
		if err := db.Create(&activity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log activity"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"msg": "Activity logged successfully"})
	}
}

// GET /api/user-activity/user/:userId (admin)
func GetUserActivities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}

		var activities []models.UserActivity
		if err := db.Preload("User").
			Where("user_id = ?", uint(userID)).
			Order("created_at DESC").
			Find(&activities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}

// GET /api/user-activity (admin)
func GetAllActivities(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var activities []models.UserActivity
		if err := db.Preload("User").
			Order("created_at DESC").
			Limit(100).
			Find(&activities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}

type ActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

// GET /api/user-activity/stats (admin)
func GetActivityStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats []ActionCount
		if err := db.Model(&models.UserActivity{}).
			Select("action, COUNT(*) AS count").
			Group("action").
			Scan(&stats).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
