package api

import (
	"campushub/internal/domain" // Importing domain models
	"net/http"                  // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// HealthHandler reports API liveness plus entity counts, which doubles as a
// database connectivity probe.
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userCount, courseCount int64
		if err := db.Model(&domain.User{}).Count(&userCount).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Health check failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Health check failed",
				"error":   err.Error(),
			})
			return
		}
		if err := db.Model(&domain.Course{}).Count(&courseCount).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Health check failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Health check failed",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "API is running",
			"database": "connected",
			"users":    userCount,
			"courses":  courseCount,
		})
	}
}
