package api

import (
	"campushub/internal/domain"     // Importing domain models
	"campushub/internal/middleware" // Caller identity helpers
	"campushub/internal/utils"      // Password hashing
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// UpdateUserRequest is the payload for profile updates. Pointers distinguish
// "not sent" from "sent empty".
type UpdateUserRequest struct {
	Email    *string `json:"email"`    // New email address
	Password *string `json:"password"` // New raw password, re-hashed before storage
}

// ListUsersHandler returns all users
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []domain.User
		if err := db.Find(&users).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch users")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users", "details": err.Error()})
			return
		}
		resp := make([]UserResponse, len(users))
		for i := range users {
			resp[i] = toUserResponse(&users[i])
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler returns a single user
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		var user domain.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, toUserResponse(&user))
	}
}

// UpdateUserHandler lets a user update their own email or password; admins
// may update anyone. No field changes when the request is rejected.
func UpdateUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Request does not contain an access token"})
			return
		}
		targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user domain.User
		if err := db.First(&user, targetID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if callerID != uint(targetID) {
			var caller domain.User
			if err := db.First(&caller, callerID).Error; err != nil || !caller.Role.IsAdmin() {
				c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
				return
			}
		}

		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if req.Email != nil {
			var existing domain.User
			if err := db.Where("email = ?", *req.Email).First(&existing).Error; err == nil && existing.ID != user.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
				return
			}
			user.Email = *req.Email
		}
		if req.Password != nil {
			hash, err := utils.HashPassword(*req.Password)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			user.PasswordHash = hash
		}

		if err := db.Save(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Error("Failed to update user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"caller_id": callerID,
		}).Info("User updated")
		c.JSON(http.StatusOK, toUserResponse(&user))
	}
}
