package api

import (
	"campushub/internal/domain"     // Importing domain models
	"campushub/internal/middleware" // Caller identity helpers
	"campushub/internal/utils"      // JWT and password utilities
	"net/http"                      // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SignupRequest is the payload for account creation
type SignupRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Role     string `json:"role"`                        // Optional role, defaults to student
}

// LoginRequest is the payload for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// SignupHandler creates a user account and returns a session token bound to it
func SignupHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		role := domain.RoleStudent
		if req.Role != "" {
			role = domain.Role(req.Role)
			if !role.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
				return
			}
		}

		// Uniqueness checks mirror the signup contract: username first,
		// then email, each with its own message.
		var existing domain.User
		if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
			return
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := domain.User{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"username": req.Username,
				"error":    err.Error(),
			}).Error("Signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"role":    user.Role,
		}).Info("User signed up")

		c.JSON(http.StatusCreated, gin.H{
			"message":      "User created successfully",
			"user":         toUserResponse(&user),
			"access_token": token,
		})
	}
}

// LoginHandler authenticates a user and returns a session token. Unknown
// email and wrong password share one message so callers cannot probe which
// addresses have accounts.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
			return
		}

		var user domain.User
		if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if !utils.CheckPassword(user.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"user":         toUserResponse(&user),
			"access_token": token,
		})
	}
}

// MeHandler resolves the bearer token to the live user record
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Request does not contain an access token"})
			return
		}
		var user domain.User
		if err := db.First(&user, userID).Error; err != nil {
			// The token may outlive the account.
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, toUserResponse(&user))
	}
}
