package api

import (
	"campushub/internal/apperr"     // Business error taxonomy
	"campushub/internal/domain"     // Importing domain models
	"campushub/internal/middleware" // Caller identity helpers
	"errors"                        // Sentinel error matching
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
	"gorm.io/gorm/clause"          // Row locking
)

// EnrollRequest is the payload for enrolling in a course
type EnrollRequest struct {
	CourseID uint `json:"course_id" binding:"required"` // Course must be provided
}

// EnrollHandler enrolls the authenticated user in a course. The whole check
// sequence runs inside one transaction with the course row locked (on MySQL),
// so two near-capacity enrollments cannot both pass the count.
func EnrollHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CallerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Request does not contain an access token"})
			return
		}

		var req EnrollRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course ID is required"})
			return
		}

		var enrollment domain.Enrollment
		err := db.Transaction(func(tx *gorm.DB) error {
			q := tx
			if tx.Dialector.Name() == "mysql" {
				// SQLite has no FOR UPDATE; its single-writer
				// transactions serialize the race on their own.
				q = q.Clauses(clause.Locking{Strength: "UPDATE"})
			}
			var course domain.Course
			if err := q.First(&course, req.CourseID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperr.ErrNotFound
				}
				return err
			}

			var enrolled int64
			if err := tx.Model(&domain.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrolled).Error; err != nil {
				return err
			}
			if enrolled >= int64(course.Capacity) {
				return apperr.ErrCourseFull
			}

			// Any existing row for the pair blocks re-enrollment,
			// whatever its status says.
			var existing domain.Enrollment
			if err := tx.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
				return apperr.ErrAlreadyEnrolled
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			enrollment = domain.Enrollment{
				UserID:   userID,
				CourseID: course.ID,
				Status:   domain.StatusActive,
			}
			return tx.Create(&enrollment).Error
		})
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		case errors.Is(err, apperr.ErrCourseFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Course is full"})
			return
		case errors.Is(err, apperr.ErrAlreadyEnrolled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Already enrolled in this course"})
			return
		case err != nil:
			logrus.WithFields(logrus.Fields{
				"user_id":   userID,
				"course_id": req.CourseID,
				"error":     err.Error(),
			}).Error("Enrollment failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll"})
			return
		}
		invalidateCourseList(rdb) // enrolled_count changed

		logrus.WithFields(logrus.Fields{
			"user_id":   userID,
			"course_id": enrollment.CourseID,
		}).Info("User enrolled")

		if err := db.Preload("Course").First(&enrollment, enrollment.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to enroll"})
			return
		}
		c.JSON(http.StatusCreated, toEnrollmentResponse(&enrollment))
	}
}

// ListUserEnrollmentsHandler returns a user's enrollments to that user or an admin
func ListUserEnrollmentsHandler(db *gorm.DB) gin.HandlerFunc {
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

		if callerID != uint(targetID) {
			var caller domain.User
			if err := db.First(&caller, callerID).Error; err != nil || !caller.Role.IsAdmin() {
				c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
				return
			}
		}

		var enrollments []domain.Enrollment
		if err := db.Preload("Course").Where("user_id = ?", targetID).Find(&enrollments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enrollments"})
			return
		}
		resp := make([]EnrollmentResponse, len(enrollments))
		for i := range enrollments {
			resp[i] = toEnrollmentResponse(&enrollments[i])
		}
		c.JSON(http.StatusOK, resp)
	}
}
