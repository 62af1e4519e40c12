package api

import (
	"campushub/internal/domain" // Importing domain models
	"campushub/internal/utils"  // Cache helpers
	"context"                   // Context for Redis operations
	"net/http"                  // HTTP status codes
	"strconv"                   // String conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CreateCourseRequest is the payload for course creation
type CreateCourseRequest struct {
	Title        string `json:"title"`         // Required title
	Description  string `json:"description"`   // Optional description
	InstructorID uint   `json:"instructor_id"` // Required instructor reference
	Capacity     int    `json:"capacity"`      // Optional, defaults to 50
	ImageURL     string `json:"image_url"`     // Optional course image
}

// UpdateCourseRequest is the payload for course updates. Zero values leave
// the field untouched.
type UpdateCourseRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	InstructorID uint   `json:"instructor_id"`
	Capacity     int    `json:"capacity"`
	ImageURL     string `json:"image_url"`
}

// invalidateCourseList drops the cached course listing after any write that
// changes what it would show.
func invalidateCourseList(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, utils.CourseListKey)
}

// ListCoursesHandler returns all courses, served from the Redis cache when warm
func ListCoursesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		var cached []CourseResponse
		found, err := utils.GetCache(ctx, rdb, utils.CourseListKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}

		var courses []domain.Course
		if err := db.Preload("Instructor").Preload("Enrollments").Find(&courses).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to fetch courses")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses", "details": err.Error()})
			return
		}
		resp := make([]CourseResponse, len(courses))
		for i := range courses {
			resp[i] = toCourseResponse(&courses[i])
		}
		_ = utils.SetCache(ctx, rdb, utils.CourseListKey, resp, utils.CacheTTL)
		c.JSON(http.StatusOK, resp)
	}
}

// GetCourseHandler returns a single course
func GetCourseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		var course domain.Course
		if err := db.Preload("Instructor").Preload("Enrollments").First(&course, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusOK, toCourseResponse(&course))
	}
}

// CreateCourseHandler creates a course (admin only, enforced by middleware)
func CreateCourseHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCourseRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		if req.InstructorID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Instructor ID is required"})
			return
		}

		var instructor domain.User
		if err := db.First(&instructor, req.InstructorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
			return
		}

		capacity := req.Capacity
		if capacity == 0 {
			capacity = domain.DefaultCapacity
		}

		course := domain.Course{
			Title:        req.Title,
			Description:  req.Description,
			InstructorID: req.InstructorID,
			Capacity:     capacity,
			ImageURL:     req.ImageURL,
		}
		if err := db.Create(&course).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create course")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
			return
		}
		invalidateCourseList(rdb)

		logrus.WithFields(logrus.Fields{
			"course_id":     course.ID,
			"instructor_id": course.InstructorID,
		}).Info("Course created")

		course.Instructor = &instructor
		c.JSON(http.StatusCreated, toCourseResponse(&course))
	}
}

// UpdateCourseHandler applies a partial update to a course (admin only)
func UpdateCourseHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		var course domain.Course
		if err := db.First(&course, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}

		var req UpdateCourseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if req.Title != "" {
			course.Title = req.Title
		}
		if req.Description != "" {
			course.Description = req.Description
		}
		if req.InstructorID != 0 {
			var instructor domain.User
			if err := db.First(&instructor, req.InstructorID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Instructor not found"})
				return
			}
			course.InstructorID = req.InstructorID
		}
		if req.Capacity != 0 {
			course.Capacity = req.Capacity
		}
		if req.ImageURL != "" {
			course.ImageURL = req.ImageURL
		}

		if err := db.Save(&course).Error; err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to update course")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
			return
		}
		invalidateCourseList(rdb)

		if err := db.Preload("Instructor").Preload("Enrollments").First(&course, course.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update course"})
			return
		}
		c.JSON(http.StatusOK, toCourseResponse(&course))
	}
}

// DeleteCourseHandler deletes a course and its enrollments (admin only)
func DeleteCourseHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		var course domain.Course
		if err := db.First(&course, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}

		// Enrollment rows are owned by the course; drop them in the same
		// transaction so no orphan can survive a partial failure.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("course_id = ?", course.ID).Delete(&domain.Enrollment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&course).Error
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"course_id": course.ID,
				"error":     err.Error(),
			}).Error("Failed to delete course")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
			return
		}
		invalidateCourseList(rdb)

		logrus.WithField("course_id", course.ID).Info("Course deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
	}
}
