package api

import (
	"campushub/internal/domain" // Importing domain models
	"time"
)

// UserResponse is the user shape returned to clients
type UserResponse struct {
	ID        uint        `json:"id"`         // User ID
	Username  string      `json:"username"`   // Username
	Email     string      `json:"email"`      // Email address
	Role      domain.Role `json:"role"`       // User role
	CreatedAt string      `json:"created_at"` // ISO timestamp
}

// CourseResponse is the course shape returned to clients
type CourseResponse struct {
	ID             uint   `json:"id"`              // Course ID
	Title          string `json:"title"`           // Title
	Description    string `json:"description"`     // Description
	InstructorID   uint   `json:"instructor_id"`   // Instructor user ID
	InstructorName string `json:"instructor_name"` // Instructor username
	Capacity       int    `json:"capacity"`        // Enrollment cap
	ImageURL       string `json:"image_url"`       // Course image
	EnrolledCount  int    `json:"enrolled_count"`  // Current enrollments
	CreatedAt      string `json:"created_at"`      // ISO timestamp
}

// EnrollmentResponse is the enrollment shape returned to clients
type EnrollmentResponse struct {
	ID          uint                    `json:"id"`           // Enrollment ID
	UserID      uint                    `json:"user_id"`      // Enrolled user
	CourseID    uint                    `json:"course_id"`    // Enrolled course
	CourseTitle string                  `json:"course_title"` // Course title
	Status      domain.EnrollmentStatus `json:"status"`       // Enrollment status
	EnrolledAt  string                  `json:"enrolled_at"`  // ISO timestamp
}

func isoTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: isoTime(u.CreatedAt),
	}
}

// toCourseResponse expects Instructor and Enrollments to be preloaded.
func toCourseResponse(course *domain.Course) CourseResponse {
	resp := CourseResponse{
		ID:            course.ID,
		Title:         course.Title,
		Description:   course.Description,
		InstructorID:  course.InstructorID,
		Capacity:      course.Capacity,
		ImageURL:      course.ImageURL,
		EnrolledCount: len(course.Enrollments),
		CreatedAt:     isoTime(course.CreatedAt),
	}
	if course.Instructor != nil {
		resp.InstructorName = course.Instructor.Username
	}
	return resp
}

// toEnrollmentResponse expects Course to be preloaded.
func toEnrollmentResponse(e *domain.Enrollment) EnrollmentResponse {
	resp := EnrollmentResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		Status:     e.Status,
		EnrolledAt: isoTime(e.EnrolledAt),
	}
	if e.Course != nil {
		resp.CourseTitle = e.Course.Title
	}
	return resp
}
