package domain

import "time"

// EnrollmentStatus tracks where an enrollment sits in its lifecycle.
type EnrollmentStatus string

// Enrollment statuses. Only active is ever written today; completed and
// dropped are schema placeholders with no transition endpoint.
const (
	StatusActive    EnrollmentStatus = "active"
	StatusCompleted EnrollmentStatus = "completed"
	StatusDropped   EnrollmentStatus = "dropped"
)

// Enrollment Model
type Enrollment struct {
	ID         uint             `gorm:"primaryKey" json:"id"`                 // Primary key
	UserID     uint             `gorm:"index;not null" json:"user_id"`        // Foreign key to User
	CourseID   uint             `gorm:"index;not null" json:"course_id"`      // Foreign key to Course
	Status     EnrollmentStatus `gorm:"size:20;default:active" json:"status"` // active, completed, dropped
	EnrolledAt time.Time        `gorm:"autoCreateTime" json:"enrolled_at"`    // Timestamp of enrollment

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
}
