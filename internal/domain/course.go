package domain

import "time"

// DefaultCapacity is the enrollment cap a course gets when none is given.
const DefaultCapacity = 50

// Course Model
type Course struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                        // Primary key
	Title        string    `gorm:"size:120;not null" json:"title"`              // Required title
	Description  string    `gorm:"type:text" json:"description"`                // Optional description
	InstructorID uint      `gorm:"index;not null" json:"instructor_id"`         // Foreign key to User
	Capacity     int       `gorm:"default:50" json:"capacity"`                  // Maximum enrollments
	ImageURL     string    `gorm:"size:500;default:''" json:"image_url"`        // URL to course image
	CreatedAt    time.Time `json:"created_at"`

	Instructor  *User        `gorm:"foreignKey:InstructorID" json:"-"` // Authoring instructor
	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"` // Cascade delete
}
