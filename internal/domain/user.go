package domain

import "time"

// Role is the coarse-grained permission class assigned to a user.
type Role string

// Known roles
const (
	RoleAdmin      Role = "admin"
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStudent, RoleInstructor:
		return true
	}
	return false
}

// IsAdmin reports whether r grants admin access.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                         // Primary key
	Username     string    `gorm:"size:80;uniqueIndex;not null" json:"username"` // Unique username
	Email        string    `gorm:"size:120;uniqueIndex;not null" json:"email"`   // Unique email
	PasswordHash string    `gorm:"size:255;not null" json:"-"`                   // Hashed password, never serialized
	Role         Role      `gorm:"size:20;default:student" json:"role"`          // Role: admin, student or instructor
	CreatedAt    time.Time `json:"created_at"`

	// A user's enrollments die with the user; authored courses keep their rows.
	Enrollments []Enrollment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Courses     []Course     `gorm:"foreignKey:InstructorID" json:"-"`
}
