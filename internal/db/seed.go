package db

import (
	"campushub/internal/domain" // Importing domain models
	"campushub/internal/utils"  // Password hashing

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed loads the sample data set: an admin account, one instructor and three
// starter courses. It is a no-op when the admin user already exists, so it is
// safe to run repeatedly.
func Seed(db *gorm.DB) error {
	var admin domain.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err == nil {
		logrus.Info("Seed skipped: admin user already exists.")
		return nil
	}

	adminHash, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	instructorHash, err := utils.HashPassword("instructor123")
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin = domain.User{
			Username:     "admin",
			Email:        "admin@campushub.com",
			PasswordHash: adminHash,
			Role:         domain.RoleAdmin,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		instructor := domain.User{
			Username:     "Prof. Sarah Johnson",
			Email:        "instructor@campushub.com",
			PasswordHash: instructorHash,
			Role:         domain.RoleInstructor,
		}
		if err := tx.Create(&instructor).Error; err != nil {
			return err
		}

		courses := []domain.Course{
			{
				Title:        "Introduction to Python",
				Description:  "Learn Python basics from scratch.",
				InstructorID: instructor.ID,
				Capacity:     50,
				ImageURL:     "/images/python-intro.png",
			},
			{
				Title:        "Web Development with React",
				Description:  "Master React and modern web development.",
				InstructorID: instructor.ID,
				Capacity:     40,
				ImageURL:     "/images/react-dev.png",
			},
			{
				Title:        "Database Design with SQL",
				Description:  "Learn to design and optimize databases.",
				InstructorID: instructor.ID,
				Capacity:     35,
				ImageURL:     "/images/sql-design.png",
			},
		}
		if err := tx.Create(&courses).Error; err != nil {
			return err
		}

		logrus.Info("Database initialized with sample data.")
		return nil
	})
}
