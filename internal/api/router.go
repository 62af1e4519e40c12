package api

import (
	"campushub/internal/config"     // Application configuration
	"campushub/internal/middleware" // Route guards

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter wires every route onto a Gin engine. The db and redis handles
// are passed down explicitly; no package-global state.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000", "http://127.0.0.1:3000",
			"http://localhost:3001", "http://127.0.0.1:3001",
			"http://localhost:3007", "http://127.0.0.1:3007",
			"http://localhost:5173", "http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authRequired := middleware.JWTAuthMiddleware(cfg.JWTSecret)
	adminOnly := middleware.AdminOnlyMiddleware(db)

	apiGroup := r.Group("/api")
	{
		// Auth routes
		apiGroup.POST("/auth/signup", SignupHandler(db, cfg.JWTSecret))
		apiGroup.POST("/auth/login", LoginHandler(db, cfg.JWTSecret))
		apiGroup.GET("/auth/me", authRequired, MeHandler(db))

		// Course routes: reads are public, writes are admin only
		apiGroup.GET("/courses", ListCoursesHandler(db, rdb))
		apiGroup.GET("/courses/:id", GetCourseHandler(db))
		apiGroup.POST("/courses", authRequired, adminOnly, CreateCourseHandler(db, rdb))
		apiGroup.PUT("/courses/:id", authRequired, adminOnly, UpdateCourseHandler(db, rdb))
		apiGroup.DELETE("/courses/:id", authRequired, adminOnly, DeleteCourseHandler(db, rdb))

		// Enrollment routes
		apiGroup.POST("/enrollments", authRequired, EnrollHandler(db, rdb))
		apiGroup.GET("/enrollments/user/:id", authRequired, ListUserEnrollmentsHandler(db))

		// User routes
		apiGroup.GET("/users", ListUsersHandler(db))
		apiGroup.GET("/users/:id", GetUserHandler(db))
		apiGroup.PUT("/users/:id", authRequired, UpdateUserHandler(db))

		// Health check
		apiGroup.GET("/health", HealthHandler(db))
	}

	return r
}
