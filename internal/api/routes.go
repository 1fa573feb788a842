package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alcyxob/irontrack/internal/service"
	"alcyxob/irontrack/internal/stats"
)

// SetupRoutes wires all handlers into the gin engine. When the auth
// service has a password configured, every /api/v1 route except login
// requires a bearer token; otherwise the API runs open for local use.
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	workoutService service.WorkoutService,
	analyzer *stats.Analyzer,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)
	statsHandler := NewStatsHandler(analyzer)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	if authService.Enabled() {
		protected.Use(AuthMiddleware(authService.JWTSecret()))
	}
	{
		// --- Workout Log ---
		protected.GET("/sets", workoutHandler.ListSets)
		protected.POST("/sets", workoutHandler.LogSet)
		protected.POST("/exercises", workoutHandler.RegisterExercise)
		protected.GET("/export", workoutHandler.Export)

		// --- Catalog ---
		catalogGroup := protected.Group("/catalog")
		{
			catalogGroup.GET("/categories", workoutHandler.GetCategories)
			catalogGroup.GET("/categories/:category/exercises", workoutHandler.GetCategoryExercises)
		}

		// --- Stats ---
		statsGroup := protected.Group("/stats")
		{
			statsGroup.GET("/progress/:exercise", statsHandler.Progress)
			statsGroup.GET("/consistency", statsHandler.Consistency)
			statsGroup.GET("/categories", statsHandler.CategoryDistribution)
			statsGroup.GET("/exercises/top", statsHandler.TopExercises)
		}
	}
}
