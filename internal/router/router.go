package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/learnify-dev/learnify/internal/handlers"
	"github.com/learnify-dev/learnify/internal/middleware"
	"github.com/learnify-dev/learnify/internal/store"
	"github.com/learnify-dev/learnify/internal/types"
)

func NewRouter(dataStore *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(dataStore)
	tutorialHandler := handlers.NewTutorialHandler(dataStore)
	bookingHandler := handlers.NewBookingHandler(dataStore)
	statsHandler := handlers.NewStatsHandler(dataStore)
	categoryHandler := handlers.NewCategoryHandler(dataStore)

	api := r.Group("/", middleware.RequireStore(dataStore))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthMiddleware(dataStore), authHandler.Me)
		}

		// Public catalog routes
		api.GET("/tutorials", tutorialHandler.ListTutorials)
		api.GET("/tutorials/:id", tutorialHandler.GetTutorial)
		api.GET("/stats", statsHandler.GetStats)
		api.GET("/categories", categoryHandler.ListCategories)

		protected := api.Group("", middleware.AuthMiddleware(dataStore))
		{
			protected.POST("/tutorials", tutorialHandler.CreateTutorial)
			protected.PUT("/tutorials/:id", tutorialHandler.UpdateTutorial)
			protected.DELETE("/tutorials/:id", tutorialHandler.DeleteTutorial)
			protected.PATCH("/tutorials/:id/review", tutorialHandler.IncrementReview)
			protected.GET("/my-tutorials", tutorialHandler.MyTutorials)

			protected.POST("/bookings", bookingHandler.CreateBooking)
			protected.GET("/my-bookings", bookingHandler.MyBookings)
		}
	}

	return r
}
