package server

import (
	"net/http"

	"gamehub/backend/internal/auth"
	"gamehub/backend/internal/handler"
	"gamehub/backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	// Swagger imports
	_ "gamehub/backend/docs" // This is important for swag to find the generated docs
)

// NewRouter wires every route of the API.
func NewRouter(h *handler.Handler, db *gorm.DB, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestID(), handler.RequestLogger(log), handler.Metrics())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.Register)
			authRoutes.POST("/login", h.Login)
		}

		apiV1.GET("/overview", h.GetOverview)

		// Public game routes, personalised when a token is sent
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", auth.OptionalAuthMiddleware(), h.ListGames)
			gameRoutes.GET("/random", h.RandomGame) // Must be before /:id
			gameRoutes.GET("/:id", auth.OptionalAuthMiddleware(), h.GetGame)
			gameRoutes.POST("/:id/rating", auth.AuthMiddleware(), h.RateGame)
			gameRoutes.POST("/:id/wishlist", auth.AuthMiddleware(), h.ToggleWishlist)
			gameRoutes.POST("/:id/completed", auth.AuthMiddleware(), h.ToggleCompleted)
		}

		apiV1.GET("/genres", h.ListGenres)
		apiV1.GET("/genres/:id", h.GetGenre)
		apiV1.GET("/publishers", h.ListPublishers)
		apiV1.GET("/publishers/:id", h.GetPublisher)
		apiV1.GET("/platforms", h.ListPlatforms)

		// Player routes (protected)
		playerRoutes := apiV1.Group("/players")
		playerRoutes.Use(auth.AuthMiddleware())
		{
			playerRoutes.GET("/me", h.GetMe)
			playerRoutes.PUT("/me", h.UpdateMe)
			playerRoutes.GET("/me/lists", h.GetMyLists)
		}

		// Admin routes (protected by auth and staff check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware(db))
		{
			games := adminRoutes.Group("/games")
			{
				games.POST("", h.CreateGame)
				games.PUT("/:id", h.UpdateGame)
				games.DELETE("/:id", h.DeleteGame)
			}

			genres := adminRoutes.Group("/genres")
			{
				genres.POST("", h.CreateGenre)
				genres.PUT("/:id", h.UpdateGenre)
				genres.DELETE("/:id", h.DeleteGenre)
			}

			publishers := adminRoutes.Group("/publishers")
			{
				publishers.POST("", h.CreatePublisher)
				publishers.PUT("/:id", h.UpdatePublisher)
				publishers.DELETE("/:id", h.DeletePublisher)
			}

			platforms := adminRoutes.Group("/platforms")
			{
				platforms.POST("", h.CreatePlatform)
				platforms.PUT("/:id", h.UpdatePlatform)
				platforms.DELETE("/:id", h.DeletePlatform)
			}
		}
	}

	return router
}
