package handler

import (
	"net/http"

	"github.com/Farounaga/Esport-api/internal/auth"
	"github.com/Farounaga/Esport-api/pkg/token"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API surface on the given engine. Routes live at
// the root, mirroring the platform's public contract.
func RegisterRoutes(router *gin.Engine, issuer *token.Issuer) {
	authRequired := auth.Middleware(issuer)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// User routes
	userRoutes := router.Group("/users")
	{
		userRoutes.POST("/register", RegisterUser)
		userRoutes.POST("/login", LoginUser(issuer))
		userRoutes.GET("/me", authRequired, GetMe)
	}

	// Profile routes (protected)
	profileRoutes := router.Group("/profiles")
	profileRoutes.Use(authRequired)
	{
		profileRoutes.GET("/me", GetMyProfile)
		profileRoutes.PUT("/me", UpdateMyProfile)
	}

	// Public game catalog
	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", GetGames)
		gameRoutes.GET("/:id", GetGameByID)
	}

	// Matchmaking routes (protected)
	matchmakingRoutes := router.Group("/matchmaking")
	matchmakingRoutes.Use(authRequired)
	{
		matchmakingRoutes.POST("/requests/", CreateMatchRequest)
		matchmakingRoutes.GET("/requests/me", GetMyMatchRequests)
		matchmakingRoutes.GET("/matches/me", GetMyMatches)
	}
}
