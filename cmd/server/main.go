package main

import (
	"fmt"
	"log"

	"github.com/Farounaga/Esport-api/internal/config"
	"github.com/Farounaga/Esport-api/internal/database"
	"github.com/Farounaga/Esport-api/internal/handler"
	"github.com/Farounaga/Esport-api/pkg/token"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "github.com/Farounaga/Esport-api/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Esport Platform API
// @version         0.1.0
// @description     CRUD backend for the esport matchmaking platform.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the database
	if err := database.Connect(cfg.DatabaseDSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL())

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.RegisterRoutes(router, issuer)

	fmt.Printf("Server is running on %s\n", cfg.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(cfg.ServerAddr))
}
