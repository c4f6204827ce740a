package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"velora_back_end/internal/config"
	"velora_back_end/internal/database"
	"velora_back_end/internal/middleware"
	"velora_back_end/internal/routes"
)

func main() {
	config.Load()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}
	middleware.InitSessionStore(sessionSecret)

	database.ConnectDatabases()

	ctx := context.Background()
	if err := database.RunMigrations(ctx); err != nil {
		log.Fatalf("❌ Échec migrations: %v", err)
	}

	// ✅ Catalogue de démonstration au premier démarrage
	if err := database.SeedProducts(ctx); err != nil {
		log.Printf("⚠️  Échec seed produits: %v", err)
	}

	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.Sessions())
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Velora lancé sur le port", port)
	r.Run(":" + port)
}

func corsMiddleware() gin.HandlerFunc {
	front := config.Getenv("FRONTEND_URL", "http://localhost:5173")
	return cors.New(cors.Config{
		AllowOrigins:     []string{front},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true, // la session passe par cookie
	})
}
