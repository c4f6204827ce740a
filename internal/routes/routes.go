package routes

import (
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/handlers/product"
	"velora_back_end/internal/handlers/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Home
	r.GET("/", handlers.Home)

	// Auth
	r.POST("/signup", user.Signup)
	r.POST("/login", user.Login)
	r.GET("/logout", user.Logout)

	// Panier (session)
	r.POST("/add_to_cart/:product_id", user.AddToCart)

	// API
	api := r.Group("/api")
	{
		api.GET("/products", product.GetAllProducts)
		api.POST("/products", product.CreateProduct)
		api.PUT("/products/:id", product.UpdateProduct)
		api.DELETE("/products/:id", product.DeleteProduct)

		api.GET("/cart", user.GetCart)
		api.GET("/me", user.Me)
	}
}
