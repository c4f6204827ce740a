package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/database"
	"velora_back_end/internal/models"
	"velora_back_end/internal/store"
)

const cacheKeyAll = "products:all"

//
// 🟢 GET /api/products
//
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Vérifie le cache Redis
	if database.RedisClient != nil {
		if val, err := database.RedisClient.Get(ctx, cacheKeyAll).Result(); err == nil && val != "" {
			var cached []models.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	// ✅ Récupère depuis PostgreSQL
	st := store.NewProductStore(database.DB)
	products, err := st.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
		return
	}

	// ✅ Met en cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(products); err == nil {
			database.RedisClient.Set(ctx, cacheKeyAll, data, time.Hour)
		}
	}

	c.JSON(http.StatusOK, products)
}

//
// 🟢 POST /api/products
//
func CreateProduct(c *gin.Context) {
	var input struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	st := store.NewProductStore(database.DB)
	p, err := st.Create(c.Request.Context(), input.Name, input.Price, input.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	invalidateCache(c)

	c.JSON(http.StatusCreated, gin.H{"id": p.ID, "name": p.Name})
}

//
// 🟡 PUT /api/products/:id
//
func UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input store.ProductUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	st := store.NewProductStore(database.DB)
	p, err := st.Update(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}

	invalidateCache(c)

	c.JSON(http.StatusOK, gin.H{"id": p.ID, "name": p.Name})
}

//
// ❌ DELETE /api/products/:id
//
func DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	st := store.NewProductStore(database.DB)
	if err := st.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	invalidateCache(c)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// invalidateCache purge le cache catalogue après toute écriture
func invalidateCache(c *gin.Context) {
	if database.RedisClient != nil {
		database.RedisClient.Del(c.Request.Context(), cacheKeyAll)
	}
}
