package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/database"
	"velora_back_end/internal/middleware"
	"velora_back_end/internal/models"
	"velora_back_end/internal/store"
)

//
// 🟢 POST /add_to_cart/:product_id
//
// L'ajout est optimiste : aucun aller-retour catalogue ici, l'existence du
// produit est résolue à la lecture du panier.
func AddToCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	middleware.AppendToCart(c, productID)
	if err := middleware.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// 🔵 GET /api/cart
//
// Résout chaque id du panier contre le catalogue, dans l'ordre d'ajout.
// Les références pendantes (produit supprimé) sont ignorées en silence ;
// les doublons donnent des entrées en double.
func GetCart(c *gin.Context) {
	ids := middleware.Cart(c)

	items := []models.CartItem{} // panier vide : [] et pas null
	if len(ids) == 0 {
		c.JSON(http.StatusOK, items)
		return
	}

	st := store.NewProductStore(database.DB)
	found, err := st.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	for _, id := range ids {
		if p, ok := found[id]; ok {
			items = append(items, models.CartItem{ID: p.ID, Name: p.Name, Price: p.Price})
		}
	}

	c.JSON(http.StatusOK, items)
}
