package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/database"
	"velora_back_end/internal/middleware"
	"velora_back_end/internal/store"
	"velora_back_end/internal/utils"
)

// ================== AUTH LOCALE ==================

//
// 🟢 POST /signup
//
func Signup(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	st := store.NewAccountStore(database.DB, utils.NewArgon2Hasher())
	if _, err := st.Create(c.Request.Context(), input.Username, input.Password); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Ce nom d'utilisateur est déjà pris"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// 🟢 POST /login
//
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	st := store.NewAccountStore(database.DB, utils.NewArgon2Hasher())
	u, err := st.VerifyCredentials(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur vérification identifiants"})
		return
	}
	// Nom inconnu ou mauvais mot de passe : même réponse dans les deux cas
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false})
		return
	}

	middleware.SetUserID(c, u.ID)
	if err := middleware.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// 🔵 GET /logout
//
func Logout(c *gin.Context) {
	middleware.ClearUserID(c)
	if err := middleware.Save(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

//
// 🔵 GET /api/me
//
func Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	st := store.NewAccountStore(database.DB, utils.NewArgon2Hasher())
	u, err := st.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": u.ID, "username": u.Username})
}
