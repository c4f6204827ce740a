package middleware

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "velora_session"
	sessionKey  = "session"

	keyUserID = "user_id"
	keyCart   = "cart"
)

var store *sessions.CookieStore

func init() {
	// Le CookieStore sérialise les valeurs en gob : la liste d'ids du panier
	// doit être enregistrée pour traverser le cookie.
	gob.Register([]int64{})
}

// InitSessionStore configure le store de sessions cookie (appelé au démarrage)
func InitSessionStore(secret string) {
	store = sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

// Sessions charge la session de la requête et la met dans le context Gin.
// Une erreur de décodage (cookie corrompu) donne une session neuve.
func Sessions() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, _ := store.Get(c.Request, sessionName)
		c.Set(sessionKey, s)
		c.Next()
	}
}

// Session retourne la session courante posée par Sessions()
func Session(c *gin.Context) *sessions.Session {
	v, _ := c.Get(sessionKey)
	s, _ := v.(*sessions.Session)
	return s
}

// Save réécrit le cookie de session sur la réponse
func Save(c *gin.Context) error {
	return Session(c).Save(c.Request, c.Writer)
}

// CurrentUserID retourne l'id de l'utilisateur authentifié, ok=false si anonyme
func CurrentUserID(c *gin.Context) (int64, bool) {
	id, ok := Session(c).Values[keyUserID].(int64)
	return id, ok
}

// SetUserID marque la session comme authentifiée
func SetUserID(c *gin.Context, id int64) {
	Session(c).Values[keyUserID] = id
}

// ClearUserID repasse la session en anonyme. Le panier n'est pas touché :
// il est orthogonal à l'état d'authentification.
func ClearUserID(c *gin.Context) {
	delete(Session(c).Values, keyUserID)
}

// Cart retourne la liste ordonnée des ids produits du panier (doublons permis)
func Cart(c *gin.Context) []int64 {
	ids, _ := Session(c).Values[keyCart].([]int64)
	return ids
}

// AppendToCart ajoute un id en fin de panier, sans vérifier son existence
// dans le catalogue : la résolution se fait à la lecture.
func AppendToCart(c *gin.Context, productID int64) {
	Session(c).Values[keyCart] = append(Cart(c), productID)
}
