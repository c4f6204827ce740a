package models

// CartItem est la projection d'un produit telle qu'exposée par le panier.
// Le panier en session ne stocke que des identifiants ; les champs ici sont
// résolus contre le catalogue au moment de la lecture.
type CartItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
