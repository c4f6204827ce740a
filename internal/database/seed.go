package database

import (
	"context"
	"fmt"
	"log"
)

// SeedProducts insère quelques produits de démonstration au premier démarrage.
// Ne fait rien si le catalogue n'est pas vide.
func SeedProducts(ctx context.Context) error {
	var count int
	if err := DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if count > 0 {
		return nil
	}

	samples := []struct {
		name        string
		price       float64
		description string
	}{
		{"Smartphone", 699.99, "Latest Android smartphone with high-end specs"},
		{"Laptop", 1299.99, "Lightweight laptop perfect for work and play"},
		{"Wireless Headphones", 199.99, "Noise-cancelling, long battery life"},
		{"Gaming Mouse", 59.99, "RGB, high DPI, ultra-responsive"},
		{"4K Monitor", 349.99, "Ultra HD monitor for work and gaming"},
	}

	for _, s := range samples {
		_, err := DB.ExecContext(ctx,
			`INSERT INTO products (name, price, description) VALUES ($1, $2, $3)`,
			s.name, s.price, s.description)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	log.Println("✅ Produits d'exemple ajoutés")
	return nil
}
