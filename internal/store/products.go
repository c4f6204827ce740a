package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"velora_back_end/internal/models"
)

type ProductStore struct {
	db DBTX
}

func NewProductStore(db DBTX) *ProductStore {
	return &ProductStore{db: db}
}

// ProductUpdate porte une mise à jour partielle : seuls les champs non-nil
// écrasent la valeur stockée.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// List retourne le catalogue complet, trié par id (ordre d'insertion).
func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, price, description FROM products ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	products := []models.Product{} // jamais nil : le catalogue vide sérialise en []
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return products, nil
}

func (s *ProductStore) Get(ctx context.Context, id int64) (*models.Product, error) {
	p := &models.Product{}
	query := `SELECT id, name, price, description FROM products WHERE id = $1`

	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (s *ProductStore) Create(ctx context.Context, name string, price float64, description string) (*models.Product, error) {
	p := &models.Product{Name: name, Price: price, Description: description}
	query := `INSERT INTO products (name, price, description) VALUES ($1, $2, $3) RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, name, price, description).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// Update applique une mise à jour partielle et retourne le produit à jour.
// Un update vide est un no-op qui retourne l'état courant.
func (s *ProductStore) Update(ctx context.Context, id int64, upd ProductUpdate) (*models.Product, error) {
	sets := []string{}
	args := []any{}

	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Price != nil {
		args = append(args, *upd.Price)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}

	if len(sets) == 0 {
		return s.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING id, name, price, description",
		strings.Join(sets, ", "), len(args),
	)

	p := &models.Product{}
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Price, &p.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

// Delete supprime la ligne. Ne cascade pas dans les paniers : les références
// pendantes sont filtrées à la lecture, pas à la suppression.
func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByIDs résout un lot d'identifiants en map id → produit. Les ids qui ne
// résolvent plus sont simplement absents du résultat : c'est ce qui permet au
// panier d'ignorer silencieusement ses références pendantes.
func (s *ProductStore) GetByIDs(ctx context.Context, ids []int64) (map[int64]models.Product, error) {
	found := make(map[int64]models.Product, len(ids))
	seen := make(map[int64]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		p, err := s.Get(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		found[p.ID] = *p
	}

	return found, nil
}
