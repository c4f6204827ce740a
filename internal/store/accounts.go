package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"velora_back_end/internal/models"
	"velora_back_end/internal/utils"
)

// AccountStore gère les comptes utilisateurs. Le mot de passe passe toujours
// par le hasher avant d'atteindre la base : jamais de plaintext persisté ni loggé.
type AccountStore struct {
	db     DBTX
	hasher utils.PasswordHasher
}

func NewAccountStore(db DBTX, hasher utils.PasswordHasher) *AccountStore {
	return &AccountStore{db: db, hasher: hasher}
}

// Create crée un compte. Retourne ErrDuplicate si le nom est déjà pris
// (contrainte UNIQUE, SQLSTATE 23505).
func (s *AccountStore) Create(ctx context.Context, username, password string) (*models.User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash mot de passe: %w", err)
	}

	user := &models.User{Username: username, Password: digest}
	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`

	if err := s.db.QueryRowContext(ctx, query, username, digest).Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// VerifyCredentials retourne l'utilisateur si le couple username/password
// correspond, nil sinon. Nom inconnu et mauvais mot de passe produisent
// exactement le même résultat.
func (s *AccountStore) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password FROM users WHERE username = $1`

	err := s.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil || !ok {
		return nil, nil
	}

	return user, nil
}

// GetByID retourne un utilisateur par identifiant, ErrNotFound sinon.
func (s *AccountStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username FROM users WHERE id = $1`

	err := s.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
