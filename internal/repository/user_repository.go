package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"moodly-be/internal/entities"
)

// ErrNotFound is returned when a query matches no row. Callers decide
// how to report it; the repository never guesses at HTTP semantics.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(nome, email, senhaHash string) (int64, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user and returns the generated id
func (r *userRepository) Create(nome, email, senhaHash string) (int64, error) {
	query := `
		INSERT INTO usuarios (nome, email, senha_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(query, nome, email, senhaHash).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

// FindByEmail finds a non-deleted user by email. Email comparison is
// exact; collation is left to the database.
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT id, nome, email, senha_hash, created_at, updated_at
		FROM usuarios
		WHERE email = $1 AND deleted_at IS NULL
	`

	var user entities.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Nome,
		&user.Email,
		&user.SenhaHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindByID finds a non-deleted user by id
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	query := `
		SELECT id, nome, email, senha_hash, created_at, updated_at
		FROM usuarios
		WHERE id = $1 AND deleted_at IS NULL
	`

	var user entities.User
	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Nome,
		&user.Email,
		&user.SenhaHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}
