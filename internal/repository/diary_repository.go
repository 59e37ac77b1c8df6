package repository

import (
	"database/sql"
	"fmt"

	"moodly-be/internal/entities"
)

// DiaryRepository defines the interface for diary entry database
// operations. Every query is keyed by the owning user id, so rows
// belonging to other users are unreachable by construction. Mutations
// are single conditioned statements; RowsAffected == 0 means the entry
// is missing, soft-deleted, or owned by someone else — the repository
// cannot tell which, and neither can the caller.
type DiaryRepository interface {
	ListByUser(userID int64) ([]*entities.DiaryEntry, error)
	Create(userID int64, conteudo, humor, dataEntrada string) (int64, error)
	Update(userID, entryID int64, conteudo, humor, dataEntrada string) (bool, error)
	SoftDelete(userID, entryID int64) (bool, error)
}

type diaryRepository struct {
	db *sql.DB
}

// NewDiaryRepository creates a new diary repository
func NewDiaryRepository(db *sql.DB) DiaryRepository {
	return &diaryRepository{db: db}
}

// ListByUser returns all non-deleted entries owned by userID, most
// recent entry date first, ties broken by insertion recency.
func (r *diaryRepository) ListByUser(userID int64) ([]*entities.DiaryEntry, error) {
	query := `
		SELECT id, conteudo, humor, data_entrada
		FROM entradas_diario
		WHERE usuario_id = $1 AND deleted_at IS NULL
		ORDER BY data_entrada DESC, created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}
	defer rows.Close()

	entries := []*entities.DiaryEntry{}
	for rows.Next() {
		var entry entities.DiaryEntry
		if err := rows.Scan(&entry.ID, &entry.Conteudo, &entry.Humor, &entry.EntryDate); err != nil {
			return nil, fmt.Errorf("failed to scan diary entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}

	return entries, nil
}

// Create inserts a new entry owned by userID and returns the generated id
func (r *diaryRepository) Create(userID int64, conteudo, humor, dataEntrada string) (int64, error) {
	query := `
		INSERT INTO entradas_diario (usuario_id, conteudo, humor, data_entrada)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	if err := r.db.QueryRow(query, userID, conteudo, humor, dataEntrada).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create diary entry: %w", err)
	}

	return id, nil
}

// Update overwrites content, mood, and entry date of an entry owned by
// userID and refreshes its update timestamp. Returns false when no row
// matched.
func (r *diaryRepository) Update(userID, entryID int64, conteudo, humor, dataEntrada string) (bool, error) {
	query := `
		UPDATE entradas_diario
		SET conteudo = $1, humor = $2, data_entrada = $3, updated_at = NOW()
		WHERE id = $4 AND usuario_id = $5 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, conteudo, humor, dataEntrada, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to update diary entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to update diary entry: %w", err)
	}

	return affected > 0, nil
}

// SoftDelete sets the delete marker on an entry owned by userID. The
// row stays in storage; all reads filter it out. Returns false when no
// row matched, including when the marker was already set.
func (r *diaryRepository) SoftDelete(userID, entryID int64) (bool, error) {
	query := `
		UPDATE entradas_diario
		SET deleted_at = NOW()
		WHERE id = $1 AND usuario_id = $2 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete diary entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete diary entry: %w", err)
	}

	return affected > 0, nil
}
