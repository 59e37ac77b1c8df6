package entities

import "time"

// DiaryEntry represents a single diary entry in the database. An entry
// has exactly one owner and is only visible through requests
// authenticated as that owner.
type DiaryEntry struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"usuario_id"`
	Conteudo  string     `json:"conteudo"`
	Humor     string     `json:"humor"`
	EntryDate time.Time  `json:"data_entrada"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // Soft-delete marker
}
