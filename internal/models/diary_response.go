package models

// DiaryEntryResponse represents a single diary entry as returned by the
// list endpoint.
type DiaryEntryResponse struct {
	ID          int64  `json:"id"`
	Conteudo    string `json:"conteudo"`
	Humor       string `json:"humor"`
	DataEntrada string `json:"data_entrada"` // YYYY-MM-DD
}

// CreateEntryResponse represents the response after creating a diary entry
type CreateEntryResponse struct {
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}
