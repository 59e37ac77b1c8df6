package models

// DiaryEntryRequest represents the request body for creating or updating
// a diary entry. DataEntrada must be a YYYY-MM-DD date string.
type DiaryEntryRequest struct {
	Conteudo    string `json:"conteudo" binding:"required"`
	Humor       string `json:"humor" binding:"required"`
	DataEntrada string `json:"data_entrada" binding:"required"`
}
