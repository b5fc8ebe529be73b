package model

import "time"

// ComentarioEvento is a comment posted under an event. UsuarioID is nullable,
// anonymous comments are allowed; Autor is a free-text display name and may
// differ from the linked account's stored name.
type ComentarioEvento struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventoID     uint      `gorm:"not null;index" json:"eventoId"`
	UsuarioID    *uint     `json:"usuarioId"`
	Autor        string    `gorm:"not null" json:"autor"`
	Conteudo     string    `gorm:"type:text;not null" json:"conteudo"`
	CriadoEm     time.Time `gorm:"autoCreateTime" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime" json:"atualizadoEm"`

	// Relationships
	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
}
