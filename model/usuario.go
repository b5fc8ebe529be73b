package model

import "time"

// Usuario represents a portal account (students, professors, coordinators).
// Senha is stored and compared as plain text to keep parity with the legacy
// portal login; it is never serialized in responses.
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"not null" json:"-"`
	Cargo     string    `gorm:"type:varchar(40);not null" json:"cargo"` // Aluno, Professor, Coordenador, ...
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Comentarios []ComentarioEvento `gorm:"foreignKey:UsuarioID" json:"-"`
}

// UsuarioResumo is the public projection returned by login and user listings.
type UsuarioResumo struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
}

// Resumo strips the credential fields from a Usuario.
func (u *Usuario) Resumo() UsuarioResumo {
	return UsuarioResumo{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
		Cargo: u.Cargo,
	}
}
