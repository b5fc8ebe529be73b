package model

import "time"

// ProfessorCoordenador is a project coordinator identity. It is intentionally
// disjoint from Usuario: the two tables share no foreign key and an email can
// exist in both.
type ProfessorCoordenador struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"not null" json:"-"`
	Curso     string    `gorm:"not null" json:"curso"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	ProjetosPesquisa []ProjetoPesquisa `gorm:"foreignKey:ProfessorCoordenadorID" json:"-"`
	ProjetosExtensao []ProjetoExtensao `gorm:"foreignKey:ProfessorCoordenadorID" json:"-"`
}
