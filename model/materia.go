package model

import (
	"time"

	"gorm.io/datatypes"
)

// Materia groups coordinators and projects under an academic program. The id
// lists are denormalized JSON columns mirroring the legacy schema; they are
// not enforced as many-to-many tables.
type Materia struct {
	ID                               uint                      `gorm:"primaryKey" json:"id"`
	Nome                             string                    `gorm:"not null;uniqueIndex" json:"nome"`
	Descricao                        string                    `gorm:"type:text" json:"descricao"`
	ProfessorCoordenadorPesquisaIds  datatypes.JSONSlice[uint] `json:"professorCoordenadorPesquisaIds"`
	ProfessorCoordenadorExtensaoIds  datatypes.JSONSlice[uint] `json:"professorCoordenadorExtensaoIds"`
	ProjetoPesquisaIds               datatypes.JSONSlice[uint] `json:"projetoPesquisaIds"`
	ProjetoExtensaoIds               datatypes.JSONSlice[uint] `json:"projetoExtensaoIds"`
	CreatedAt                        time.Time                 `json:"createdAt"`
	UpdatedAt                        time.Time                 `json:"updatedAt"`
}
