package model

import "time"

// ProjetoPesquisa is a research project owned by a coordinator.
type ProjetoPesquisa struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Titulo                 string    `gorm:"not null" json:"titulo"`
	AreaTematica           string    `gorm:"not null" json:"areaTematica"`
	Descricao              string    `gorm:"type:text" json:"descricao"`
	MomentoOcorre          time.Time `gorm:"not null" json:"momentoOcorre"`
	ProblemaPesquisa       string    `gorm:"type:text" json:"problemaPesquisa"`
	Metodologia            string    `gorm:"type:text" json:"metodologia"`
	ResultadosEsperados    string    `gorm:"type:text" json:"resultadosEsperados"`
	Imagem                 *string   `gorm:"type:text" json:"imagem"`
	ProfessorCoordenadorID uint      `gorm:"not null;index" json:"professorCoordenadorId"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`

	// Relationships
	ProfessorCoordenador *ProfessorCoordenador `gorm:"foreignKey:ProfessorCoordenadorID" json:"professorCoordenador,omitempty"`
}

// ProjetoExtensao is a community extension project owned by a coordinator.
type ProjetoExtensao struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Titulo                 string    `gorm:"not null" json:"titulo"`
	AreaTematica           string    `gorm:"not null" json:"areaTematica"`
	Descricao              string    `gorm:"type:text" json:"descricao"`
	MomentoOcorre          time.Time `gorm:"not null" json:"momentoOcorre"`
	TipoPessoasProcuram    string    `gorm:"type:text" json:"tipoPessoasProcuram"`
	ComunidadeEnvolvida    string    `gorm:"type:text" json:"comunidadeEnvolvida"`
	Imagem                 *string   `gorm:"type:text" json:"imagem"`
	ProfessorCoordenadorID uint      `gorm:"not null;index" json:"professorCoordenadorId"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`

	// Relationships
	ProfessorCoordenador *ProfessorCoordenador `gorm:"foreignKey:ProfessorCoordenadorID" json:"professorCoordenador,omitempty"`
}
