package model

import "time"

// Event status values
const (
	StatusConfirmado = "Confirmado"
	StatusPendente   = "Pendente"
	StatusCancelado  = "Cancelado"
)

// Event delivery modes
const (
	ModalidadePresencial = "Presencial"
	ModalidadeOnline     = "Online"
	ModalidadeHibrido    = "Híbrido"
)

// Evento is a news/event item published by the course staff.
// Imagem and Documento hold base64 data URLs; the portal keeps binaries
// inline in the database instead of using object storage.
type Evento struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Titulo      string    `gorm:"not null" json:"titulo"`
	Data        time.Time `gorm:"not null" json:"data"`
	Responsavel string    `gorm:"not null" json:"responsavel"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status"`
	Local       *string   `json:"local"`
	Curso       string    `json:"curso"`
	TipoEvento  string    `gorm:"not null" json:"tipoEvento"`
	Modalidade  string    `gorm:"type:varchar(20);not null" json:"modalidade"`
	Descricao   *string   `gorm:"type:text" json:"descricao"`
	Imagem      *string   `gorm:"type:text" json:"imagem"`
	Documento   *string   `gorm:"type:text" json:"documento"`
	Link        *string   `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relationships
	OdsAssociadas []OdsEvento        `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE" json:"odsAssociadas"`
	Anexos        []AnexoEvento      `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE" json:"anexos"`
	Comentarios   []ComentarioEvento `gorm:"foreignKey:EventoID;constraint:OnDelete:CASCADE" json:"-"`
}

// OdsEvento links an event to one UN Sustainable Development Goal (1-17).
// Each association is its own row; tag sets are replaced wholesale on update.
type OdsEvento struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	EventoID  uint `gorm:"not null;index" json:"eventoId"`
	OdsNumero int  `gorm:"not null" json:"odsNumero"`
}

// AnexoEvento stores attachment names only. The bytes of the first uploaded
// file land in the parent event's Documento field (legacy first-file-wins
// behavior, kept for parity).
type AnexoEvento struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	EventoID uint   `gorm:"not null;index" json:"eventoId"`
	Nome     string `gorm:"not null" json:"nome"`
}
