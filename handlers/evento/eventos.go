package evento

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/services/agenda"
	"github.com/icei-ads/portal-eventos/services/formgen"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// EventoHandler handles event requests
type EventoHandler struct {
	db *gorm.DB
}

// NewEventoHandler creates a new event handler
func NewEventoHandler(db *gorm.DB) *EventoHandler {
	return &EventoHandler{db: db}
}

// EventoRequest represents the request body for creating or updating an
// event. On update, nil pointer fields keep their current value and empty
// strings clear the column, mirroring how the front end submits the form.
type EventoRequest struct {
	Titulo        string   `json:"titulo"`
	Data          string   `json:"data"`
	Responsavel   string   `json:"responsavel"`
	Status        string   `json:"status"`
	Local         *string  `json:"local"`
	Curso         string   `json:"curso"`
	TipoEvento    string   `json:"tipoEvento"`
	Modalidade    string   `json:"modalidade"`
	Descricao     *string  `json:"descricao"`
	Imagem        *string  `json:"imagem"`
	Documento     *string  `json:"documento"`
	Link          *string  `json:"link"`
	OdsAssociadas []int    `json:"odsAssociadas"`
	Anexos        []string `json:"anexos"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// normalize guarantees the association slices serialize as [] instead of
// null so list views never have to nil-check.
func normalize(e *model.Evento) {
	if e.OdsAssociadas == nil {
		e.OdsAssociadas = make([]model.OdsEvento, 0)
	}
	if e.Anexos == nil {
		e.Anexos = make([]model.AnexoEvento, 0)
	}
}

// ListEventos handles GET /api/eventos, newest first
func (h *EventoHandler) ListEventos(c *fiber.Ctx) error {
	var eventos []model.Evento
	err := h.db.Preload("OdsAssociadas").Preload("Anexos").
		Order("data DESC").Find(&eventos).Error
	if err != nil {
		return response.InternalServerError(c, "Erro ao buscar eventos")
	}

	for i := range eventos {
		normalize(&eventos[i])
	}
	return response.Success(c, eventos)
}

// GetEvento handles GET /api/eventos/:id
func (h *EventoHandler) GetEvento(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var evento model.Evento
	err = h.db.Preload("OdsAssociadas").Preload("Anexos").First(&evento, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Evento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao buscar evento")
	}

	normalize(&evento)
	return response.Success(c, evento)
}

// CreateEvento handles POST /api/eventos
func (h *EventoHandler) CreateEvento(c *fiber.Ctx) error {
	var req EventoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Campos obrigatórios faltando")
	}

	if req.Titulo == "" || req.Data == "" || req.Responsavel == "" ||
		req.Status == "" || req.TipoEvento == "" || req.Modalidade == "" {
		return response.BadRequest(c, "Campos obrigatórios faltando")
	}

	data, err := agenda.ParseEventDate(req.Data, time.Local)
	if err != nil {
		return response.BadRequest(c, "Data inválida")
	}

	if err := formgen.ValidateModalidade(req.Modalidade, deref(req.Local), deref(req.Link)); err != nil {
		return response.BadRequest(c, err.Error())
	}

	evento := model.Evento{
		Titulo:        req.Titulo,
		Data:          data,
		Responsavel:   req.Responsavel,
		Status:        req.Status,
		Local:         emptyToNil(req.Local),
		Curso:         req.Curso,
		TipoEvento:    req.TipoEvento,
		Modalidade:    req.Modalidade,
		Descricao:     req.Descricao,
		Imagem:        req.Imagem,
		Documento:     req.Documento,
		Link:          emptyToNil(req.Link),
		OdsAssociadas: make([]model.OdsEvento, 0, len(req.OdsAssociadas)),
		Anexos:        make([]model.AnexoEvento, 0, len(req.Anexos)),
	}
	for _, ods := range req.OdsAssociadas {
		evento.OdsAssociadas = append(evento.OdsAssociadas, model.OdsEvento{OdsNumero: ods})
	}
	for _, nome := range req.Anexos {
		evento.Anexos = append(evento.Anexos, model.AnexoEvento{Nome: nome})
	}

	if err := h.db.Create(&evento).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar evento")
	}

	normalize(&evento)
	return response.Success(c, evento)
}

// UpdateEvento handles PUT /api/eventos/:id. Scalar fields are merged over
// the stored row; tag and attachment rows are replaced wholesale from the
// payload inside a single transaction.
func (h *EventoHandler) UpdateEvento(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req EventoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	var evento model.Evento
	if err := h.db.First(&evento, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Evento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar evento")
	}

	if req.Titulo != "" {
		evento.Titulo = req.Titulo
	}
	if req.Data != "" {
		data, err := agenda.ParseEventDate(req.Data, time.Local)
		if err != nil {
			return response.BadRequest(c, "Data inválida")
		}
		evento.Data = data
	}
	if req.Responsavel != "" {
		evento.Responsavel = req.Responsavel
	}
	if req.Status != "" {
		evento.Status = req.Status
	}
	if req.Local != nil {
		evento.Local = emptyToNil(req.Local)
	}
	if req.Curso != "" {
		evento.Curso = req.Curso
	}
	if req.TipoEvento != "" {
		evento.TipoEvento = req.TipoEvento
	}
	if req.Modalidade != "" {
		evento.Modalidade = req.Modalidade
	}
	if req.Descricao != nil {
		evento.Descricao = req.Descricao
	}
	if req.Imagem != nil && *req.Imagem != "" {
		evento.Imagem = req.Imagem
	}
	if req.Documento != nil && *req.Documento != "" {
		evento.Documento = req.Documento
	}
	if req.Link != nil {
		evento.Link = emptyToNil(req.Link)
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("evento_id = ?", evento.ID).Delete(&model.OdsEvento{}).Error; err != nil {
			return err
		}
		if err := tx.Where("evento_id = ?", evento.ID).Delete(&model.AnexoEvento{}).Error; err != nil {
			return err
		}

		for _, ods := range req.OdsAssociadas {
			row := model.OdsEvento{EventoID: evento.ID, OdsNumero: ods}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, nome := range req.Anexos {
			row := model.AnexoEvento{EventoID: evento.ID, Nome: nome}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return tx.Omit("OdsAssociadas", "Anexos").Save(&evento).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Erro ao atualizar evento")
	}

	var updated model.Evento
	err = h.db.Preload("OdsAssociadas").Preload("Anexos").First(&updated, evento.ID).Error
	if err != nil {
		return response.InternalServerError(c, "Erro ao atualizar evento")
	}

	normalize(&updated)
	return response.Success(c, updated)
}

// DeleteEvento handles DELETE /api/eventos/:id. Tag, attachment and comment
// rows cascade with the event.
func (h *EventoHandler) DeleteEvento(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var evento model.Evento
	if err := h.db.First(&evento, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Evento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar evento")
	}

	if err := h.db.Select("OdsAssociadas", "Anexos", "Comentarios").Delete(&evento).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar evento")
	}

	return response.Message(c, "Evento deletado com sucesso")
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
