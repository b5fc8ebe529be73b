package comentario

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// ComentarioHandler handles event comment requests. All routes are scoped
// under /api/eventos/:eventoId/comentarios.
type ComentarioHandler struct {
	db *gorm.DB
}

// NewComentarioHandler creates a new comment handler
func NewComentarioHandler(db *gorm.DB) *ComentarioHandler {
	return &ComentarioHandler{db: db}
}

// CreateComentarioRequest represents the request body for posting a comment.
// UsuarioID is optional; anonymous comments carry only a display name.
type CreateComentarioRequest struct {
	UsuarioID *uint  `json:"usuarioId"`
	Autor     string `json:"autor"`
	Conteudo  string `json:"conteudo"`
}

// UpdateComentarioRequest represents the request body for editing a comment
type UpdateComentarioRequest struct {
	Conteudo string `json:"conteudo"`
}

// ListComentarios handles GET /api/eventos/:eventoId/comentarios, newest
// first
func (h *ComentarioHandler) ListComentarios(c *fiber.Ctx) error {
	eventoID, err := c.ParamsInt("eventoId")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var comentarios []model.ComentarioEvento
	err = h.db.Where("evento_id = ?", eventoID).
		Preload("Usuario").
		Order("criado_em DESC").
		Find(&comentarios).Error
	if err != nil {
		return response.InternalServerError(c, "Erro ao buscar comentários")
	}

	return response.Success(c, comentarios)
}

// CreateComentario handles POST /api/eventos/:eventoId/comentarios
func (h *ComentarioHandler) CreateComentario(c *fiber.Ctx) error {
	eventoID, err := c.ParamsInt("eventoId")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req CreateComentarioRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Autor e conteúdo são obrigatórios")
	}

	if req.Autor == "" || req.Conteudo == "" {
		return response.BadRequest(c, "Autor e conteúdo são obrigatórios")
	}

	var evento model.Evento
	if err := h.db.First(&evento, eventoID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Evento não encontrado")
		}
		return response.InternalServerError(c, "Erro ao criar comentário")
	}

	comentario := model.ComentarioEvento{
		EventoID:  uint(eventoID),
		UsuarioID: req.UsuarioID,
		Autor:     req.Autor,
		Conteudo:  req.Conteudo,
	}
	if err := h.db.Create(&comentario).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar comentário")
	}

	if comentario.UsuarioID != nil {
		h.db.Preload("Usuario").First(&comentario, comentario.ID)
	}
	return response.Created(c, comentario)
}

// UpdateComentario handles PUT /api/eventos/:eventoId/comentarios/:comentarioId
func (h *ComentarioHandler) UpdateComentario(c *fiber.Ctx) error {
	eventoID, err := c.ParamsInt("eventoId")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}
	comentarioID, err := c.ParamsInt("comentarioId")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req UpdateComentarioRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Conteúdo é obrigatório")
	}
	if req.Conteudo == "" {
		return response.BadRequest(c, "Conteúdo é obrigatório")
	}

	var comentario model.ComentarioEvento
	if err := h.db.First(&comentario, comentarioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Comentário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar comentário")
	}

	if comentario.EventoID != uint(eventoID) {
		return response.BadRequest(c, "Comentário não pertence a este evento")
	}

	comentario.Conteudo = req.Conteudo
	if err := h.db.Save(&comentario).Error; err != nil {
		return response.InternalServerError(c, "Erro ao atualizar comentário")
	}

	if comentario.UsuarioID != nil {
		h.db.Preload("Usuario").First(&comentario, comentario.ID)
	}
	return response.Success(c, comentario)
}

// DeleteComentario handles DELETE /api/eventos/:eventoId/comentarios/:comentarioId
func (h *ComentarioHandler) DeleteComentario(c *fiber.Ctx) error {
	eventoID, err := c.ParamsInt("eventoId")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}
	comentarioID, err := c.ParamsInt("comentarioId")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var comentario model.ComentarioEvento
	if err := h.db.First(&comentario, comentarioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Comentário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar comentário")
	}

	if comentario.EventoID != uint(eventoID) {
		return response.BadRequest(c, "Comentário não pertence a este evento")
	}

	if err := h.db.Delete(&comentario).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar comentário")
	}

	return response.Message(c, "Comentário deletado com sucesso")
}
