package projeto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/services/agenda"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// ExtensaoRequest represents the request body for an extension project
type ExtensaoRequest struct {
	Titulo                 string  `json:"titulo"`
	AreaTematica           string  `json:"areaTematica"`
	Descricao              string  `json:"descricao"`
	MomentoOcorre          string  `json:"momentoOcorre"`
	TipoPessoasProcuram    string  `json:"tipoPessoasProcuram"`
	ComunidadeEnvolvida    string  `json:"comunidadeEnvolvida"`
	Imagem                 *string `json:"imagem"`
	ProfessorCoordenadorID uint    `json:"professorCoordenadorId"`
}

// ListExtensao handles GET /api/projetos-extensao
func (h *ProjetoHandler) ListExtensao(c *fiber.Ctx) error {
	var projetos []model.ProjetoExtensao
	if err := h.db.Preload("ProfessorCoordenador").Find(&projetos).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar projetos de extensão")
	}
	return response.Success(c, projetos)
}

// CreateExtensao handles POST /api/projetos-extensao
func (h *ProjetoHandler) CreateExtensao(c *fiber.Ctx) error {
	var req ExtensaoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Campos obrigatórios faltando")
	}

	if req.Titulo == "" || req.AreaTematica == "" || req.MomentoOcorre == "" ||
		req.ProfessorCoordenadorID == 0 {
		return response.BadRequest(c, "Campos obrigatórios faltando")
	}

	momento, err := agenda.ParseEventDate(req.MomentoOcorre, time.Local)
	if err != nil {
		return response.BadRequest(c, "Data inválida")
	}

	projeto := model.ProjetoExtensao{
		Titulo:                 req.Titulo,
		AreaTematica:           req.AreaTematica,
		Descricao:              req.Descricao,
		MomentoOcorre:          momento,
		TipoPessoasProcuram:    req.TipoPessoasProcuram,
		ComunidadeEnvolvida:    req.ComunidadeEnvolvida,
		Imagem:                 req.Imagem,
		ProfessorCoordenadorID: req.ProfessorCoordenadorID,
	}
	if err := h.db.Create(&projeto).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar projeto de extensão")
	}

	return response.Success(c, projeto)
}

// UpdateExtensao handles PUT /api/projetos-extensao/:id
func (h *ProjetoHandler) UpdateExtensao(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req ExtensaoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	var projeto model.ProjetoExtensao
	if err := h.db.First(&projeto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Projeto não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar projeto de extensão")
	}

	if req.Titulo != "" {
		projeto.Titulo = req.Titulo
	}
	if req.AreaTematica != "" {
		projeto.AreaTematica = req.AreaTematica
	}
	if req.Descricao != "" {
		projeto.Descricao = req.Descricao
	}
	if req.MomentoOcorre != "" {
		momento, err := agenda.ParseEventDate(req.MomentoOcorre, time.Local)
		if err != nil {
			return response.BadRequest(c, "Data inválida")
		}
		projeto.MomentoOcorre = momento
	}
	if req.TipoPessoasProcuram != "" {
		projeto.TipoPessoasProcuram = req.TipoPessoasProcuram
	}
	if req.ComunidadeEnvolvida != "" {
		projeto.ComunidadeEnvolvida = req.ComunidadeEnvolvida
	}
	if req.Imagem != nil {
		projeto.Imagem = req.Imagem
	}
	if req.ProfessorCoordenadorID != 0 {
		projeto.ProfessorCoordenadorID = req.ProfessorCoordenadorID
	}

	if err := h.db.Save(&projeto).Error; err != nil {
		return response.InternalServerError(c, "Erro ao atualizar projeto de extensão")
	}

	return response.Success(c, projeto)
}

// DeleteExtensao handles DELETE /api/projetos-extensao/:id
func (h *ProjetoHandler) DeleteExtensao(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var projeto model.ProjetoExtensao
	if err := h.db.First(&projeto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Projeto não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar projeto de extensão")
	}

	if err := h.db.Delete(&projeto).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar projeto de extensão")
	}

	return response.Message(c, "Projeto deletado com sucesso")
}
