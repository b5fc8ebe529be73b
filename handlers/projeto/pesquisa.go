package projeto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/services/agenda"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// ProjetoHandler handles research and extension project requests
type ProjetoHandler struct {
	db *gorm.DB
}

// NewProjetoHandler creates a new project handler
func NewProjetoHandler(db *gorm.DB) *ProjetoHandler {
	return &ProjetoHandler{db: db}
}

// PesquisaRequest represents the request body for a research project
type PesquisaRequest struct {
	Titulo                 string  `json:"titulo"`
	AreaTematica           string  `json:"areaTematica"`
	Descricao              string  `json:"descricao"`
	MomentoOcorre          string  `json:"momentoOcorre"`
	ProblemaPesquisa       string  `json:"problemaPesquisa"`
	Metodologia            string  `json:"metodologia"`
	ResultadosEsperados    string  `json:"resultadosEsperados"`
	Imagem                 *string `json:"imagem"`
	ProfessorCoordenadorID uint    `json:"professorCoordenadorId"`
}

// ListPesquisa handles GET /api/projetos-pesquisa
func (h *ProjetoHandler) ListPesquisa(c *fiber.Ctx) error {
	var projetos []model.ProjetoPesquisa
	if err := h.db.Preload("ProfessorCoordenador").Find(&projetos).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar projetos de pesquisa")
	}
	return response.Success(c, projetos)
}

// CreatePesquisa handles POST /api/projetos-pesquisa. The coordinator
// reference is checked only by the foreign key constraint.
func (h *ProjetoHandler) CreatePesquisa(c *fiber.Ctx) error {
	var req PesquisaRequest
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

	projeto := model.ProjetoPesquisa{
		Titulo:                 req.Titulo,
		AreaTematica:           req.AreaTematica,
		Descricao:              req.Descricao,
		MomentoOcorre:          momento,
		ProblemaPesquisa:       req.ProblemaPesquisa,
		Metodologia:            req.Metodologia,
		ResultadosEsperados:    req.ResultadosEsperados,
		Imagem:                 req.Imagem,
		ProfessorCoordenadorID: req.ProfessorCoordenadorID,
	}
	if err := h.db.Create(&projeto).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar projeto de pesquisa")
	}

	return response.Success(c, projeto)
}

// UpdatePesquisa handles PUT /api/projetos-pesquisa/:id
func (h *ProjetoHandler) UpdatePesquisa(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req PesquisaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	var projeto model.ProjetoPesquisa
	if err := h.db.First(&projeto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Projeto não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar projeto de pesquisa")
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
	if req.ProblemaPesquisa != "" {
		projeto.ProblemaPesquisa = req.ProblemaPesquisa
	}
	if req.Metodologia != "" {
		projeto.Metodologia = req.Metodologia
	}
	if req.ResultadosEsperados != "" {
		projeto.ResultadosEsperados = req.ResultadosEsperados
	}
	if req.Imagem != nil {
		projeto.Imagem = req.Imagem
	}
	if req.ProfessorCoordenadorID != 0 {
		projeto.ProfessorCoordenadorID = req.ProfessorCoordenadorID
	}

	if err := h.db.Save(&projeto).Error; err != nil {
		return response.InternalServerError(c, "Erro ao atualizar projeto de pesquisa")
	}

	return response.Success(c, projeto)
}

// DeletePesquisa handles DELETE /api/projetos-pesquisa/:id
func (h *ProjetoHandler) DeletePesquisa(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var projeto model.ProjetoPesquisa
	if err := h.db.First(&projeto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Projeto não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar projeto de pesquisa")
	}

	if err := h.db.Delete(&projeto).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar projeto de pesquisa")
	}

	return response.Message(c, "Projeto deletado com sucesso")
}
