package materia

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// MateriaHandler handles academic program requests
type MateriaHandler struct {
	db *gorm.DB
}

// NewMateriaHandler creates a new program handler
func NewMateriaHandler(db *gorm.DB) *MateriaHandler {
	return &MateriaHandler{db: db}
}

// MateriaRequest represents the request body for a program. The id lists
// are replaced wholesale when present; nil slices keep the stored lists.
type MateriaRequest struct {
	Nome                            string  `json:"nome"`
	Descricao                       string  `json:"descricao"`
	ProfessorCoordenadorPesquisaIds *[]uint `json:"professorCoordenadorPesquisaIds"`
	ProfessorCoordenadorExtensaoIds *[]uint `json:"professorCoordenadorExtensaoIds"`
	ProjetoPesquisaIds              *[]uint `json:"projetoPesquisaIds"`
	ProjetoExtensaoIds              *[]uint `json:"projetoExtensaoIds"`
}

// ListMaterias handles GET /api/materias
func (h *MateriaHandler) ListMaterias(c *fiber.Ctx) error {
	var materias []model.Materia
	if err := h.db.Find(&materias).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar matérias")
	}
	return response.Success(c, materias)
}

// CreateMateria handles POST /api/materias
func (h *MateriaHandler) CreateMateria(c *fiber.Ctx) error {
	var req MateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Campos obrigatórios faltando")
	}

	if req.Nome == "" {
		return response.BadRequest(c, "Campos obrigatórios faltando")
	}

	materia := model.Materia{
		Nome:      req.Nome,
		Descricao: req.Descricao,
	}
	materia.ProfessorCoordenadorPesquisaIds = toJSONSlice(req.ProfessorCoordenadorPesquisaIds)
	materia.ProfessorCoordenadorExtensaoIds = toJSONSlice(req.ProfessorCoordenadorExtensaoIds)
	materia.ProjetoPesquisaIds = toJSONSlice(req.ProjetoPesquisaIds)
	materia.ProjetoExtensaoIds = toJSONSlice(req.ProjetoExtensaoIds)

	if err := h.db.Create(&materia).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar matéria")
	}

	return response.Success(c, materia)
}

// UpdateMateria handles PUT /api/materias/:id
func (h *MateriaHandler) UpdateMateria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req MateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	var materia model.Materia
	if err := h.db.First(&materia, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Matéria não encontrada")
		}
		return response.InternalServerError(c, "Erro ao atualizar matéria")
	}

	if req.Nome != "" {
		materia.Nome = req.Nome
	}
	if req.Descricao != "" {
		materia.Descricao = req.Descricao
	}
	if req.ProfessorCoordenadorPesquisaIds != nil {
		materia.ProfessorCoordenadorPesquisaIds = toJSONSlice(req.ProfessorCoordenadorPesquisaIds)
	}
	if req.ProfessorCoordenadorExtensaoIds != nil {
		materia.ProfessorCoordenadorExtensaoIds = toJSONSlice(req.ProfessorCoordenadorExtensaoIds)
	}
	if req.ProjetoPesquisaIds != nil {
		materia.ProjetoPesquisaIds = toJSONSlice(req.ProjetoPesquisaIds)
	}
	if req.ProjetoExtensaoIds != nil {
		materia.ProjetoExtensaoIds = toJSONSlice(req.ProjetoExtensaoIds)
	}

	if err := h.db.Save(&materia).Error; err != nil {
		return response.InternalServerError(c, "Erro ao atualizar matéria")
	}

	return response.Success(c, materia)
}

// DeleteMateria handles DELETE /api/materias/:id
func (h *MateriaHandler) DeleteMateria(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var materia model.Materia
	if err := h.db.First(&materia, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Matéria não encontrada")
		}
		return response.InternalServerError(c, "Erro ao deletar matéria")
	}

	if err := h.db.Delete(&materia).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar matéria")
	}

	return response.Message(c, "Matéria deletada com sucesso")
}

func toJSONSlice(ids *[]uint) datatypes.JSONSlice[uint] {
	if ids == nil {
		return datatypes.NewJSONSlice([]uint{})
	}
	return datatypes.NewJSONSlice(*ids)
}
