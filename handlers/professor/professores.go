package professor

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/utils/response"
	"github.com/icei-ads/portal-eventos/utils/validation"
)

// ProfessorHandler handles coordinator registry requests
type ProfessorHandler struct {
	db *gorm.DB
}

// NewProfessorHandler creates a new coordinator handler
func NewProfessorHandler(db *gorm.DB) *ProfessorHandler {
	return &ProfessorHandler{db: db}
}

// ProfessorRequest represents the request body for creating or updating a
// coordinator
type ProfessorRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Curso string `json:"curso"`
}

// ListProfessores handles GET /api/professores
func (h *ProfessorHandler) ListProfessores(c *fiber.Ctx) error {
	var professores []model.ProfessorCoordenador
	if err := h.db.Find(&professores).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar professores")
	}
	return response.Success(c, professores)
}

// CreateProfessor handles POST /api/professores
func (h *ProfessorHandler) CreateProfessor(c *fiber.Ctx) error {
	var req ProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Todos os campos são obrigatórios")
	}

	req.Nome = validation.SanitizeString(req.Nome)
	req.Email = validation.SanitizeString(req.Email)
	req.Curso = validation.SanitizeString(req.Curso)

	if req.Nome == "" || req.Email == "" || req.Senha == "" || req.Curso == "" {
		return response.BadRequest(c, "Todos os campos são obrigatórios")
	}
	if !validation.ValidateEmail(req.Email) {
		return response.BadRequest(c, "Email inválido")
	}

	var existing model.ProfessorCoordenador
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Email já cadastrado")
	} else if err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Erro ao criar professor")
	}

	professor := model.ProfessorCoordenador{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Curso: req.Curso,
	}
	if err := h.db.Create(&professor).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar professor")
	}

	return response.Success(c, professor)
}

// UpdateProfessor handles PUT /api/professores/:id
func (h *ProfessorHandler) UpdateProfessor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req ProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	var professor model.ProfessorCoordenador
	if err := h.db.First(&professor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Professor não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar professor")
	}

	if req.Nome != "" {
		professor.Nome = validation.SanitizeString(req.Nome)
	}
	if req.Email != "" {
		professor.Email = validation.SanitizeString(req.Email)
	}
	if req.Senha != "" {
		professor.Senha = req.Senha
	}
	if req.Curso != "" {
		professor.Curso = validation.SanitizeString(req.Curso)
	}

	if err := h.db.Save(&professor).Error; err != nil {
		return response.InternalServerError(c, "Erro ao atualizar professor")
	}

	return response.Success(c, professor)
}

// DeleteProfessor handles DELETE /api/professores/:id
func (h *ProfessorHandler) DeleteProfessor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var professor model.ProfessorCoordenador
	if err := h.db.First(&professor, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Professor não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar professor")
	}

	if err := h.db.Delete(&professor).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar professor")
	}

	return response.Message(c, "Professor deletado com sucesso")
}
