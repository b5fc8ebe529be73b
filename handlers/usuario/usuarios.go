package usuario

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/utils/response"
	"github.com/icei-ads/portal-eventos/utils/validation"
)

// UsuarioHandler handles user registry requests
type UsuarioHandler struct {
	db *gorm.DB
}

// NewUsuarioHandler creates a new user handler
func NewUsuarioHandler(db *gorm.DB) *UsuarioHandler {
	return &UsuarioHandler{db: db}
}

// CreateUsuarioRequest represents the request body for registering a user
type CreateUsuarioRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Cargo string `json:"cargo"`
}

// UpdateUsuarioRequest represents the request body for updating a user.
// Empty fields keep their current value; email is immutable.
type UpdateUsuarioRequest struct {
	Nome  string `json:"nome"`
	Senha string `json:"senha"`
	Cargo string `json:"cargo"`
}

// ListUsuarios handles GET /api/usuarios
func (h *UsuarioHandler) ListUsuarios(c *fiber.Ctx) error {
	var usuarios []model.Usuario
	if err := h.db.Find(&usuarios).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar usuários")
	}

	resumos := make([]model.UsuarioResumo, len(usuarios))
	for i := range usuarios {
		resumos[i] = usuarios[i].Resumo()
	}
	return response.Success(c, resumos)
}

// CreateUsuario handles POST /api/usuarios
func (h *UsuarioHandler) CreateUsuario(c *fiber.Ctx) error {
	var req CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Todos os campos são obrigatórios")
	}

	req.Nome = validation.SanitizeString(req.Nome)
	req.Email = validation.SanitizeString(req.Email)
	req.Cargo = validation.SanitizeString(req.Cargo)

	if req.Nome == "" || req.Email == "" || req.Senha == "" || req.Cargo == "" {
		return response.BadRequest(c, "Todos os campos são obrigatórios")
	}
	if !validation.ValidateEmail(req.Email) {
		return response.BadRequest(c, "Email inválido")
	}

	var existing model.Usuario
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "Email já cadastrado")
	} else if err != gorm.ErrRecordNotFound {
		return response.InternalServerError(c, "Erro ao criar usuário")
	}

	usuario := model.Usuario{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
		Cargo: req.Cargo,
	}
	if err := h.db.Create(&usuario).Error; err != nil {
		return response.InternalServerError(c, "Erro ao criar usuário")
	}

	return response.Success(c, usuario.Resumo())
}

// UpdateUsuario handles PUT /api/usuarios/:id
func (h *UsuarioHandler) UpdateUsuario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var req UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Corpo da requisição inválido")
	}

	var usuario model.Usuario
	if err := h.db.First(&usuario, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao atualizar usuário")
	}

	if req.Nome != "" {
		usuario.Nome = validation.SanitizeString(req.Nome)
	}
	if req.Senha != "" {
		usuario.Senha = req.Senha
	}
	if req.Cargo != "" {
		usuario.Cargo = validation.SanitizeString(req.Cargo)
	}

	if err := h.db.Save(&usuario).Error; err != nil {
		return response.InternalServerError(c, "Erro ao atualizar usuário")
	}

	return response.Success(c, usuario.Resumo())
}

// DeleteUsuario handles DELETE /api/usuarios/:id
func (h *UsuarioHandler) DeleteUsuario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "ID inválido")
	}

	var usuario model.Usuario
	if err := h.db.First(&usuario, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Usuário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao deletar usuário")
	}

	if err := h.db.Delete(&usuario).Error; err != nil {
		return response.InternalServerError(c, "Erro ao deletar usuário")
	}

	return response.Message(c, "Usuário deletado com sucesso")
}
