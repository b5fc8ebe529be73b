package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/utils/auth"
	"github.com/icei-ads/portal-eventos/utils/response"
	"github.com/icei-ads/portal-eventos/utils/validation"
)

// AuthHandler handles login requests
type AuthHandler struct {
	db         *gorm.DB
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtManager: jwtManager,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse is the user summary plus a session token
type LoginResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Cargo string `json:"cargo"`
	Token string `json:"token,omitempty"`
}

// Login handles POST /api/login. The stored password is compared as plain
// text, matching the legacy portal; see DESIGN.md before deploying this.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Email e senha são obrigatórios")
	}

	req.Email = validation.SanitizeString(req.Email)
	if req.Email == "" || req.Senha == "" {
		return response.BadRequest(c, "Email e senha são obrigatórios")
	}

	var usuario model.Usuario
	if err := h.db.Where("email = ?", req.Email).First(&usuario).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.Unauthorized(c, "Usuário não encontrado")
		}
		return response.InternalServerError(c, "Erro ao fazer login")
	}

	if usuario.Senha != req.Senha {
		return response.Unauthorized(c, "Senha incorreta")
	}

	token, err := h.jwtManager.GenerateToken(usuario.ID, usuario.Email, usuario.Cargo)
	if err != nil {
		return response.InternalServerError(c, "Erro ao fazer login")
	}

	return response.Success(c, LoginResponse{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Cargo: usuario.Cargo,
		Token: token,
	})
}
