package formulario

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/services/formgen"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// FormularioHandler serves the dynamic event form schema. Field layout
// comes from the first row of the configured spreadsheet; the responsible
// select is filled with all registered user names.
type FormularioHandler struct {
	db          *gorm.DB
	planilhaURL string
}

// NewFormularioHandler creates a new form schema handler
func NewFormularioHandler(db *gorm.DB, planilhaURL string) *FormularioHandler {
	return &FormularioHandler{
		db:          db,
		planilhaURL: planilhaURL,
	}
}

// FormularioResponse carries the resolved field list plus the weekday
// labels the agenda view shares.
type FormularioResponse struct {
	Campos []formgen.Field `json:"campos"`
}

// GetEventoForm handles GET /api/formulario/evento
func (h *FormularioHandler) GetEventoForm(c *fiber.Ctx) error {
	if h.planilhaURL == "" {
		return response.InternalServerError(c, "Planilha de formulário não configurada")
	}

	headers, err := formgen.FetchHeaders(c.Context(), h.planilhaURL)
	if err != nil {
		return response.InternalServerError(c, "Erro ao carregar planilha do formulário")
	}

	var usuarios []model.Usuario
	if err := h.db.Find(&usuarios).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar usuários")
	}
	responsaveis := make([]string, len(usuarios))
	for i := range usuarios {
		responsaveis[i] = usuarios[i].Nome
	}

	return response.Success(c, FormularioResponse{
		Campos: formgen.BuildSchema(headers, responsaveis),
	})
}
