package agenda

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/icei-ads/portal-eventos/model"
	"github.com/icei-ads/portal-eventos/services/agenda"
	"github.com/icei-ads/portal-eventos/utils/response"
)

// AgendaHandler serves the server-side month grid and the event report
// dashboard.
type AgendaHandler struct {
	db *gorm.DB
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(db *gorm.DB) *AgendaHandler {
	return &AgendaHandler{db: db}
}

// AgendaResponse is one month of the event calendar
type AgendaResponse struct {
	Ano        int           `json:"ano"`
	Mes        int           `json:"mes"`
	DiasSemana []string      `json:"diasSemana"`
	Grade      []*agenda.Dia `json:"grade"`
}

// RelatorioResponse aggregates event counts for the dashboard
type RelatorioResponse struct {
	Total     int                  `json:"total"`
	PorStatus []agenda.StatusCount `json:"porStatus"`
	PorMes    [12]int              `json:"porMes"`
}

// GetAgenda handles GET /api/agenda?ano=&mes=, defaulting to the current
// month
func (h *AgendaHandler) GetAgenda(c *fiber.Ctx) error {
	now := time.Now()
	ano := c.QueryInt("ano", now.Year())
	mes := c.QueryInt("mes", int(now.Month()))
	if mes < 1 || mes > 12 {
		return response.BadRequest(c, "Mês inválido")
	}

	var eventos []model.Evento
	err := h.db.Preload("OdsAssociadas").Preload("Anexos").Find(&eventos).Error
	if err != nil {
		return response.InternalServerError(c, "Erro ao buscar eventos")
	}

	eventMap := agenda.EventMap(eventos)
	grade := agenda.MonthGrid(ano, time.Month(mes), eventMap, time.Local)

	return response.Success(c, AgendaResponse{
		Ano:        ano,
		Mes:        mes,
		DiasSemana: agenda.DiasSemana,
		Grade:      grade,
	})
}

// GetRelatorios handles GET /api/relatorios
func (h *AgendaHandler) GetRelatorios(c *fiber.Ctx) error {
	var eventos []model.Evento
	if err := h.db.Find(&eventos).Error; err != nil {
		return response.InternalServerError(c, "Erro ao buscar eventos")
	}

	return response.Success(c, RelatorioResponse{
		Total:     len(eventos),
		PorStatus: agenda.ContagemPorStatus(eventos),
		PorMes:    agenda.TotalPorMes(eventos),
	})
}
