package agenda

import (
	"fmt"
	"time"

	"github.com/icei-ads/portal-eventos/model"
)

// DiasSemana are the weekday labels of the 7-column grid, Sunday first.
var DiasSemana = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sab"}

// DateKey formats the calendar date of t as YYYY-MM-DD. The key is built
// from the time's own year/month/day fields, never from a UTC slice of an
// ISO string, so an event stays on its civil day in every timezone.
func DateKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// ParseEventDate parses the date strings the portal accepts. Date-only
// values are anchored in loc so the civil date survives the round trip;
// timestamps keep the offset they were written with.
func ParseEventDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, loc)
}

// EventMap groups events by calendar date key. Events with a zero date are
// silently skipped; the agenda view never breaks on bad data.
func EventMap(eventos []model.Evento) map[string][]model.Evento {
	m := make(map[string][]model.Evento)
	for _, e := range eventos {
		if e.Data.IsZero() {
			continue
		}
		key := DateKey(e.Data)
		m[key] = append(m[key], e)
	}
	return m
}

// Dia is one populated cell of the month grid.
type Dia struct {
	Dia     int            `json:"dia"`
	Chave   string         `json:"chave"`
	Eventos []model.Evento `json:"eventos"`
}

// MonthGrid lays out a month as a 7-column calendar: nil cells pad the days
// before the month's first weekday, then one cell per day with that day's
// events from eventMap.
func MonthGrid(year int, month time.Month, eventMap map[string][]model.Evento, loc *time.Location) []*Dia {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := make([]*Dia, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		grid = append(grid, nil)
	}

	for day := 1; day <= daysInMonth; day++ {
		key := DateKey(time.Date(year, month, day, 0, 0, 0, 0, loc))
		eventos := eventMap[key]
		if eventos == nil {
			eventos = []model.Evento{}
		}
		grid = append(grid, &Dia{Dia: day, Chave: key, Eventos: eventos})
	}

	return grid
}

// Agenda tracks the displayed month and the selected day.
type Agenda struct {
	Atual       time.Time
	Selecionado time.Time
}

// NewAgenda opens the agenda on today.
func NewAgenda(now time.Time) *Agenda {
	return &Agenda{Atual: now, Selecionado: now}
}

// MesAnterior moves the displayed month back, leaving the selection alone.
func (a *Agenda) MesAnterior() {
	a.Atual = time.Date(a.Atual.Year(), a.Atual.Month()-1, 1, 0, 0, 0, 0, a.Atual.Location())
}

// ProximoMes moves the displayed month forward, leaving the selection alone.
func (a *Agenda) ProximoMes() {
	a.Atual = time.Date(a.Atual.Year(), a.Atual.Month()+1, 1, 0, 0, 0, 0, a.Atual.Location())
}

// Hoje resets both the displayed month and the selected day.
func (a *Agenda) Hoje(now time.Time) {
	a.Atual = now
	a.Selecionado = now
}

// EventosDoDia returns the selected day's events for the side panel.
func (a *Agenda) EventosDoDia(eventMap map[string][]model.Evento) []model.Evento {
	eventos := eventMap[DateKey(a.Selecionado)]
	if eventos == nil {
		return []model.Evento{}
	}
	return eventos
}
