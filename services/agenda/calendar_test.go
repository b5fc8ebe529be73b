package agenda

import (
	"testing"
	"time"

	"github.com/icei-ads/portal-eventos/model"
)

func evento(id uint, data time.Time, status string) model.Evento {
	return model.Evento{ID: id, Titulo: "Evento", Data: data, Status: status}
}

// A date-only string must land on its own civil day no matter which
// timezone the time was constructed in.
func TestDateKeyTimezoneIndependent(t *testing.T) {
	locations := []*time.Location{
		time.UTC,
		time.FixedZone("BRT", -3*60*60),
		time.FixedZone("JST", 9*60*60),
	}

	for _, loc := range locations {
		parsed, err := ParseEventDate("2025-03-15", loc)
		if err != nil {
			t.Fatalf("ParseEventDate in %v: %v", loc, err)
		}
		if got := DateKey(parsed); got != "2025-03-15" {
			t.Errorf("DateKey in %v = %q, want 2025-03-15", loc, got)
		}
	}
}

func TestDateKeyFromTimestamp(t *testing.T) {
	parsed, err := ParseEventDate("2025-03-15T00:00:00Z", time.FixedZone("BRT", -3*60*60))
	if err != nil {
		t.Fatal(err)
	}
	// The key derives from the timestamp's own calendar fields, not from a
	// conversion into the viewer's zone.
	if got := DateKey(parsed); got != "2025-03-15" {
		t.Errorf("DateKey = %q, want 2025-03-15", got)
	}
}

func TestParseEventDateInvalid(t *testing.T) {
	if _, err := ParseEventDate("não é data", time.UTC); err == nil {
		t.Error("expected error for unparsable date")
	}
}

func TestEventMapGroupsByDay(t *testing.T) {
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	eventos := []model.Evento{
		evento(1, day, model.StatusConfirmado),
		evento(2, day.Add(10*time.Hour), model.StatusPendente),
		evento(3, day.AddDate(0, 0, 1), model.StatusConfirmado),
		evento(4, time.Time{}, model.StatusCancelado), // zero date: skipped
	}

	m := EventMap(eventos)
	if len(m["2025-03-15"]) != 2 {
		t.Errorf("2025-03-15 has %d events, want 2", len(m["2025-03-15"]))
	}
	if len(m["2025-03-16"]) != 1 {
		t.Errorf("2025-03-16 has %d events, want 1", len(m["2025-03-16"]))
	}

	total := 0
	for _, v := range m {
		total += len(v)
	}
	if total != 3 {
		t.Errorf("map holds %d events, want 3 (zero date excluded)", total)
	}
}

func TestMonthGridLeadingBlanks(t *testing.T) {
	// March 2025 starts on a Saturday: six leading blank cells.
	grid := MonthGrid(2025, time.March, nil, time.UTC)

	if len(grid) != 6+31 {
		t.Fatalf("grid has %d cells, want 37", len(grid))
	}
	for i := 0; i < 6; i++ {
		if grid[i] != nil {
			t.Errorf("cell %d should be blank", i)
		}
	}
	if grid[6] == nil || grid[6].Dia != 1 || grid[6].Chave != "2025-03-01" {
		t.Errorf("first day cell = %+v, want day 1 keyed 2025-03-01", grid[6])
	}
	if last := grid[len(grid)-1]; last == nil || last.Dia != 31 {
		t.Errorf("last cell = %+v, want day 31", last)
	}
}

func TestMonthGridCarriesEvents(t *testing.T) {
	day := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	m := EventMap([]model.Evento{evento(1, day, model.StatusConfirmado)})

	grid := MonthGrid(2025, time.March, m, time.UTC)
	var cell *Dia
	for _, d := range grid {
		if d != nil && d.Dia == 15 {
			cell = d
		}
	}
	if cell == nil || len(cell.Eventos) != 1 {
		t.Fatalf("day 15 cell = %+v, want 1 event", cell)
	}

	// Days without events still carry an empty slice, not nil.
	for _, d := range grid {
		if d != nil && d.Eventos == nil {
			t.Errorf("day %d has nil event list", d.Dia)
		}
	}
}

func TestAgendaHojeResetsMonthAndSelection(t *testing.T) {
	start := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	a := NewAgenda(start)

	a.MesAnterior()
	a.MesAnterior()
	if a.Atual.Month() != time.January {
		t.Errorf("after two steps back, month = %v, want January", a.Atual.Month())
	}
	if !a.Selecionado.Equal(start) {
		t.Error("month navigation must not move the selection")
	}

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a.Hoje(now)
	if !a.Atual.Equal(now) || !a.Selecionado.Equal(now) {
		t.Errorf("Hoje must reset both month and selection, got %v / %v", a.Atual, a.Selecionado)
	}
}

func TestStats(t *testing.T) {
	eventos := []model.Evento{
		evento(1, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), model.StatusConfirmado),
		evento(2, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), model.StatusPendente),
		evento(3, time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), model.StatusConfirmado),
		evento(4, time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), model.StatusCancelado),
	}

	porStatus := ContagemPorStatus(eventos)
	want := map[string]int{"Confirmado": 2, "Pendente": 1, "Cancelado": 1}
	for _, sc := range porStatus {
		if sc.Total != want[sc.Status] {
			t.Errorf("status %q = %d, want %d", sc.Status, sc.Total, want[sc.Status])
		}
	}

	porMes := TotalPorMes(eventos)
	if porMes[2] != 2 {
		t.Errorf("March total = %d, want 2", porMes[2])
	}
	// Month buckets fold across years.
	if porMes[3] != 2 {
		t.Errorf("April total = %d, want 2", porMes[3])
	}
}
