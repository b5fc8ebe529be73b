package agenda

import "github.com/icei-ads/portal-eventos/model"

// StatusCount is one slice of the status dashboard.
type StatusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

// ContagemPorStatus tallies events per status, always reporting the three
// known statuses in their fixed order even when a count is zero.
func ContagemPorStatus(eventos []model.Evento) []StatusCount {
	counts := map[string]int{}
	for _, e := range eventos {
		counts[e.Status]++
	}

	out := make([]StatusCount, 0, 3)
	for _, status := range []string{model.StatusConfirmado, model.StatusPendente, model.StatusCancelado} {
		out = append(out, StatusCount{Status: status, Total: counts[status]})
	}
	return out
}

// TotalPorMes tallies events per calendar month (index 0 = January) across
// all years, matching the report chart's month buckets.
func TotalPorMes(eventos []model.Evento) [12]int {
	var totals [12]int
	for _, e := range eventos {
		if e.Data.IsZero() {
			continue
		}
		totals[int(e.Data.Month())-1]++
	}
	return totals
}
