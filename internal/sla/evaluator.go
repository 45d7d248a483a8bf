package sla

import (
	"math"
	"time"

	"github.com/shenikar/complaint_analytics/internal/models"
)

// Evaluate вычисляет состояние SLA обращения на момент now.
//
// Новые обращения оцениваются по бюджету реакции, остальные по бюджету решения.
// Для закрытых обращений время останавливается на ResolvedAt.
// Проценты в результате ограничены диапазоном [0, 100], классификация идет по сырым значениям.
func Evaluate(c *models.Complaint, th models.SLAThresholds, now time.Time) models.SLASnapshot {
	end := now
	if !c.Status.IsActive() && c.ResolvedAt != nil {
		end = *c.ResolvedAt
	}
	elapsed := math.Max(0, end.Sub(c.CreatedAt).Hours())

	pctResponse := elapsed / th.ResponseHours * 100
	pctResolution := elapsed / th.ResolutionHours * 100

	budget := models.SLABudgetResolution
	budgetHours := th.ResolutionHours
	pct := pctResolution
	if c.Status == models.StatusNew {
		budget = models.SLABudgetResponse
		budgetHours = th.ResponseHours
		pct = pctResponse
	}

	state := models.SLAStateOK
	switch {
	case pct >= 100:
		state = models.SLAStateBreached
	case pct >= th.WarningThresholdHours/budgetHours*100:
		state = models.SLAStateWarning
	}

	return models.SLASnapshot{
		ElapsedHours:   roundHours(elapsed),
		PctResponse:    clampPercent(pctResponse),
		PctResolution:  clampPercent(pctResolution),
		State:          state,
		Budget:         budget,
		HoursRemaining: roundHours(math.Max(0, budgetHours-elapsed)),
	}
}

func clampPercent(v float64) float64 {
	v = math.Min(100, math.Max(0, v))
	return math.Round(v*10) / 10
}

func roundHours(v float64) float64 {
	return math.Round(v*100) / 100
}
