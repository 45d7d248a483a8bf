package sla

import (
	"sort"

	"github.com/shenikar/complaint_analytics/internal/models"
)

// DefaultTopAlerts - сколько самых просроченных обращений попадает в сводку
const DefaultTopAlerts = 5

// Summarize собирает сводку по активным обращениям.
// Закрытые обращения игнорируются. Без активных обращений compliance_rate = 100.
func Summarize(items []models.ComplaintSLA, topN int) models.ComplianceSummary {
	summary := models.ComplianceSummary{TopAlerts: make([]models.ComplaintSLA, 0)}
	alerts := make([]models.ComplaintSLA, 0)

	for _, item := range items {
		if !item.Status.IsActive() {
			continue
		}
		summary.TotalActive++
		switch item.Snapshot.State {
		case models.SLAStateOK:
			summary.OK++
		case models.SLAStateWarning:
			summary.Warning++
			alerts = append(alerts, item)
		case models.SLAStateBreached:
			summary.Breached++
			alerts = append(alerts, item)
		}
	}

	summary.ComplianceRate = 100
	if summary.TotalActive > 0 {
		summary.ComplianceRate = roundHours(float64(summary.OK) / float64(summary.TotalActive) * 100)
	}

	SortByUrgency(alerts)
	if topN > 0 && len(alerts) > topN {
		alerts = alerts[:topN]
	}
	summary.TopAlerts = append(summary.TopAlerts, alerts...)
	return summary
}

// SortByUrgency упорядочивает снимки: сначала нарушенные, затем предупреждения,
// внутри состояния - по убыванию прошедшего времени
func SortByUrgency(items []models.ComplaintSLA) {
	rank := map[models.SLAState]int{
		models.SLAStateBreached: 0,
		models.SLAStateWarning:  1,
		models.SLAStateOK:       2,
	}
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := rank[items[i].Snapshot.State], rank[items[j].Snapshot.State]
		if ri != rj {
			return ri < rj
		}
		return items[i].Snapshot.ElapsedHours > items[j].Snapshot.ElapsedHours
	})
}
