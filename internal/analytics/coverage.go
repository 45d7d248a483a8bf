package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
)

const (
	// CriticalAttentionIndex - зона ниже этого индекса считается критической
	CriticalAttentionIndex = 50.0
	// MaxZoneAlerts - сколько критических зон выводится как оповещения
	MaxZoneAlerts = 3

	emptyZoneAttentionIndex = 100.0
)

type zoneCounter struct {
	total       int
	resolved    int
	pending     int
	inProgress  int
	sumPriority int
}

// AnalyzeCoverage считает показатели по каждой активной зоне.
// Зоны без обращений присутствуют в отчете с нулевыми счетчиками.
// Обращения без зоны или из неактивной зоны в отчет не попадают.
func AnalyzeCoverage(zones []*models.Zone, complaints []*models.Complaint) models.CoverageReport {
	counters := make(map[uuid.UUID]*zoneCounter, len(zones))
	active := make([]*models.Zone, 0, len(zones))
	for _, z := range zones {
		if !z.IsActive {
			continue
		}
		counters[z.ID] = &zoneCounter{}
		active = append(active, z)
	}

	grandTotal := 0
	for _, c := range complaints {
		if c.ZoneID == nil {
			continue
		}
		counter, ok := counters[*c.ZoneID]
		if !ok {
			continue
		}
		counter.total++
		counter.sumPriority += c.PriorityOrDefault()
		switch c.Status {
		case models.StatusResolved:
			counter.resolved++
		case models.StatusNew:
			counter.pending++
		case models.StatusInProgress:
			counter.inProgress++
		}
		grandTotal++
	}

	rows := make([]models.ZoneCoverage, 0, len(active))
	for _, z := range active {
		counter := counters[z.ID]
		row := models.ZoneCoverage{
			ZoneID:            z.ID,
			ZoneName:          z.Name,
			Total:             counter.total,
			Resolved:          counter.resolved,
			Pending:           counter.pending,
			InProgress:        counter.inProgress,
			ResolutionRate:    round(percent(counter.resolved, counter.total), 2),
			PercentageOfTotal: round(percent(counter.total, grandTotal), 2),
			AttentionIndex:    round(AttentionIndex(counter.total, counter.resolved, counter.pending), 2),
		}
		if counter.total > 0 {
			row.AvgPriority = round(float64(counter.sumPriority)/float64(counter.total), 2)
		}
		row.Critical = row.AttentionIndex < CriticalAttentionIndex && row.Total > 0
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AttentionIndex < rows[j].AttentionIndex
	})

	alerts := make([]models.ZoneCoverage, 0, MaxZoneAlerts)
	for _, row := range rows {
		if len(alerts) == MaxZoneAlerts {
			break
		}
		if row.Critical {
			alerts = append(alerts, row)
		}
	}

	return models.CoverageReport{
		GrandTotal: grandTotal,
		Zones:      rows,
		Alerts:     alerts,
	}
}

// AttentionIndex = resolution_rate*0.7 + (1 - pending/total)*30.
// Пустая зона по соглашению получает 100.
func AttentionIndex(total, resolved, pending int) float64 {
	if total == 0 {
		return emptyZoneAttentionIndex
	}
	pendingShare := float64(pending) / float64(total)
	return percent(resolved, total)*0.7 + (1-pendingShare)*30
}
