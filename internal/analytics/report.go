package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/complaint_analytics/internal/models"
)

const (
	DefaultTrendWeeks = 4

	uncategorized = "uncategorized"
)

// CategoryResolutionTimes считает время решения по категориям.
// Учитываются только решенные обращения с заполненным ResolvedAt.
// Результат отсортирован по убыванию среднего времени.
func CategoryResolutionTimes(complaints []*models.Complaint) []models.CategoryResolution {
	type acc struct {
		row models.CategoryResolution
		sum float64
	}
	byCategory := make(map[uuid.UUID]*acc)
	order := make([]uuid.UUID, 0)

	for _, c := range complaints {
		if c.Status != models.StatusResolved || c.ResolvedAt == nil {
			continue
		}
		key := uuid.Nil
		if c.CategoryID != nil {
			key = *c.CategoryID
		}
		a, ok := byCategory[key]
		if !ok {
			name := c.CategoryName
			if name == "" {
				name = uncategorized
			}
			a = &acc{row: models.CategoryResolution{CategoryID: c.CategoryID, CategoryName: name}}
			byCategory[key] = a
			order = append(order, key)
		}
		hours := c.ResolvedAt.Sub(c.CreatedAt).Hours()
		if hours < 0 {
			hours = 0
		}
		a.sum += hours
		a.row.ResolvedCount++
		if hours > a.row.MaxResolutionHours {
			a.row.MaxResolutionHours = hours
		}
	}

	result := make([]models.CategoryResolution, 0, len(order))
	for _, key := range order {
		a := byCategory[key]
		a.row.AvgResolutionHours = round(a.sum/float64(a.row.ResolvedCount), 2)
		a.row.MaxResolutionHours = round(a.row.MaxResolutionHours, 2)
		result = append(result, a.row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].AvgResolutionHours > result[j].AvgResolutionHours
	})
	return result
}

// WeeklyTrend раскладывает поступившие и решенные обращения по неделям.
// Последняя неделя заканчивается в now, всего weeks интервалов по 7 суток,
// от старых к новым.
func WeeklyTrend(complaints []*models.Complaint, weeks int, now time.Time) []models.WeeklyVolume {
	if weeks < 1 {
		return []models.WeeklyVolume{}
	}
	const week = 7 * 24 * time.Hour
	start := now.Add(-time.Duration(weeks) * week)

	buckets := make([]models.WeeklyVolume, weeks)
	for i := range buckets {
		buckets[i].WeekStart = start.Add(time.Duration(i) * week)
	}

	index := func(t time.Time) int {
		if t.Before(start) || t.After(now) {
			return -1
		}
		i := int(t.Sub(start) / week)
		if i >= weeks {
			i = weeks - 1
		}
		return i
	}

	for _, c := range complaints {
		if i := index(c.CreatedAt); i >= 0 {
			buckets[i].CreatedCount++
		}
		if c.Status == models.StatusResolved && c.ResolvedAt != nil {
			if i := index(*c.ResolvedAt); i >= 0 {
				buckets[i].ResolvedCount++
			}
		}
	}
	return buckets
}
