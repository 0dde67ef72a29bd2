package planner

import (
	"fmt"
	"sort"

	"github.com/content-planner-api/internal/models"
)

// Render projects the visible records into the selected mode. It is
// stateless and re-derives the whole ViewModel on every call; records
// keep their incoming relative order within groups.
func Render(plans []models.ArticlePlan, mode ViewMode) ViewModel {
	if len(plans) == 0 {
		// One shared placeholder for all three modes
		return ViewModel{Mode: mode, Empty: true}
	}

	switch mode {
	case ModeCalendar:
		return renderCalendar(plans)
	case ModeCategory:
		return renderCategory(plans)
	default:
		return renderFlat(plans)
	}
}

// renderFlat keeps the store order, one group holding every row
func renderFlat(plans []models.ArticlePlan) ViewModel {
	return ViewModel{
		Mode:  ModeFlat,
		Total: len(plans),
		Groups: []Group{{
			Label:   "All articles",
			Count:   len(plans),
			Records: plans,
		}},
	}
}

// renderCalendar groups by week ascending, annotating each group with
// its derived quarter
func renderCalendar(plans []models.ArticlePlan) ViewModel {
	byWeek := make(map[int][]models.ArticlePlan)
	weeks := []int{}
	for _, p := range plans {
		if _, seen := byWeek[p.Week]; !seen {
			weeks = append(weeks, p.Week)
		}
		byWeek[p.Week] = append(byWeek[p.Week], p)
	}
	sort.Ints(weeks)

	groups := make([]Group, 0, len(weeks))
	for _, w := range weeks {
		records := byWeek[w]
		groups = append(groups, Group{
			Label:   fmt.Sprintf("Week %d", w),
			Week:    w,
			Quarter: Quarter(w),
			Count:   len(records),
			Records: records,
		})
	}
	return ViewModel{Mode: ModeCalendar, Total: len(plans), Groups: groups}
}

// renderCategory groups by category name, lexicographic order
func renderCategory(plans []models.ArticlePlan) ViewModel {
	byCategory := make(map[string][]models.ArticlePlan)
	names := []string{}
	for _, p := range plans {
		if _, seen := byCategory[p.Category]; !seen {
			names = append(names, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		records := byCategory[name]
		groups = append(groups, Group{
			Label:   name,
			Count:   len(records),
			Records: records,
		})
	}
	return ViewModel{Mode: ModeCategory, Total: len(plans), Groups: groups}
}
