package planner

import "github.com/mklein/gateplan/internal/models"

// Completion is the weighted completion score of an item list.
type Completion struct {
	Weighted float64
	Total    int
}

// CalculateCompletion sums item contributions: 1 for success, progress/100
// for partial, 0 otherwise. Unstatused items contribute 0, though the
// check-in validator refuses to submit while any remain.
func CalculateCompletion(items []models.PlanItem) Completion {
	c := Completion{Total: len(items)}
	for _, it := range items {
		c.Weighted += it.Contribution()
	}
	return c
}

// Ratio returns weighted/total, or 0 for an empty list.
func (c Completion) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return c.Weighted / float64(c.Total)
}

// Qualifies reports whether a day preserves the streak. A day declared free
// always qualifies regardless of ratio; it is the escape valve for planned
// rest days.
func Qualifies(ratio float64, freeTomorrow bool, threshold float64) bool {
	return freeTomorrow || ratio >= threshold
}
