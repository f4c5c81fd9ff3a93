package planner

import (
	"math"
	"testing"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

func TestCalculateCompletion(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.PlanItem
		weighted float64
		ratio    float64
	}{
		{
			name:     "empty plan",
			items:    nil,
			weighted: 0,
			ratio:    0,
		},
		{
			name: "all success",
			items: []models.PlanItem{
				{Status: constants.StatusSuccess, PartialProgress: 100},
				{Status: constants.StatusSuccess, PartialProgress: 100},
			},
			weighted: 2,
			ratio:    1,
		},
		{
			name: "mixed statuses",
			items: []models.PlanItem{
				{Status: constants.StatusSuccess, PartialProgress: 100},
				{Status: constants.StatusPartial, PartialProgress: 50},
				{Status: constants.StatusNotYet},
				{Status: constants.StatusSkipped},
			},
			weighted: 1.5,
			ratio:    0.375,
		},
		{
			name: "partial uses recorded progress",
			items: []models.PlanItem{
				{Status: constants.StatusPartial, PartialProgress: 70},
			},
			weighted: 0.7,
			ratio:    0.7,
		},
		{
			name: "unstatused items contribute zero",
			items: []models.PlanItem{
				{Status: constants.StatusSuccess, PartialProgress: 100},
				{},
			},
			weighted: 1,
			ratio:    0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CalculateCompletion(tt.items)
			if math.Abs(c.Weighted-tt.weighted) > 1e-9 {
				t.Errorf("weighted = %v, want %v", c.Weighted, tt.weighted)
			}
			if c.Total != len(tt.items) {
				t.Errorf("total = %d, want %d", c.Total, len(tt.items))
			}
			if math.Abs(c.Ratio()-tt.ratio) > 1e-9 {
				t.Errorf("ratio = %v, want %v", c.Ratio(), tt.ratio)
			}
		})
	}
}

func TestQualifies(t *testing.T) {
	tests := []struct {
		name         string
		ratio        float64
		freeTomorrow bool
		threshold    float64
		want         bool
	}{
		{"above threshold", 0.9, false, 0.8, true},
		{"exactly at threshold", 0.8, false, 0.8, true},
		{"below threshold", 0.79, false, 0.8, false},
		{"rest day overrides ratio", 0, true, 0.8, true},
		{"zero threshold always qualifies", 0, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Qualifies(tt.ratio, tt.freeTomorrow, tt.threshold)
			if got != tt.want {
				t.Errorf("Qualifies(%v, %v, %v) = %v, want %v",
					tt.ratio, tt.freeTomorrow, tt.threshold, got, tt.want)
			}
		})
	}
}
