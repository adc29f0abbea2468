package takt

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestRecommendTaktNeutralConfig(t *testing.T) {
	rec := RecommendTakt(models.BuildingConfiguration{}, 5)

	assert.Equal(t, 5, rec.Recommended)
	assert.Equal(t, 4, rec.RangeLow)
	assert.Equal(t, 6, rec.RangeHigh)
	assert.Equal(t, "standard parameters", rec.Reasoning)
}

func TestRecommendTaktAppliesMultipliers(t *testing.T) {
	cfg := models.BuildingConfiguration{
		StructuralSystemCode: "masonry",        // 1.15
		MEPComplexityCode:    "hospital_grade", // 1.35
		FoundationTypeCode:   "piled",          // 1.2
		GroundConditionCode:  "soft_soil",      // 1.15
	}

	rec := RecommendTakt(cfg, 5)

	// 5 * 1.15 * 1.35 * 1.2 * 1.15 = 10.71... -> 11
	assert.Equal(t, 11, rec.Recommended)
	assert.Contains(t, rec.Reasoning, "MEP: Hospital-grade +35%")
	assert.Contains(t, rec.Reasoning, "Foundation: Piled +20%")
}

func TestRecommendTaktUnknownCodesAreNeutral(t *testing.T) {
	cfg := models.BuildingConfiguration{
		StructuralSystemCode: "unobtainium",
		MEPComplexityCode:    "",
		FoundationTypeCode:   "no-such-code",
		GroundConditionCode:  "???",
	}

	rec := RecommendTakt(cfg, 5)
	assert.Equal(t, 5, rec.Recommended, "unknown codes resolve to the neutral multiplier")
	assert.Equal(t, "standard parameters", rec.Reasoning)
}

func TestRecommendTaktBounds(t *testing.T) {
	configs := []models.BuildingConfiguration{
		{},
		{StructuralSystemCode: "timber", MEPComplexityCode: "basic", FoundationTypeCode: "strip", GroundConditionCode: "rock"},
		{StructuralSystemCode: "masonry", MEPComplexityCode: "data_center", FoundationTypeCode: "caisson", GroundConditionCode: "contaminated"},
	}

	for _, base := range []int{1, 5, 14} {
		for _, cfg := range configs {
			rec := RecommendTakt(cfg, base)
			assert.GreaterOrEqual(t, rec.RangeLow, MinTaktDays)
			assert.LessOrEqual(t, rec.RangeLow, rec.Recommended)
			assert.LessOrEqual(t, rec.Recommended, rec.RangeHigh)
			assert.LessOrEqual(t, rec.RangeHigh, MaxTaktDays)
		}
	}
}

func TestRecommendTaktMonotonicInEachFactor(t *testing.T) {
	// Walking a single factor up its table (others fixed) must never lower
	// the recommendation.
	structuralAscending := []string{"timber", "precast", "steel_frame", "insitu_concrete", "composite", "masonry"}
	previous := 0
	for _, code := range structuralAscending {
		rec := RecommendTakt(models.BuildingConfiguration{StructuralSystemCode: code}, 5)
		assert.GreaterOrEqual(t, rec.Recommended, previous, "structural code %s", code)
		previous = rec.Recommended
	}

	mepAscending := []string{"basic", "standard", "commercial", "hospital_grade", "data_center"}
	previous = 0
	for _, code := range mepAscending {
		rec := RecommendTakt(models.BuildingConfiguration{MEPComplexityCode: code}, 5)
		assert.GreaterOrEqual(t, rec.Recommended, previous, "mep code %s", code)
		previous = rec.Recommended
	}
}

func TestRecommendBuffer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      models.BuildingConfiguration
		expected int
	}{
		{"default", models.BuildingConfiguration{}, 1},
		{"standard mep", models.BuildingConfiguration{MEPComplexityCode: "standard"}, 1},
		{"hospital mep", models.BuildingConfiguration{MEPComplexityCode: "hospital_grade"}, 2},
		{"top down flow", models.BuildingConfiguration{FlowDirection: "top_down"}, 2},
		{"bottom up flow", models.BuildingConfiguration{FlowDirection: "bottom_up"}, 1},
		{"hospital and bidirectional", models.BuildingConfiguration{MEPComplexityCode: "data_center", FlowDirection: "bidirectional"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffer := RecommendBuffer(tt.cfg)
			assert.Equal(t, tt.expected, buffer)
			assert.GreaterOrEqual(t, buffer, MinBuffer)
			assert.LessOrEqual(t, buffer, MaxBuffer)
		})
	}
}
