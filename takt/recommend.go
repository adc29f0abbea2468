package takt

import (
	"fmt"
	"math"
	"strings"

	"backend/models"
)

// Bounds for takt time and buffer recommendations.
const (
	MinTaktDays = 1
	MaxTaktDays = 14
	MinBuffer   = 0
	MaxBuffer   = 5
)

// An MEP multiplier above this marks the project as high-complexity for
// buffer sizing.
const highComplexityMEPThreshold = 1.2

// Flow directions that need bidirectional or top-down trade coordination and
// therefore a wider buffer.
var coordinationFlowDirections = map[string]bool{
	"top_down":      true,
	"bidirectional": true,
}

// neutralReasoning is shown when every factor resolves to 1.0.
const neutralReasoning = "standard parameters"

// RecommendTakt proposes a takt time for a building configuration by scaling
// the building-type base takt with the four factor-table multipliers. Unknown
// codes resolve to the neutral multiplier, so a half-filled wizard form still
// gets a sensible proposal. Raising any single multiplier while holding the
// others fixed never lowers the recommendation.
func RecommendTakt(cfg models.BuildingConfiguration, baseTaktDays int) models.TaktRecommendation {
	if baseTaktDays < MinTaktDays {
		baseTaktDays = MinTaktDays
	}

	structural := LookupStructuralSystem(cfg.StructuralSystemCode)
	mep := LookupMEPComplexity(cfg.MEPComplexityCode)
	foundation := LookupFoundationType(cfg.FoundationTypeCode)
	ground := LookupGroundCondition(cfg.GroundConditionCode)

	composite := structural.TaktMultiplier * mep.TaktMultiplier *
		foundation.TaktMultiplier * ground.TaktMultiplier

	recommended := clampInt(int(math.Round(float64(baseTaktDays)*composite)), MinTaktDays, MaxTaktDays)

	low := clampInt(int(math.Round(float64(recommended)*0.8)), MinTaktDays, MaxTaktDays)
	high := clampInt(int(math.Round(float64(recommended)*1.2)), MinTaktDays, MaxTaktDays)
	if low > recommended || high < recommended {
		low, high = recommended, recommended
	}

	return models.TaktRecommendation{
		Recommended: recommended,
		RangeLow:    low,
		RangeHigh:   high,
		Reasoning:   buildReasoning(structural, mep, foundation, ground),
	}
}

// RecommendBuffer proposes the inter-trade buffer in takt periods. One period
// is the base; complex MEP and coordination-heavy flow directions each add
// one more.
func RecommendBuffer(cfg models.BuildingConfiguration) int {
	buffer := 1
	if LookupMEPComplexity(cfg.MEPComplexityCode).TaktMultiplier > highComplexityMEPThreshold {
		buffer++
	}
	if coordinationFlowDirections[cfg.FlowDirection] {
		buffer++
	}
	return clampInt(buffer, MinBuffer, MaxBuffer)
}

func buildReasoning(structural, mep, foundation, ground FactorItem) string {
	var parts []string
	appendPart := func(category string, item FactorItem) {
		if item.TaktMultiplier == NeutralMultiplier {
			return
		}
		pct := int(math.Round((item.TaktMultiplier - 1.0) * 100))
		parts = append(parts, fmt.Sprintf("%s: %s %+d%%", category, item.Label, pct))
	}

	appendPart("Structure", structural)
	appendPart("MEP", mep)
	appendPart("Foundation", foundation)
	appendPart("Ground", ground)

	if len(parts) == 0 {
		return neutralReasoning
	}
	return strings.Join(parts, "; ")
}
