package takt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorTablesArePositive(t *testing.T) {
	tables := map[string][]FactorItem{
		"structural": StructuralSystemFactors(),
		"mep":        MEPComplexityFactors(),
		"foundation": FoundationTypeFactors(),
		"ground":     GroundConditionFactors(),
	}

	for name, items := range tables {
		assert.NotEmpty(t, items, name)
		for _, item := range items {
			assert.Greater(t, item.TaktMultiplier, 0.0, "%s/%s", name, item.Code)
			assert.NotEmpty(t, item.Label, "%s/%s", name, item.Code)
		}
	}
}

func TestLookupMissReturnsNeutral(t *testing.T) {
	for _, lookup := range []func(string) FactorItem{
		LookupStructuralSystem,
		LookupMEPComplexity,
		LookupFoundationType,
		LookupGroundCondition,
	} {
		item := lookup("no_such_code")
		assert.Equal(t, NeutralMultiplier, item.TaktMultiplier)

		item = lookup("")
		assert.Equal(t, NeutralMultiplier, item.TaktMultiplier)
	}
}

func TestLookupHit(t *testing.T) {
	assert.Equal(t, 0.85, LookupStructuralSystem("precast").TaktMultiplier)
	assert.Equal(t, 1.35, LookupMEPComplexity("hospital_grade").TaktMultiplier)
	assert.Equal(t, 1.2, LookupFoundationType("piled").TaktMultiplier)
	assert.Equal(t, 1.15, LookupGroundCondition("soft_soil").TaktMultiplier)
}
