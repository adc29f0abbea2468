package takt

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() models.BuildingConfiguration {
	return models.BuildingConfiguration{
		BuildingType:            "residential",
		FloorCount:              10,
		BasementCount:           2,
		ZonesPerFloor:           3,
		StructuralZonesPerFloor: 1,
		SubstructureZonesCount:  3,
		TypicalFloorArea:        900,
	}
}

func TestGenerateLocationBreakdownZoneCounts(t *testing.T) {
	forest := GenerateLocationBreakdown(testConfiguration())
	require.Len(t, forest, 1)

	counts := CountTemplateLocations(forest)

	// 12 levels x 1 shell zone, 12 levels x 3 fit-out zones, 3 sectors
	assert.Equal(t, 12, counts.Structural)
	assert.Equal(t, 36, counts.Finishing)
	assert.Equal(t, 3, counts.Substructure)
	assert.Equal(t, 51, counts.Zones)
	// site + building + 12 levels + 51 zones
	assert.Equal(t, 65, counts.Total)
}

func TestGenerateLocationBreakdownUnknownType(t *testing.T) {
	cfg := testConfiguration()
	cfg.BuildingType = "spaceport"

	forest := GenerateLocationBreakdown(cfg)
	assert.Empty(t, forest, "unknown building type must yield an empty forest, not an error")
}

func TestGenerateLocationBreakdownInfrastructure(t *testing.T) {
	cfg := testConfiguration()
	cfg.BuildingType = "infrastructure"
	cfg.SubstructureZonesCount = 4

	counts := CountTemplateLocations(GenerateLocationBreakdown(cfg))
	assert.Equal(t, 0, counts.Structural)
	assert.Equal(t, 0, counts.Finishing)
	assert.Equal(t, 0, counts.Substructure, "linear works get no floor-based or substructure zones")
	assert.Equal(t, 0, counts.Zones)
	// site + building skeleton only
	assert.Equal(t, 2, counts.Total)
}

func TestGenerateLocationBreakdownClampsInputs(t *testing.T) {
	cfg := testConfiguration()
	cfg.FloorCount = 9999
	cfg.ZonesPerFloor = 99
	cfg.StructuralZonesPerFloor = 0
	cfg.SubstructureZonesCount = 0

	counts := CountTemplateLocations(GenerateLocationBreakdown(cfg))

	levels := MaxFloorCount + cfg.BasementCount
	assert.Equal(t, levels*MaxZonesPerFloor, counts.Finishing)
	assert.Equal(t, levels*MinStructuralZonesPerFloor, counts.Structural)
	assert.Equal(t, MinSubstructureZones, counts.Substructure)
}

func TestFlattenCardinalityMatchesCount(t *testing.T) {
	cases := []models.BuildingConfiguration{
		testConfiguration(),
		{BuildingType: "commercial", FloorCount: 1, ZonesPerFloor: 1, StructuralZonesPerFloor: 1, SubstructureZonesCount: 2},
		{BuildingType: "hospital", FloorCount: 6, BasementCount: 1, ZonesPerFloor: 8, StructuralZonesPerFloor: 4, SubstructureZonesCount: 8},
		{BuildingType: "infrastructure", FloorCount: 10, ZonesPerFloor: 4, StructuralZonesPerFloor: 2, SubstructureZonesCount: 4},
	}

	for _, cfg := range cases {
		forest := GenerateLocationBreakdown(cfg)
		rows := FlattenLocations(forest)
		counts := CountTemplateLocations(forest)
		assert.Len(t, rows, counts.Total, "building type %s", cfg.BuildingType)
	}
}

func TestFlattenParentsPrecedeChildren(t *testing.T) {
	rows := FlattenLocations(GenerateLocationBreakdown(testConfiguration()))
	require.NotEmpty(t, rows)

	seen := make(map[string]bool)
	lastOrder := 0
	for _, row := range rows {
		if row.ParentName != "" {
			assert.True(t, seen[row.ParentName], "parent %q of %q not emitted before the row", row.ParentName, row.Name)
		}
		assert.Greater(t, row.SortOrder, lastOrder, "sort order must be strictly increasing")
		lastOrder = row.SortOrder
		seen[row.Name] = true
	}
}

func TestFlattenRepeatNaming(t *testing.T) {
	nodes := []LocationTemplateNode{
		{
			Name: "Site", Type: NodeSite,
			Children: []LocationTemplateNode{
				{Name: "Wing", Type: NodeBuilding, Repeat: 2},
				{Name: "Pier", Type: NodeArea, Repeat: 3, RepeatLabel: "Pier P{n}"},
			},
		},
	}

	rows := FlattenLocations(nodes)
	require.Len(t, rows, 6)

	assert.Equal(t, "Wing 1", rows[1].Name, "default pattern is name plus index")
	assert.Equal(t, "Wing 2", rows[2].Name)
	assert.Equal(t, "Pier P1", rows[3].Name, "repeat label substitutes {n} with the 1-based index")
	assert.Equal(t, "Pier P3", rows[5].Name)
	for _, row := range rows[1:] {
		assert.Equal(t, "Site", row.ParentName)
	}
}

func TestFlattenBasementNumbering(t *testing.T) {
	rows := FlattenLocations(GenerateLocationBreakdown(testConfiguration()))

	var floorNames []string
	for _, row := range rows {
		if row.LocationType == NodeFloor {
			floorNames = append(floorNames, row.Name)
		}
	}

	require.Len(t, floorNames, 12)
	assert.Equal(t, "Basement 1", floorNames[0], "basements keep their own counter from the foundation side")
	assert.Equal(t, "Basement 2", floorNames[1])
	assert.Equal(t, "Floor 1", floorNames[2])
	assert.Equal(t, "Floor 10", floorNames[11])
}

func TestFlattenZoneAreas(t *testing.T) {
	rows := FlattenLocations(GenerateLocationBreakdown(testConfiguration()))

	for _, row := range rows {
		if row.Phase == PhaseFinishing {
			assert.InDelta(t, 300.0, row.AreaSqm, 0.001, "fit-out zones split the typical floor area")
		}
	}
}
