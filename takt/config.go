package takt

import (
	"backend/models"
)

// Documented bounds for building configuration numerics. Out-of-range values
// are clamped, never rejected, because the engine feeds a live wizard form.
const (
	MaxFloorCount              = 200
	MaxBasementCount           = 10
	MinZonesPerFloor           = 1
	MaxZonesPerFloor           = 8
	MinStructuralZonesPerFloor = 1
	MaxStructuralZonesPerFloor = 4
	MinSubstructureZones       = 2
	MaxSubstructureZones       = 8
)

// buildingTemplate is the per-building-type skeleton the LBS generator and
// the recommendation engine start from.
type buildingTemplate struct {
	SiteName     string
	BuildingName string
	BaseTaktDays int
	Linear       bool // infrastructure: linear sections instead of floors
}

var buildingTemplates = map[string]buildingTemplate{
	"residential":    {SiteName: "Site", BuildingName: "Residential Building", BaseTaktDays: 5},
	"commercial":     {SiteName: "Site", BuildingName: "Commercial Building", BaseTaktDays: 5},
	"hospital":       {SiteName: "Site", BuildingName: "Hospital Building", BaseTaktDays: 6},
	"industrial":     {SiteName: "Site", BuildingName: "Industrial Hall", BaseTaktDays: 7},
	"mixed_use":      {SiteName: "Site", BuildingName: "Mixed-Use Building", BaseTaktDays: 5},
	"infrastructure": {SiteName: "Site", BuildingName: "Linear Works", BaseTaktDays: 5, Linear: true},
}

// BaseTaktDays returns the building-type template default takt time, or 5
// when the type has no registered template.
func BaseTaktDays(buildingType string) int {
	if tpl, ok := buildingTemplates[buildingType]; ok {
		return tpl.BaseTaktDays
	}
	return 5
}

// NormalizeConfiguration clamps every numeric field of a building
// configuration to its documented bounds and returns the adjusted copy.
func NormalizeConfiguration(cfg models.BuildingConfiguration) models.BuildingConfiguration {
	cfg.FloorCount = clampInt(cfg.FloorCount, 0, MaxFloorCount)
	cfg.BasementCount = clampInt(cfg.BasementCount, 0, MaxBasementCount)
	cfg.ZonesPerFloor = clampInt(cfg.ZonesPerFloor, MinZonesPerFloor, MaxZonesPerFloor)
	cfg.StructuralZonesPerFloor = clampInt(cfg.StructuralZonesPerFloor, MinStructuralZonesPerFloor, MaxStructuralZonesPerFloor)
	cfg.SubstructureZonesCount = clampInt(cfg.SubstructureZonesCount, MinSubstructureZones, MaxSubstructureZones)
	if cfg.TypicalFloorArea < 0 {
		cfg.TypicalFloorArea = 0
	}
	return cfg
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
