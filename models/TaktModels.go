package models

// BuildingConfiguration holds the physical and organizational parameters of a
// building collected by the setup wizard. The takt engine only reads it.
type BuildingConfiguration struct {
	BuildingType            string   `json:"building_type" example:"residential"`
	FloorCount              int      `json:"floor_count" example:"10"`
	BasementCount           int      `json:"basement_count" example:"2"`
	ZonesPerFloor           int      `json:"zones_per_floor" example:"3"`
	StructuralZonesPerFloor int      `json:"structural_zones_per_floor" example:"1"`
	SubstructureZonesCount  int      `json:"substructure_zones_count" example:"3"`
	TypicalFloorArea        float64  `json:"typical_floor_area" example:"850.5"`
	StructuralSystemCode    string   `json:"structural_system_code" example:"insitu_concrete"`
	MEPComplexityCode       string   `json:"mep_complexity_code" example:"commercial"`
	FoundationTypeCode      string   `json:"foundation_type_code" example:"piled"`
	GroundConditionCode     string   `json:"ground_condition_code" example:"soft_soil"`
	GroundImprovementCodes  []string `json:"ground_improvement_codes"`
	SiteConditionCode       string   `json:"site_condition_code" example:"urban_confined"`
	DeliveryMethodCode      string   `json:"delivery_method_code" example:"design_build"`
	FlowDirection           string   `json:"flow_direction" example:"bottom_up"`
}

// FlatLocationRow is one persistable row of the flattened Location Breakdown
// Structure. Parents always precede children in a flattened batch, so the bulk
// create endpoint can resolve ParentName against rows it has already inserted.
type FlatLocationRow struct {
	Name         string  `json:"name" example:"Floor 3"`
	LocationType string  `json:"location_type" example:"floor"`
	ParentName   string  `json:"parent_name,omitempty" example:"Main Building"`
	AreaSqm      float64 `json:"area_sqm,omitempty" example:"283.5"`
	Phase        string  `json:"phase,omitempty" example:"finishing"`
	SortOrder    int     `json:"sort_order" example:"4"`
}

// LocationCounts summarizes a flattened LBS. Zones counts only zone rows;
// Total counts every row including site, building and floor rows.
type LocationCounts struct {
	Total        int `json:"total" example:"55"`
	Zones        int `json:"zones" example:"51"`
	Substructure int `json:"substructure" example:"3"`
	Structural   int `json:"structural" example:"12"`
	Finishing    int `json:"finishing" example:"36"`
}

// TaktRecommendation is the engine's proposed takt time in working days.
type TaktRecommendation struct {
	Recommended int    `json:"recommended" example:"5"`
	RangeLow    int    `json:"range_low" example:"4"`
	RangeHigh   int    `json:"range_high" example:"6"`
	Reasoning   string `json:"reasoning" example:"MEP: Hospital-grade +35%"`
}

// DurationEstimate is the flow-line duration for a trade sequence moving
// through a zone set. A zero ZoneCount or TradeCount makes the whole estimate
// zero; callers must treat that as "not yet estimable", not a real schedule.
type DurationEstimate struct {
	ZoneCount        int `json:"zone_count" example:"12"`
	TradeCount       int `json:"trade_count" example:"5"`
	BufferSize       int `json:"buffer_size" example:"1"`
	TaktTimeDays     int `json:"takt_time_days" example:"5"`
	TotalTakts       int `json:"total_takts" example:"20"`
	TotalWorkingDays int `json:"total_working_days" example:"100"`
	CalendarDays     int `json:"calendar_days" example:"140"`
}

// LBSPreviewRequest is the wizard payload for generating a Location Breakdown
// Structure preview before the user applies it.
type LBSPreviewRequest struct {
	ProjectID     int                   `json:"project_id" example:"1"`
	Configuration BuildingConfiguration `json:"configuration"`
}

// RecommendationRequest asks for a takt time and buffer proposal.
type RecommendationRequest struct {
	ProjectID     int                   `json:"project_id" example:"1"`
	Configuration BuildingConfiguration `json:"configuration"`
}

// EstimateRequest asks for a flow-line duration estimate. WorkingDays is the
// weekly working-day set as lowercase day prefixes, e.g. ["mon","tue",...].
type EstimateRequest struct {
	ZoneCount    int      `json:"zone_count" example:"12"`
	TradeCount   int      `json:"trade_count" example:"5"`
	BufferSize   int      `json:"buffer_size" example:"1"`
	TaktTimeDays int      `json:"takt_time_days" example:"5"`
	WorkingDays  []string `json:"working_days"`
}

// BulkLocationRequest is the one-time "apply" action that persists a
// flattened LBS for a project.
type BulkLocationRequest struct {
	ProjectID int               `json:"project_id" example:"1"`
	Rows      []FlatLocationRow `json:"rows"`
}

// Location represents the location table.
type Location struct {
	ID           int     `json:"id" example:"101"`
	ProjectID    int     `json:"project_id" example:"1"`
	Name         string  `json:"name" example:"Fit-Out Zone 2"`
	LocationType string  `json:"location_type" example:"zone"`
	ParentID     *int    `json:"parent_id,omitempty" example:"100"`
	Phase        string  `json:"phase,omitempty" example:"finishing"`
	AreaSqm      float64 `json:"area_sqm,omitempty" example:"283.5"`
	SortOrder    int     `json:"sort_order" example:"7"`
}

// TaktSetup represents the project_takt_setup table: the takt parameters the
// user accepted at the end of the setup wizard.
type TaktSetup struct {
	ProjectID    int      `json:"project_id" example:"1"`
	TaktTimeDays int      `json:"takt_time_days" example:"5"`
	BufferSize   int      `json:"buffer_size" example:"1"`
	WorkingDays  []string `json:"working_days"`
	BaseTakt     int      `json:"base_takt" example:"5"`
}
