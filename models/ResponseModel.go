package models

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request"`
	Details string `json:"details,omitempty" example:""`
}

// LBSPreviewResponse returns the flattened LBS rows together with the counts
// the wizard displays next to the preview tree.
type LBSPreviewResponse struct {
	Success bool              `json:"success" example:"true"`
	Rows    []FlatLocationRow `json:"rows"`
	Counts  LocationCounts    `json:"counts"`
}

// RecommendationResponse bundles the takt and buffer proposals for one
// building configuration.
type RecommendationResponse struct {
	Success      bool               `json:"success" example:"true"`
	Takt         TaktRecommendation `json:"takt"`
	BufferSize   int                `json:"buffer_size" example:"2"`
	BaseTaktDays int                `json:"base_takt_days" example:"5"`
}

// EstimateResponse wraps a DurationEstimate. Estimable is false when the zone
// or trade count is zero and the figures must not be shown as a real schedule.
type EstimateResponse struct {
	Success   bool             `json:"success" example:"true"`
	Estimable bool             `json:"estimable" example:"true"`
	Estimate  DurationEstimate `json:"estimate"`
}

// BulkLocationResponse reports the outcome of an LBS apply action.
type BulkLocationResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Locations created successfully"`
	Created int    `json:"created" example:"55"`
	Ids     []int  `json:"ids"`
}

// TaktSetupResponse wraps the persisted takt settings of a project.
type TaktSetupResponse struct {
	Success bool      `json:"success" example:"true"`
	Message string    `json:"message" example:"Takt setup saved"`
	Data    *TaktSetup `json:"data,omitempty"`
}
