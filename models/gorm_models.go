package models

import (
	"time"
)

// GORM-compatible models with proper tags

// TaktPlanGorm represents the takt_plan table with GORM tags
type TaktPlanGorm struct {
	ID           string              `gorm:"primaryKey;column:id" json:"id"`
	ProjectID    int                 `gorm:"column:project_id;not null" json:"project_id"`
	Name         string              `gorm:"column:name;not null" json:"name"`
	Version      int                 `gorm:"column:version;default:1" json:"version"`
	Status       string              `gorm:"column:status;not null;default:'draft'" json:"status"`
	TaktTimeDays int                 `gorm:"column:takt_time_days;not null" json:"takt_time_days"`
	BufferSize   int                 `gorm:"column:buffer_size;default:0" json:"buffer_size"`
	NumZones     int                 `gorm:"column:num_zones" json:"num_zones"`
	NumTrades    int                 `gorm:"column:num_trades" json:"num_trades"`
	TotalPeriods int                 `gorm:"column:total_periods" json:"total_periods"`
	StartDate    time.Time           `gorm:"column:start_date" json:"start_date"`
	EndDate      time.Time           `gorm:"column:end_date" json:"end_date"`
	WorkingDays  string              `gorm:"column:working_days;default:'mon,tue,wed,thu,fri'" json:"working_days"`
	GeneratedBy  string              `gorm:"column:generated_by;default:'manual'" json:"generated_by"`
	CreatedAt    time.Time           `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;not null" json:"updated_at"`
	Zones        []TaktPlanZoneGorm  `gorm:"foreignKey:PlanID;references:ID" json:"zones"`
	Wagons       []TaktPlanWagonGorm `gorm:"foreignKey:PlanID;references:ID" json:"wagons"`
}

// TableName specifies the table name for TaktPlanGorm
func (TaktPlanGorm) TableName() string {
	return "takt_plan"
}

// TaktPlanZoneGorm represents the takt_plan_zone table with GORM tags
type TaktPlanZoneGorm struct {
	ID         string  `gorm:"primaryKey;column:id" json:"id"`
	PlanID     string  `gorm:"column:plan_id;not null;index" json:"plan_id"`
	LocationID int     `gorm:"column:location_id" json:"location_id"`
	Name       string  `gorm:"column:name;not null" json:"name"`
	Code       string  `gorm:"column:code" json:"code"`
	Sequence   int     `gorm:"column:sequence;not null" json:"sequence"`
	AreaSqm    float64 `gorm:"column:area_sqm" json:"area_sqm"`
}

// TableName specifies the table name for TaktPlanZoneGorm
func (TaktPlanZoneGorm) TableName() string {
	return "takt_plan_zone"
}

// TaktPlanWagonGorm represents the takt_plan_wagon table with GORM tags
type TaktPlanWagonGorm struct {
	ID           string `gorm:"primaryKey;column:id" json:"id"`
	PlanID       string `gorm:"column:plan_id;not null;index" json:"plan_id"`
	TradeID      string `gorm:"column:trade_id;not null" json:"trade_id"`
	Name         string `gorm:"column:name" json:"name"`
	Sequence     int    `gorm:"column:sequence;not null" json:"sequence"`
	DurationDays int    `gorm:"column:duration_days;not null" json:"duration_days"`
	CrewSize     int    `gorm:"column:crew_size" json:"crew_size"`
	BufferAfter  int    `gorm:"column:buffer_after;default:0" json:"buffer_after"`
}

// TableName specifies the table name for TaktPlanWagonGorm
func (TaktPlanWagonGorm) TableName() string {
	return "takt_plan_wagon"
}

// CreateTaktPlanRequest is the payload for creating a takt plan from applied
// locations and the selected trade sequence.
type CreateTaktPlanRequest struct {
	ProjectID    int                `json:"project_id" example:"1"`
	Name         string             `json:"name" example:"Tower A baseline"`
	TaktTimeDays int                `json:"takt_time_days" example:"5"`
	BufferSize   int                `json:"buffer_size" example:"1"`
	StartDate    time.Time          `json:"start_date" example:"2026-03-02T00:00:00Z"`
	WorkingDays  []string           `json:"working_days"`
	LocationIDs  []int              `json:"location_ids"`
	Wagons       []PlanWagonRequest `json:"wagons"`
}

// PlanWagonRequest is one trade wagon in a plan creation request.
type PlanWagonRequest struct {
	TradeID      string `json:"trade_id" example:"drywall"`
	Name         string `json:"name" example:"Drywall"`
	Sequence     int    `json:"sequence" example:"2"`
	DurationDays int    `json:"duration_days" example:"5"`
	CrewSize     int    `json:"crew_size" example:"4"`
	BufferAfter  int    `json:"buffer_after" example:"1"`
}
