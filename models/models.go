package models

import (
	"time"

	_ "github.com/lib/pq"
)

type User struct {
	ID          int       `json:"id" example:"1"`
	Email       string    `json:"email" example:"user@example.com"`
	Password    string    `json:"password" example:""`
	FirstName   string    `json:"first_name" example:"John"`
	LastName    string    `json:"last_name" example:"Doe"`
	CreatedAt   time.Time `json:"created_at" example:"2026-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2026-01-15T10:30:00Z"`
	IsAdmin     bool      `json:"is_admin" example:"false"`
	Suspended   bool      `json:"suspended" example:"false"`
	CompanyName string    `json:"company_name,omitempty" example:"Acme Construction"`
}

type Session struct {
	UserID                int       `json:"user_id"`
	SessionID             string    `json:"session_id"`
	HostName              string    `json:"host_name"`
	IPAddress             string    `json:"ip_address"`
	Timestamp             time.Time `json:"timestp"`
	ExpiresAt             time.Time `json:"expires_at"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
}

// Project represents the project table (only the columns the takt planning
// endpoints need).
type Project struct {
	ProjectID int       `json:"project_id" example:"1"`
	Name      string    `json:"name" example:"Riverside Tower"`
	Status    string    `json:"status" example:"Inprogress"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-15T10:30:00Z"`
}
