package dto

import "time"

// UpdateProviderRequest defines the dashboard's partial provider update.
// Nil fields are left unchanged.
type UpdateProviderRequest struct {
	ID          int64   `json:"-" validate:"required"`
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ServiceArea *string `json:"service_area,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ProviderResponse is the dashboard view of a provider, flattened with its
// user record and activity counts.
type ProviderResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	ServiceArea       string    `json:"service_area"`
	IsActive          bool      `json:"is_active"`
	AcceptedJobsCount int64     `json:"accepted_jobs_count"`
	TotalBroadcasts   int64     `json:"total_broadcasts"`
	CreatedAt         time.Time `json:"created_at"`
}

// ProviderCounts is the provider tally used by the dashboard.
type ProviderCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
