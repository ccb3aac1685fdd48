package dto

import "time"

// DashboardStats aggregates the counts shown at the top of the dashboard.
type DashboardStats struct {
	Jobs      JobCounts      `json:"jobs"`
	Providers ProviderCounts `json:"providers"`
}

// DashboardBroadcast is one broadcast row as shown on the dashboard.
type DashboardBroadcast struct {
	ID             int64      `json:"id"`
	ProviderID     int64      `json:"provider_id"`
	ProviderName   string     `json:"provider_name"`
	ProviderPhone  string     `json:"provider_phone"`
	ResponseStatus string     `json:"response_status"`
	SentAt         time.Time  `json:"sent_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty"`
}

// DashboardProviderRef identifies the provider that won a job.
type DashboardProviderRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// DashboardJob is a job with its broadcast history, formatted for the
// dashboard.
type DashboardJob struct {
	ID               int64                 `json:"id"`
	CustomerName     string                `json:"customer_name"`
	CustomerPhone    string                `json:"customer_phone"`
	Location         string                `json:"location"`
	IssueInfo        string                `json:"issue_info"`
	EmergencyLevel   int                   `json:"emergency_level"`
	EmergencyLabel   string                `json:"emergency_label"`
	Status           string                `json:"status"`
	IntakeChannel    string                `json:"intake_channel"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	AcceptedProvider *DashboardProviderRef `json:"accepted_provider,omitempty"`
	Broadcasts       []DashboardBroadcast  `json:"broadcasts"`
	BroadcastCount   int                   `json:"broadcast_count"`
}
