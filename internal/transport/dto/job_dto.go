package dto

import (
	"time"

	"dispatch-engine/internal/models"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job request
// from the web form or an API client.
type CreateJobRequest struct {
	CustomerFirstName string  `json:"customer_first_name" validate:"required"`
	CustomerLastName  string  `json:"customer_last_name" validate:"required"`
	CustomerPhone     string  `json:"customer_phone" validate:"required"`
	CustomerEmail     *string `json:"customer_email,omitempty" validate:"omitempty,email"`
	Location          string  `json:"location" validate:"required"`
	IssueType         string  `json:"issue_type" validate:"required"`
	IssueNotes        *string `json:"issue_notes,omitempty"`
	EmergencyLevel    int     `json:"emergency_level" validate:"required,gte=1,lte=5"`
}

// CreateInboundJobRequest carries a job request parsed out of an inbound
// free-text message. The sender's phone is the customer contact.
type CreateInboundJobRequest struct {
	CustomerPhone string `validate:"required"`
	Location      string `validate:"required"`
	Description   string `validate:"required"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID                 int64      `json:"id"`
	CustomerFirstName  string     `json:"customer_first_name"`
	CustomerLastName   string     `json:"customer_last_name"`
	CustomerPhone      string     `json:"customer_phone"`
	CustomerEmail      *string    `json:"customer_email,omitempty"`
	Location           string     `json:"location"`
	IssueType          string     `json:"issue_type"`
	IssueNotes         *string    `json:"issue_notes,omitempty"`
	EmergencyLevel     int        `json:"emergency_level"`
	EmergencyLabel     string     `json:"emergency_label"`
	Status             string     `json:"status"`
	IntakeChannel      string     `json:"intake_channel"`
	AcceptedProviderID *int64     `json:"accepted_provider_id,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// JobCounts is the per-status job tally used by the dashboard.
type JobCounts struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Broadcasting int64 `json:"broadcasting"`
	Accepted     int64 `json:"accepted"`
}

// MapJobToResponse converts a models.JobRequest to a JobResponse.
func MapJobToResponse(job *models.JobRequest) JobResponse {
	return JobResponse{
		ID:                 job.ID,
		CustomerFirstName:  job.CustomerFirstName,
		CustomerLastName:   job.CustomerLastName,
		CustomerPhone:      job.CustomerPhone,
		CustomerEmail:      job.CustomerEmail,
		Location:           job.Location,
		IssueType:          job.IssueType,
		IssueNotes:         job.IssueNotes,
		EmergencyLevel:     job.EmergencyLevel,
		EmergencyLabel:     models.EmergencyLabel(job.EmergencyLevel),
		Status:             string(job.Status),
		IntakeChannel:      string(job.IntakeChannel),
		AcceptedProviderID: job.AcceptedProviderID,
		CreatedAt:          job.CreatedAt,
		UpdatedAt:          job.UpdatedAt,
	}
}
