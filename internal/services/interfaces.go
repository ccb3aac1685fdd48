package services

import (
	"context"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/transport/dto"
)

// JobService defines the interface for the job lifecycle: intake,
// broadcast fan-out, and the claim race.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.JobRequest, error)
	CreateInboundJob(ctx context.Context, req *dto.CreateInboundJobRequest) (*models.JobRequest, error)
	GetJobByID(ctx context.Context, id int64) (*models.JobRequest, error)
	ListJobs(ctx context.Context) ([]models.JobRequest, error)
	BroadcastJob(ctx context.Context, jobID int64) error
	ClaimJob(ctx context.Context, jobID, providerID int64) (*models.JobRequest, error)
	DeclineJob(ctx context.Context, jobID, providerID int64) error
}

// InboundResult is the interpreter's verdict on one inbound message:
// the reply to send back over the same channel, and the newly created job
// when the message was a customer request (nil for provider commands).
type InboundResult struct {
	Reply string
	Job   *models.JobRequest
}

// InboundService defines the interface for the inbound command
// interpreter.
type InboundService interface {
	HandleMessage(ctx context.Context, from, body string) (*InboundResult, error)
}

// ProviderService defines the interface for provider directory management.
type ProviderService interface {
	ListProviders(ctx context.Context) ([]dto.ProviderResponse, error)
	UpdateProvider(ctx context.Context, req *dto.UpdateProviderRequest) (*dto.ProviderResponse, error)
	FindByPhone(ctx context.Context, phone string) (*models.Provider, error)
}

// DashboardService defines the interface for dashboard aggregates.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	Jobs(ctx context.Context) ([]dto.DashboardJob, error)
}
