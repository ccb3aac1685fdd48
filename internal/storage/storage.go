package storage

import (
	"context"
	"time"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/transport/dto"
)

// JobRepository defines the interface for job request data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.JobRequest) (*models.JobRequest, error)
	GetByID(ctx context.Context, id int64) (*models.JobRequest, error)
	List(ctx context.Context) ([]models.JobRequest, error)
	// MarkBroadcasting flips a PENDING (or already BROADCASTING) job to
	// BROADCASTING. Returns false without error when the job is in neither
	// state, so an ACCEPTED job is never regressed.
	MarkBroadcasting(ctx context.Context, id int64) (bool, error)
	// Claim is the single atomic conditional update arbitrating the claim
	// race: it sets status=ACCEPTED and accepted_provider_id in one
	// WHERE-guarded write and reports whether this caller won (exactly one
	// row affected). A false return means another provider got there first
	// or the job was not claimable; nothing is mutated in that case.
	Claim(ctx context.Context, jobID, providerID int64) (bool, error)
	CountByStatus(ctx context.Context) (*dto.JobCounts, error)
}

// ProviderRepository defines the interface for provider data operations.
// Providers are returned with their user record populated.
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Provider, error)
	GetByPhone(ctx context.Context, phone string) (*models.Provider, error)
	ListActive(ctx context.Context) ([]models.Provider, error)
	List(ctx context.Context) ([]dto.ProviderResponse, error)
	Update(ctx context.Context, id int64, serviceArea *string, isActive *bool) (*models.Provider, error)
	Count(ctx context.Context) (*dto.ProviderCounts, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, name, phone *string) (*models.User, error)
}

// BroadcastRepository defines the interface for job broadcast tracking rows.
type BroadcastRepository interface {
	Create(ctx context.Context, jobID, providerID int64) (*models.JobBroadcast, error)
	// MarkResponse records a provider's own response on their broadcast row.
	// A missing row is not an error; the returned bool reports whether a row
	// was updated.
	MarkResponse(ctx context.Context, jobID, providerID int64, status models.ResponseStatus, respondedAt time.Time) (bool, error)
	// MarkOthersTooLate bulk-flips every sibling row of the winner to
	// TOO_LATE. Informational only; may lag the claim.
	MarkOthersTooLate(ctx context.Context, jobID, winnerProviderID int64, respondedAt time.Time) error
	// ListRecipients returns the providers (with users) that received a
	// broadcast for the job, excluding one provider id.
	ListRecipients(ctx context.Context, jobID, excludeProviderID int64) ([]models.Provider, error)
	// ListAll returns every broadcast row with its provider and user joined,
	// newest job first, for the dashboard.
	ListAll(ctx context.Context) ([]models.JobBroadcast, error)
}
