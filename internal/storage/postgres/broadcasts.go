package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BroadcastRepo implements the storage.BroadcastRepository interface using
// PostgreSQL.
type BroadcastRepo struct {
	db Querier
}

// NewBroadcastRepo creates a new BroadcastRepo.
func NewBroadcastRepo(db *pgxpool.Pool) *BroadcastRepo {
	return &BroadcastRepo{db: db}
}

// Compile-time check to ensure BroadcastRepo implements BroadcastRepository
var _ storage.BroadcastRepository = (*BroadcastRepo)(nil)

// Create saves one job x provider tracking row with responseStatus NONE.
func (r *BroadcastRepo) Create(ctx context.Context, jobID, providerID int64) (*models.JobBroadcast, error) {
	query := `
		INSERT INTO job_broadcasts (job_request_id, provider_id, response_status, sent_at)
		VALUES ($1, $2, 'NONE', NOW())
		RETURNING id, job_request_id, provider_id, response_status, sent_at, responded_at
	`

	var b models.JobBroadcast
	err := r.db.QueryRow(ctx, query, jobID, providerID).Scan(
		&b.ID,
		&b.JobRequestID,
		&b.ProviderID,
		&b.ResponseStatus,
		&b.SentAt,
		&b.RespondedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23503": // foreign_key_violation
				log.Printf("Error creating broadcast (job %d, provider %d): missing reference: %v\n", jobID, providerID, err)
				return nil, fmt.Errorf("failed to create broadcast: invalid job or provider: %w", storage.ErrNotFound)
			case "23505": // unique_violation: one row per job x provider pair
				log.Printf("Broadcast already exists for job %d, provider %d\n", jobID, providerID)
				return nil, fmt.Errorf("failed to create broadcast: already broadcast to provider: %w", storage.ErrConflict)
			}
		}
		log.Printf("Error creating broadcast (job %d, provider %d): %v\n", jobID, providerID, err)
		return nil, fmt.Errorf("failed to create broadcast: %w", err)
	}

	return &b, nil
}

// MarkResponse records a provider's first response on their own row.
func (r *BroadcastRepo) MarkResponse(ctx context.Context, jobID, providerID int64, status models.ResponseStatus, respondedAt time.Time) (bool, error) {
	query := `
		UPDATE job_broadcasts
		SET response_status = $3, responded_at = $4
		WHERE job_request_id = $1 AND provider_id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, jobID, providerID, status, respondedAt)
	if err != nil {
		log.Printf("Error marking broadcast response (job %d, provider %d, %s): %v\n", jobID, providerID, status, err)
		return false, fmt.Errorf("failed to mark broadcast response: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// MarkOthersTooLate bulk-updates every sibling row of the winner. Rows that
// already carry a response keep their responded_at.
func (r *BroadcastRepo) MarkOthersTooLate(ctx context.Context, jobID, winnerProviderID int64, respondedAt time.Time) error {
	query := `
		UPDATE job_broadcasts
		SET response_status = 'TOO_LATE', responded_at = COALESCE(responded_at, $3)
		WHERE job_request_id = $1 AND provider_id <> $2
	`

	if _, err := r.db.Exec(ctx, query, jobID, winnerProviderID, respondedAt); err != nil {
		log.Printf("Error marking other broadcasts too late for job %d: %v\n", jobID, err)
		return fmt.Errorf("failed to mark other broadcasts too late: %w", err)
	}

	return nil
}

// ListRecipients returns the providers that received a broadcast for the
// job, excluding one provider id (the winner, typically).
func (r *BroadcastRepo) ListRecipients(ctx context.Context, jobID, excludeProviderID int64) ([]models.Provider, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM job_broadcasts b
		JOIN providers p ON p.id = b.provider_id
		JOIN users u ON u.id = p.user_id
		WHERE b.job_request_id = $1 AND b.provider_id <> $2
		ORDER BY b.id
	`, providerColumns)

	rows, err := r.db.Query(ctx, query, jobID, excludeProviderID)
	if err != nil {
		log.Printf("Error querying broadcast recipients for job %d: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to query broadcast recipients: %w", err)
	}
	defer rows.Close()

	providers := []models.Provider{}
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			log.Printf("Error scanning broadcast recipient row: %v\n", err)
			return nil, fmt.Errorf("failed to scan broadcast recipients: %w", err)
		}
		providers = append(providers, *provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read broadcast recipients: %w", err)
	}

	return providers, nil
}

// ListAll returns every broadcast row with its provider and user joined,
// for the dashboard's per-job history.
func (r *BroadcastRepo) ListAll(ctx context.Context) ([]models.JobBroadcast, error) {
	query := fmt.Sprintf(`
		SELECT b.id, b.job_request_id, b.provider_id, b.response_status, b.sent_at, b.responded_at,
			%s
		FROM job_broadcasts b
		JOIN providers p ON p.id = b.provider_id
		JOIN users u ON u.id = p.user_id
		ORDER BY b.job_request_id DESC, b.id
	`, providerColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying broadcasts: %v\n", err)
		return nil, fmt.Errorf("failed to query broadcasts: %w", err)
	}
	defer rows.Close()

	broadcasts := []models.JobBroadcast{}
	for rows.Next() {
		var b models.JobBroadcast
		var provider models.Provider
		var user models.User
		err := rows.Scan(
			&b.ID,
			&b.JobRequestID,
			&b.ProviderID,
			&b.ResponseStatus,
			&b.SentAt,
			&b.RespondedAt,
			&provider.ID,
			&provider.UserID,
			&provider.ServiceArea,
			&provider.IsActive,
			&provider.CreatedAt,
			&provider.UpdatedAt,
			&user.ID,
			&user.Name,
			&user.PhoneNumber,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			log.Printf("Error scanning broadcast row: %v\n", err)
			return nil, fmt.Errorf("failed to scan broadcasts: %w", err)
		}
		provider.User = &user
		b.Provider = &provider
		broadcasts = append(broadcasts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read broadcasts: %w", err)
	}

	return broadcasts, nil
}
