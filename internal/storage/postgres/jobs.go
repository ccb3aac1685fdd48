package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/storage"
	"dispatch-engine/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, customer_first_name, customer_last_name, customer_phone, customer_email,
		location, issue_type, issue_notes, emergency_level, status, intake_channel,
		accepted_provider_id, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.JobRequest, error) {
	var job models.JobRequest
	err := row.Scan(
		&job.ID,
		&job.CustomerFirstName,
		&job.CustomerLastName,
		&job.CustomerPhone,
		&job.CustomerEmail,
		&job.Location,
		&job.IssueType,
		&job.IssueNotes,
		&job.EmergencyLevel,
		&job.Status,
		&job.IntakeChannel,
		&job.AcceptedProviderID,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create saves a new job request. Status and intake channel come from the
// caller; the accepted provider starts NULL.
func (r *JobRepo) Create(ctx context.Context, job *models.JobRequest) (*models.JobRequest, error) {
	query := fmt.Sprintf(`
		INSERT INTO job_requests
			(customer_first_name, customer_last_name, customer_phone, customer_email,
			 location, issue_type, issue_notes, emergency_level, status, intake_channel,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		job.CustomerFirstName,
		job.CustomerLastName,
		job.CustomerPhone,
		job.CustomerEmail,
		job.Location,
		job.IssueType,
		job.IssueNotes,
		job.EmergencyLevel,
		job.Status,
		job.IntakeChannel,
	)

	createdJob, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check_violation
			log.Printf("Error creating job: check constraint violation: %v\n", err)
			return nil, fmt.Errorf("failed to create job: invalid field value: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %d", createdJob.ID)
	return createdJob, nil
}

// GetByID retrieves a specific job request by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*models.JobRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_requests WHERE id = $1`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %d\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %d: %w", id, err)
	}

	return job, nil
}

// List retrieves all job requests, newest first.
func (r *JobRepo) List(ctx context.Context) ([]models.JobRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM job_requests ORDER BY created_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobRequest{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Printf("Error scanning job row: %v\n", err)
			return nil, fmt.Errorf("failed to scan jobs: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	return jobs, nil
}

// MarkBroadcasting transitions a job to BROADCASTING. The WHERE guard keeps
// an ACCEPTED job from moving backwards.
func (r *JobRepo) MarkBroadcasting(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE job_requests
		SET status = 'BROADCASTING', updated_at = NOW()
		WHERE id = $1 AND status IN ('PENDING', 'BROADCASTING')
	`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error marking job %d broadcasting: %v\n", id, err)
		return false, fmt.Errorf("failed to mark job %d broadcasting: %w", id, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// Claim performs the atomic first-provider-wins update. The precondition
// check and the write are one statement; the affected-row count is the
// sole arbiter of the race.
func (r *JobRepo) Claim(ctx context.Context, jobID, providerID int64) (bool, error) {
	query := `
		UPDATE job_requests
		SET status = 'ACCEPTED', accepted_provider_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'BROADCASTING' AND accepted_provider_id IS NULL
	`

	cmdTag, err := r.db.Exec(ctx, query, jobID, providerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error claiming job %d: unknown provider %d: %v\n", jobID, providerID, err)
			return false, fmt.Errorf("failed to claim job: invalid provider ID: %w", storage.ErrNotFound)
		}
		log.Printf("Error claiming job %d for provider %d: %v\n", jobID, providerID, err)
		return false, fmt.Errorf("failed to claim job %d: %w", jobID, err)
	}

	return cmdTag.RowsAffected() == 1, nil
}

// CountByStatus tallies jobs per lifecycle status for the dashboard.
func (r *JobRepo) CountByStatus(ctx context.Context) (*dto.JobCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PENDING'),
			COUNT(*) FILTER (WHERE status = 'BROADCASTING'),
			COUNT(*) FILTER (WHERE status = 'ACCEPTED')
		FROM job_requests
	`

	var counts dto.JobCounts
	err := r.db.QueryRow(ctx, query).Scan(
		&counts.Total,
		&counts.Pending,
		&counts.Broadcasting,
		&counts.Accepted,
	)
	if err != nil {
		log.Printf("Error counting jobs by status: %v\n", err)
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	return &counts, nil
}
