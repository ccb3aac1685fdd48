package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/storage"
	"dispatch-engine/internal/transport/dto"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const providerColumns = `p.id, p.user_id, p.service_area, p.is_active, p.created_at, p.updated_at,
		u.id, u.name, u.phone_number, u.created_at, u.updated_at`

// ProviderRepo implements the storage.ProviderRepository interface using
// PostgreSQL. All reads join the owning user so callers get the messaging
// address in one round trip.
type ProviderRepo struct {
	db Querier
}

// NewProviderRepo creates a new ProviderRepo.
func NewProviderRepo(db *pgxpool.Pool) *ProviderRepo {
	return &ProviderRepo{db: db}
}

// Compile-time check to ensure ProviderRepo implements ProviderRepository
var _ storage.ProviderRepository = (*ProviderRepo)(nil)

func scanProvider(row pgx.Row) (*models.Provider, error) {
	var provider models.Provider
	var user models.User
	err := row.Scan(
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
		return nil, err
	}
	provider.User = &user
	return &provider, nil
}

// GetByID retrieves a provider (with user) by its ID.
func (r *ProviderRepo) GetByID(ctx context.Context, id int64) (*models.Provider, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM providers p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`, providerColumns)

	provider, err := scanProvider(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Provider not found with ID: %d\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning provider by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get provider by ID %d: %w", id, err)
	}

	return provider, nil
}

// GetByPhone resolves a messaging address to a provider identity.
func (r *ProviderRepo) GetByPhone(ctx context.Context, phone string) (*models.Provider, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM providers p
		JOIN users u ON u.id = p.user_id
		WHERE u.phone_number = $1
	`, providerColumns)

	provider, err := scanProvider(r.db.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning provider by phone %s: %v\n", phone, err)
		return nil, fmt.Errorf("failed to get provider by phone: %w", err)
	}

	return provider, nil
}

// ListActive retrieves all providers eligible for broadcasts.
func (r *ProviderRepo) ListActive(ctx context.Context) ([]models.Provider, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM providers p
		JOIN users u ON u.id = p.user_id
		WHERE p.is_active = TRUE
		ORDER BY p.id
	`, providerColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying active providers: %v\n", err)
		return nil, fmt.Errorf("failed to query active providers: %w", err)
	}
	defer rows.Close()

	providers := []models.Provider{}
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			log.Printf("Error scanning active provider row: %v\n", err)
			return nil, fmt.Errorf("failed to scan active providers: %w", err)
		}
		providers = append(providers, *provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active providers: %w", err)
	}

	return providers, nil
}

// List retrieves all providers with their activity counts for the dashboard.
func (r *ProviderRepo) List(ctx context.Context) ([]dto.ProviderResponse, error) {
	query := `
		SELECT p.id, p.user_id, u.name, u.phone_number, p.service_area, p.is_active,
			(SELECT COUNT(*) FROM job_requests j WHERE j.accepted_provider_id = p.id),
			(SELECT COUNT(*) FROM job_broadcasts b WHERE b.provider_id = p.id),
			p.created_at
		FROM providers p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying providers: %v\n", err)
		return nil, fmt.Errorf("failed to query providers: %w", err)
	}
	defer rows.Close()

	providers := []dto.ProviderResponse{}
	for rows.Next() {
		var p dto.ProviderResponse
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Phone,
			&p.ServiceArea,
			&p.IsActive,
			&p.AcceptedJobsCount,
			&p.TotalBroadcasts,
			&p.CreatedAt,
		)
		if err != nil {
			log.Printf("Error scanning provider row: %v\n", err)
			return nil, fmt.Errorf("failed to scan providers: %w", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read providers: %w", err)
	}

	return providers, nil
}

// Update modifies a provider's own fields based on non-nil arguments.
func (r *ProviderRepo) Update(ctx context.Context, id int64, serviceArea *string, isActive *bool) (*models.Provider, error) {
	var setClauses []string
	args := []interface{}{}

	if serviceArea != nil {
		args = append(args, *serviceArea)
		setClauses = append(setClauses, fmt.Sprintf("service_area = $%d", len(args)))
	}
	if isActive != nil {
		args = append(args, *isActive)
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(setClauses) == 0 {
		// Nothing to change; return the current record.
		return r.GetByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE providers
		SET %s
		WHERE id = $%d
		RETURNING id
	`, strings.Join(setClauses, ", "), len(args))

	var updatedID int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Provider not found for update with ID: %d\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating provider %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to update provider %d: %w", id, err)
	}

	log.Printf("Provider updated successfully: %d", updatedID)
	return r.GetByID(ctx, updatedID)
}

// Count tallies total and active providers for the dashboard.
func (r *ProviderRepo) Count(ctx context.Context) (*dto.ProviderCounts, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM providers
	`

	var counts dto.ProviderCounts
	if err := r.db.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		log.Printf("Error counting providers: %v\n", err)
		return nil, fmt.Errorf("failed to count providers: %w", err)
	}

	return &counts, nil
}
