package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dispatch-engine/internal/models"
	"dispatch-engine/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.PhoneNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, name, phone_number, created_at, updated_at FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}

	return user, nil
}

// Update modifies a user's name and/or phone based on non-nil arguments.
func (r *UserRepo) Update(ctx context.Context, id int64, name, phone *string) (*models.User, error) {
	var setClauses []string
	args := []interface{}{}

	if name != nil {
		args = append(args, *name)
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", len(args)))
	}
	if phone != nil {
		args = append(args, *phone)
		setClauses = append(setClauses, fmt.Sprintf("phone_number = $%d", len(args)))
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, phone_number, created_at, updated_at
	`, strings.Join(setClauses, ", "), len(args))

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found for update with ID: %d\n", id)
			return nil, storage.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Error updating user %d: phone number already in use: %v\n", id, err)
			return nil, fmt.Errorf("failed to update user: phone number already in use: %w", storage.ErrConflict)
		}
		log.Printf("Error updating user %d: %v\n", id, err)
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	return user, nil
}
