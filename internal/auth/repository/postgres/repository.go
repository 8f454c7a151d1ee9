package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/storelane/auth-service/internal/auth/domain"
	autherror "github.com/storelane/auth-service/internal/errors"
)

// uniqueViolation is the postgres error code raised when the users.email
// unique index rejects a concurrent duplicate insert.
const uniqueViolation = "23505"

// PgxIface is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type PgxIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByEmail returns the user for a normalized email, or nil when no account
// exists.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, phone_number, role, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, email)

	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.PhoneNumber, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, first_name, last_name, phone_number, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.PhoneNumber, user.Role, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}
