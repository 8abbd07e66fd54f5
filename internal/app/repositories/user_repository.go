package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erenyil/enrollhub/internal/app/models"
	"github.com/erenyil/enrollhub/internal/pkg/apperrors"
	"github.com/erenyil/enrollhub/internal/pkg/dberrors"
)

const userColumns = `
	id, username, email, password, is_staff, is_superuser,
	created_at, updated_at, last_login_at
`

// UserRepository handles database operations for accounts and their
// permissions
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new account
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, is_staff, is_superuser)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.IsStaff,
		user.IsSuperuser,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameTaken
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves an account by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves an account by its unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// UpdateFlags sets the staff/superuser flags of an account
func (r *UserRepository) UpdateFlags(ctx context.Context, userID int64, isStaff, isSuperuser bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_staff = $1, is_superuser = $2, updated_at = NOW() WHERE id = $3`,
		isStaff, isSuperuser, userID)
	if err != nil {
		return fmt.Errorf("error updating user flags: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin records the time of a successful login
func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// HasPermission reports whether the account holds the given permission
// codename
func (r *UserRepository) HasPermission(ctx context.Context, userID int64, codename string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_permissions WHERE user_id = $1 AND codename = $2)`,
		userID, codename).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking permission: %w", err)
	}
	return exists, nil
}

// GrantPermission attaches a permission codename to an account. Granting an
// already-held permission is a no-op; the return value reports whether the
// grant was newly made.
func (r *UserRepository) GrantPermission(ctx context.Context, userID int64, codename string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO user_permissions (user_id, codename)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT user_permissions_user_codename_key DO NOTHING`,
		userID, codename)
	if err != nil {
		return false, fmt.Errorf("error granting permission: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
