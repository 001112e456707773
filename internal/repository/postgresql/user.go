package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pointage/timeclock-backend-go/internal/domain/user"
	"github.com/pointage/timeclock-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, email, password_hash, role, full_name, username, department,
	avatar_url, created_at, updated_at
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FullName, &u.Username,
		&u.Department, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, password_hash, role, full_name, username, department, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.FullName,
		u.Username,
		u.Department,
		u.AvatarURL,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// ListByRole implements user.UserRepository.
func (r *userRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY full_name`

	return r.queryUsers(ctx, q, query, role)
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY full_name`

	return r.queryUsers(ctx, q, query)
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $2, password_hash = $3, role = $4, full_name = $5,
		    username = $6, department = $7, avatar_url = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Role, u.FullName,
		u.Username, u.Department, u.AvatarURL,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) queryUsers(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]user.User, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}
