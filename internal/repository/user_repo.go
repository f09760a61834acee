package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"house_hunter/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (name, role, email, number, password_hash, display_image) VALUES (?, ?, ?, ?, ?, ?)`

	selectUserByEmailSQL = `SELECT id, name, role, email, number, password_hash, display_image FROM users WHERE email = ?`
)

// Create inserts a new user and returns its ID. A UNIQUE(email) violation
// is mapped to ErrDuplicateEmail so the race between the service-level
// existence check and the insert still yields a clean conflict.
func (r *UserSQLite) Create(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Name, u.Role, u.Email, u.Number, u.PasswordHash, u.DisplayImage)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectUserByEmailSQL, email).Scan(
		&u.ID, &u.Name, &u.Role, &u.Email, &u.Number, &u.PasswordHash, &u.DisplayImage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return &u, nil
}

// isUniqueViolation detects the modernc sqlite constraint error by message;
// the driver exposes no typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
