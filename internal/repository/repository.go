package repository

import (
	"context"
	"database/sql"
	"errors"

	"house_hunter/internal/models"
)

// Sentinel errors surfaced to the service layer.
var (
	// ErrDuplicateEmail is returned when an insert violates the
	// UNIQUE(email) constraint on users.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound is returned when a listing id matches no row.
	ErrNotFound = errors.New("listing not found")
)

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Listings exposes CRUD plus filtered search over house adverts.
type Listings interface {
	List(ctx context.Context, f ListingFilter) ([]models.Listing, error)
	Create(ctx context.Context, l models.Listing) (string, error)
	GetByID(ctx context.Context, id string) (models.Listing, error)
	Replace(ctx context.Context, id string, l models.Listing) (ReplaceResult, error)
	DeleteByID(ctx context.Context, id string) (int, error)
}

// ReplaceResult mirrors the store's update acknowledgement.
type ReplaceResult struct {
	Matched  int `json:"matched"`
	Modified int `json:"modified"`
}

type Repository struct {
	Users    Users
	Listings Listings
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Listings: NewListingSQLite(db),
	}
}
