package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"house_hunter/internal/models"

	"github.com/google/uuid"
)

type ListingSQLite struct {
	db *sql.DB
}

func NewListingSQLite(db *sql.DB) *ListingSQLite { return &ListingSQLite{db: db} }

var _ Listings = (*ListingSQLite)(nil)

const (
	listingColumns = `id, name, city, owner_name, owner_email, contact_number, rent_per_month,
		availability, description, location, bedrooms, bathrooms, total_rooms, image, home_size_sqft`

	insertListingSQL = `INSERT INTO listings (` + listingColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectListingByIDSQL = `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`

	// Full-field replace; matches the store's replace-update semantics.
	replaceListingSQL = `UPDATE listings SET
		name=?, city=?, owner_name=?, owner_email=?, contact_number=?, rent_per_month=?,
		availability=?, description=?, location=?, bedrooms=?, bathrooms=?, total_rooms=?,
		image=?, home_size_sqft=?
		WHERE id = ?`

	deleteListingSQL = `DELETE FROM listings WHERE id = ?`
)

// List returns listings matching the filter, in insertion order.
func (r *ListingSQLite) List(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	q := `SELECT ` + listingColumns + ` FROM listings`
	where, args := f.SQL()
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY rowid ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	out := make([]models.Listing, 0, 16)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new listing under a fresh opaque id and returns it.
func (r *ListingSQLite) Create(ctx context.Context, l models.Listing) (string, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, insertListingSQL,
		l.ID, l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
		l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
		l.Image, l.HomeSizeSqFt,
	)
	if err != nil {
		return "", fmt.Errorf("insert listing: %w", err)
	}
	return l.ID, nil
}

// GetByID fetches a single listing. Returns ErrNotFound if no row matches.
func (r *ListingSQLite) GetByID(ctx context.Context, id string) (models.Listing, error) {
	row := r.db.QueryRowContext(ctx, selectListingByIDSQL, id)
	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, ErrNotFound
		}
		return models.Listing{}, fmt.Errorf("select listing %q: %w", id, err)
	}
	return l, nil
}

// Replace overwrites every mutable field of the listing with the given id.
func (r *ListingSQLite) Replace(ctx context.Context, id string, l models.Listing) (ReplaceResult, error) {
	res, err := r.db.ExecContext(ctx, replaceListingSQL,
		l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
		l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
		l.Image, l.HomeSizeSqFt,
		id,
	)
	if err != nil {
		return ReplaceResult{}, fmt.Errorf("replace listing %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ReplaceResult{}, fmt.Errorf("rows affected for listing %q: %w", id, err)
	}
	if n == 0 {
		return ReplaceResult{}, ErrNotFound
	}
	// SQLite counts matched rows; no separate modified count is available.
	return ReplaceResult{Matched: int(n), Modified: int(n)}, nil
}

// DeleteByID removes a listing and returns the deleted count.
func (r *ListingSQLite) DeleteByID(ctx context.Context, id string) (int, error) {
	res, err := r.db.ExecContext(ctx, deleteListingSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete listing %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for listing %q: %w", id, err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}
	return int(n), nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID, &l.Name, &l.City, &l.OwnerName, &l.OwnerEmail, &l.ContactNumber, &l.RentPerMonth,
		&l.Availability, &l.Description, &l.Location, &l.Bedrooms, &l.Bathrooms, &l.TotalRooms,
		&l.Image, &l.HomeSizeSqFt,
	)
	return l, err
}
