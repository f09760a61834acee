package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"house_hunter/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func newMockListingRepo(t *testing.T) (*ListingSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewListingSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

var listingCols = []string{
	"id", "name", "city", "owner_name", "owner_email", "contact_number", "rent_per_month",
	"availability", "description", "location", "bedrooms", "bathrooms", "total_rooms", "image", "home_size_sqft",
}

func sampleListing(id string) models.Listing {
	return models.Listing{
		ID:            id,
		Name:          "Lakeview Cottage",
		City:          "Austin",
		OwnerName:     "Alice",
		OwnerEmail:    "alice@example.com",
		ContactNumber: "555-0101",
		RentPerMonth:  800,
		Availability:  "available",
		Description:   "two-story cottage near the lake",
		Location:      "12 Lakeshore Dr",
		Bedrooms:      3,
		Bathrooms:     2,
		TotalRooms:    6,
		Image:         "cottage.png",
		HomeSizeSqFt:  1400,
	}
}

func listingRow(l models.Listing) *sqlmock.Rows {
	return sqlmock.NewRows(listingCols).AddRow(
		l.ID, l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
		l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
		l.Image, l.HomeSizeSqFt,
	)
}

func TestListingSQLite_List_NoFilterMatchesEverything(t *testing.T) {
	repo, mock, cleanup := newMockListingRepo(t)
	defer cleanup()

	a := sampleListing("id-a")
	b := sampleListing("id-b")
	q := `SELECT ` + listingColumns + ` FROM listings ORDER BY rowid ASC`
	mock.ExpectQuery(regexp.QuoteMeta(q)).WillReturnRows(listingRow(a).AddRow(
		b.ID, b.Name, b.City, b.OwnerName, b.OwnerEmail, b.ContactNumber, b.RentPerMonth,
		b.Availability, b.Description, b.Location, b.Bedrooms, b.Bathrooms, b.TotalRooms,
		b.Image, b.HomeSizeSqFt,
	))

	got, err := repo.List(context.Background(), ListingFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Fatalf("unexpected listings: %+v", got)
	}
}

func TestListingSQLite_List_FilterAppliedAsWhereClause(t *testing.T) {
	repo, mock, cleanup := newMockListingRepo(t)
	defer cleanup()

	f := ListingFilter{Bedrooms: intp(3), City: "austin"}
	where, _ := f.SQL()
	q := `SELECT ` + listingColumns + ` FROM listings WHERE ` + where + ` ORDER BY rowid ASC`
	mock.ExpectQuery(regexp.QuoteMeta(q)).
		WithArgs(3, "austin").
		WillReturnRows(listingRow(sampleListing("id-a")))

	got, err := repo.List(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "id-a" {
		t.Fatalf("unexpected listings: %+v", got)
	}
}

func TestListingSQLite_Create(t *testing.T) {
	t.Run("keeps provided id", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		l := sampleListing("preset-id")
		mock.ExpectExec(regexp.QuoteMeta(insertListingSQL)).
			WithArgs(
				l.ID, l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
				l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
				l.Image, l.HomeSizeSqFt,
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		id, err := repo.Create(context.Background(), l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "preset-id" {
			t.Fatalf("expected preset id, got %q", id)
		}
	})

	t.Run("assigns a uuid when id is empty", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		l := sampleListing("")
		mock.ExpectExec(regexp.QuoteMeta(insertListingSQL)).
			WithArgs(
				sqlmock.AnyArg(), l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
				l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
				l.Image, l.HomeSizeSqFt,
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		id, err := repo.Create(context.Background(), l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected a uuid id, got %q: %v", id, err)
		}
	})
}

func TestListingSQLite_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		l := sampleListing("id-a")
		mock.ExpectQuery(regexp.QuoteMeta(selectListingByIDSQL)).
			WithArgs("id-a").
			WillReturnRows(listingRow(l))

		got, err := repo.GetByID(context.Background(), "id-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != l {
			t.Fatalf("unexpected listing: want %+v, got %+v", l, got)
		}
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectListingByIDSQL)).
			WithArgs("nope").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListingSQLite_Replace(t *testing.T) {
	l := sampleListing("id-a")

	t.Run("matched row", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(replaceListingSQL)).
			WithArgs(
				l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
				l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
				l.Image, l.HomeSizeSqFt, "id-a",
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := repo.Replace(context.Background(), "id-a", l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Matched != 1 || res.Modified != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no matched row maps to ErrNotFound", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(replaceListingSQL)).
			WithArgs(
				l.Name, l.City, l.OwnerName, l.OwnerEmail, l.ContactNumber, l.RentPerMonth,
				l.Availability, l.Description, l.Location, l.Bedrooms, l.Bathrooms, l.TotalRooms,
				l.Image, l.HomeSizeSqFt, "id-a",
			).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Replace(context.Background(), "id-a", l)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestListingSQLite_DeleteByID(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteListingSQL)).
			WithArgs("id-a").
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := repo.DeleteByID(context.Background(), "id-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected deleted=1, got %d", n)
		}
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		repo, mock, cleanup := newMockListingRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteListingSQL)).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.DeleteByID(context.Background(), "nope")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
