package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"house_hunter/internal/models"
	"house_hunter/internal/repository"

	"github.com/google/uuid"
)

// Validation errors for listing operations.
var (
	ErrInvalidListingID = errors.New("invalid listing id")
	ErrInvalidRentRange = errors.New("invalid rent range: expected \"min-max\" with integer bounds")
)

// ListingService validates queries, delegates to the repository and
// publishes change events to the feed.
type ListingService struct {
	listings repository.Listings
	feed     Feed
}

func NewListingService(listings repository.Listings, feed Feed) *ListingService {
	return &ListingService{listings: listings, feed: feed}
}

var _ Listings = (*ListingService)(nil)

// Search builds the predicate from the query and lists matching adverts.
func (s *ListingService) Search(ctx context.Context, q ListingQuery) ([]models.Listing, error) {
	f, err := buildFilter(q)
	if err != nil {
		return nil, err
	}
	return s.listings.List(ctx, f)
}

// Create inserts a listing and announces it on the feed.
func (s *ListingService) Create(ctx context.Context, l models.Listing) (string, error) {
	id, err := s.listings.Create(ctx, l)
	if err != nil {
		return "", err
	}
	l.ID = id
	s.publish(ListingEvent{Type: EventListingCreated, ID: id, Listing: &l})
	return id, nil
}

func (s *ListingService) GetByID(ctx context.Context, id string) (models.Listing, error) {
	if err := validateListingID(id); err != nil {
		return models.Listing{}, err
	}
	return s.listings.GetByID(ctx, id)
}

// Replace overwrites every field of the listing and announces the update.
func (s *ListingService) Replace(ctx context.Context, id string, l models.Listing) (repository.ReplaceResult, error) {
	if err := validateListingID(id); err != nil {
		return repository.ReplaceResult{}, err
	}
	res, err := s.listings.Replace(ctx, id, l)
	if err != nil {
		return repository.ReplaceResult{}, err
	}
	l.ID = id
	s.publish(ListingEvent{Type: EventListingUpdated, ID: id, Listing: &l})
	return res, nil
}

// Delete removes a listing and announces the removal.
func (s *ListingService) Delete(ctx context.Context, id string) (int, error) {
	if err := validateListingID(id); err != nil {
		return 0, err
	}
	n, err := s.listings.DeleteByID(ctx, id)
	if err != nil {
		return 0, err
	}
	s.publish(ListingEvent{Type: EventListingDeleted, ID: id})
	return n, nil
}

func (s *ListingService) publish(ev ListingEvent) {
	if s.feed != nil {
		s.feed.Publish(ev)
	}
}

// validateListingID gates malformed ids before they reach the store, so a
// bad id is a client error rather than a store-level parse fault.
func validateListingID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidListingID, id)
	}
	return nil
}

// buildFilter maps the optional query parameters onto the repository
// predicate. Every present parameter contributes exactly one clause.
func buildFilter(q ListingQuery) (repository.ListingFilter, error) {
	f := repository.ListingFilter{
		Search:     q.Search,
		Bedrooms:   q.Bedrooms,
		Bathrooms:  q.Bathrooms,
		TotalRooms: q.TotalRooms,
		City:       q.City,
		OwnerEmail: q.OwnerEmail,
	}
	if q.RentRange != "" {
		lo, hi, err := parseRentRange(q.RentRange)
		if err != nil {
			return repository.ListingFilter{}, err
		}
		f.MinRent = &lo
		f.MaxRent = &hi
	}
	return f, nil
}

// parseRentRange splits "min-max" into inclusive integer bounds. Malformed
// input is rejected outright instead of degrading to bounds that match
// nothing.
func parseRentRange(s string) (int, int, error) {
	loStr, hiStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: got %q", ErrInvalidRentRange, s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad lower bound %q", ErrInvalidRentRange, loStr)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(hiStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad upper bound %q", ErrInvalidRentRange, hiStr)
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: lower bound %d above upper bound %d", ErrInvalidRentRange, lo, hi)
	}
	return lo, hi, nil
}
