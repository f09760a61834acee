package service

import (
	"context"
	"time"

	"house_hunter/internal/models"
	"house_hunter/internal/repository"
)

// Authorization covers registration, login and token parsing.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (models.User, string, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	GetUser(ctx context.Context, email string) (models.User, error)
	ParseToken(accessToken string) (*TokenClaims, error)
}

// Listings exposes filtered search and CRUD over house adverts.
type Listings interface {
	Search(ctx context.Context, q ListingQuery) ([]models.Listing, error)
	Create(ctx context.Context, l models.Listing) (string, error)
	GetByID(ctx context.Context, id string) (models.Listing, error)
	Replace(ctx context.Context, id string, l models.Listing) (repository.ReplaceResult, error)
	Delete(ctx context.Context, id string) (int, error)
}

// Feed is the in-process pub/sub of listing changes backing /ws.
type Feed interface {
	Subscribe() (<-chan ListingEvent, func())
	Publish(ev ListingEvent)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Listings
	Feed
}

// Config carries the knobs the service layer needs from the process config.
type Config struct {
	SigningKey string
	TokenTTL   time.Duration // <= 0 issues tokens without an expiry claim
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	feed := NewFeedHub()
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		Listings:      NewListingService(repos.Listings, feed),
		Feed:          feed,
	}
}
