package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"house_hunter/internal/models"
	"house_hunter/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token issue/verify.
type AuthService struct {
	users      repository.Users
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(users repository.Users, cfg Config) *AuthService {
	return &AuthService{
		users:      users,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   cfg.TokenTTL,
	}
}

var _ Authorization = (*AuthService)(nil)

// TokenClaims is the canonical claim set for both issuance sites:
// subject is the email, plus email and role as named claims.
type TokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register creates a new account and returns the persisted user together
// with a freshly issued token. Fails with ErrEmailTaken when the email is
// already registered; the check-then-insert race is closed by the store's
// uniqueness constraint, which the repo maps to the same conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return models.User{}, "", errors.New("email is required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if existing != nil {
		return models.User{}, "", ErrEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("invalid password: %w", err)
	}

	u := models.User{
		Name:         in.Name,
		Role:         in.Role,
		Email:        email,
		Number:       in.Number,
		PasswordHash: hash,
		DisplayImage: in.Image,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", err
	}
	u.ID = id

	token, err := s.issueToken(u)
	if err != nil {
		return models.User{}, "", err
	}
	return u.PublicView(), token, nil
}

// Login validates credentials and returns the user plus a token.
// A lookup miss short-circuits before any hash comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return models.User{}, "", err
	}
	if u == nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(*u)
	if err != nil {
		return models.User{}, "", err
	}
	return u.PublicView(), token, nil
}

// GetUser looks up an account by email.
func (s *AuthService) GetUser(ctx context.Context, email string) (models.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrUserNotFound
	}
	return u.PublicView(), nil
}

// ParseToken verifies the signature (and expiry, when present) and returns
// the embedded claims.
func (s *AuthService) ParseToken(accessToken string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// issueToken signs the canonical claim set for the given user. A
// non-positive TTL omits the expiry claim, which reproduces the legacy
// unbounded tokens as an explicit configuration choice.
func (s *AuthService) issueToken(u models.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  u.Email,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Email: u.Email,
		Role:  u.Role,
	}
	if s.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash; returns an error for any mismatch
// or malformed digest, never panics.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
