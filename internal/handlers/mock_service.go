package handlers

import (
	"context"

	"house_hunter/internal/models"
	"house_hunter/internal/repository"
	"house_hunter/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser  models.User
	registerToken string
	registerErr   error
	loginUser     models.User
	loginToken    string
	loginErr      error
	getUserResp   models.User
	getUserErr    error
	parseClaims   *service.TokenClaims
	parseErr      error

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastLoginPass  string
	lastGetEmail   string
	lastParseToken string
}

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (models.User, string, error) {
	m.lastRegister = in
	return m.registerUser, m.registerToken, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (models.User, string, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.loginUser, m.loginToken, m.loginErr
}

func (m *mockAuth) GetUser(ctx context.Context, email string) (models.User, error) {
	m.lastGetEmail = email
	return m.getUserResp, m.getUserErr
}

func (m *mockAuth) ParseToken(token string) (*service.TokenClaims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

type mockListings struct {
	searchResp  []models.Listing
	searchErr   error
	createID    string
	createErr   error
	getResp     models.Listing
	getErr      error
	replaceResp repository.ReplaceResult
	replaceErr  error
	deleteN     int
	deleteErr   error

	lastQuery     service.ListingQuery
	lastCreate    models.Listing
	lastGetID     string
	lastReplaceID string
	lastReplace   models.Listing
	lastDeleteID  string
}

func (m *mockListings) Search(ctx context.Context, q service.ListingQuery) ([]models.Listing, error) {
	m.lastQuery = q
	return m.searchResp, m.searchErr
}

func (m *mockListings) Create(ctx context.Context, l models.Listing) (string, error) {
	m.lastCreate = l
	return m.createID, m.createErr
}

func (m *mockListings) GetByID(ctx context.Context, id string) (models.Listing, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockListings) Replace(ctx context.Context, id string, l models.Listing) (repository.ReplaceResult, error) {
	m.lastReplaceID = id
	m.lastReplace = l
	return m.replaceResp, m.replaceErr
}

func (m *mockListings) Delete(ctx context.Context, id string) (int, error) {
	m.lastDeleteID = id
	return m.deleteN, m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
