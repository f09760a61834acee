package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"house_hunter/internal/models"
	"house_hunter/internal/service"

	"github.com/gin-gonic/gin"
)

// gatedRouter builds a router with the token gate armed for GET /houses.
func gatedRouter(auth *mockAuth, listings *mockListings) *gin.Engine {
	h := NewHandler(&service.Service{Authorization: auth, Listings: listings}, nil)
	h.authPolicy["GET /houses"] = true
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func TestAuthPolicy_DefaultLeavesListingRoutesOpen(t *testing.T) {
	listings := &mockListings{searchResp: []models.Listing{}}
	r := newTestRouter(&service.Service{Listings: listings})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/houses", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected open route, got %d", w.Code)
	}
}

func TestAuthPolicy_ArmedGate(t *testing.T) {
	claims := &service.TokenClaims{Email: "alice@example.com", Role: "owner"}

	tests := []struct {
		name       string
		header     string
		parseErr   error
		wantStatus int
		wantToken  string
	}{
		{
			name:       "missing header is unauthorized",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token is forbidden",
			header:     "garbage",
			parseErr:   errors.New("token is malformed"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "bare token accepted",
			header:     "valid-token",
			wantStatus: http.StatusOK,
			wantToken:  "valid-token",
		},
		{
			name:       "bearer prefix stripped",
			header:     "Bearer valid-token",
			wantStatus: http.StatusOK,
			wantToken:  "valid-token",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuth{parseClaims: claims, parseErr: tt.parseErr}
			listings := &mockListings{searchResp: []models.Listing{}}
			r := gatedRouter(auth, listings)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/houses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status: want %d, got %d (%s)", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantToken != "" && auth.lastParseToken != tt.wantToken {
				t.Fatalf("token passed to verifier: want %q, got %q", tt.wantToken, auth.lastParseToken)
			}
		})
	}
}
