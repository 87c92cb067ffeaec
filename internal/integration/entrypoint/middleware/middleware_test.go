package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *fakeTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return s.claims, s.err
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		header         string
		service        *fakeTokenService
		expectedStatus int
		expectedCode   domainerror.AuthErrorCode
	}{
		{
			name:           "valid token",
			header:         "Bearer good",
			service:        &fakeTokenService{claims: &adapter.TokenClaims{UserID: userID}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			service:        &fakeTokenService{},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeMissingToken,
		},
		{
			name:           "wrong scheme",
			header:         "Basic abc",
			service:        &fakeTokenService{},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:           "expired token",
			header:         "Bearer old",
			service:        &fakeTokenService{err: domainerror.ErrExpiredToken},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeExpiredToken,
		},
		{
			name:           "invalid token",
			header:         "Bearer bad",
			service:        &fakeTokenService{err: domainerror.ErrInvalidToken},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   domainerror.ErrCodeInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(NewAuthMiddleware(tt.service).Authenticate())
			router.GET("/me", func(c *gin.Context) {
				id, ok := GetUserIDFromContext(c)
				if !ok || id != userID {
					c.Status(http.StatusInternalServerError)
					return
				}
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedCode != "" {
				if resp := decodeError(t, w); resp.Code != string(tt.expectedCode) {
					t.Errorf("expected code %s, got %s", tt.expectedCode, resp.Code)
				}
			}
		})
	}
}

func TestMemoryRateLimitStore(t *testing.T) {
	store := NewMemoryRateLimitStore(2, time.Minute)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for i, expected := range []bool{true, true, false} {
		allowed, err := store.Allow(ctx, "ip")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed != expected {
			t.Errorf("attempt %d: expected %v, got %v", i+1, expected, allowed)
		}
	}

	if allowed, _ := store.Allow(ctx, "other-ip"); !allowed {
		t.Error("expected a different key to be allowed")
	}

	now = now.Add(2 * time.Minute)
	if allowed, _ := store.Allow(ctx, "ip"); !allowed {
		t.Error("expected the window to reset")
	}

	now = now.Add(2 * time.Minute)
	store.Cleanup()
	if len(store.entries) != 0 {
		t.Errorf("expected expired entries to be removed, got %d", len(store.entries))
	}
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimiter_Middleware(t *testing.T) {
	tests := []struct {
		name     string
		limiter  *RateLimiter
		statuses []int
	}{
		{
			name:     "limits after max attempts",
			limiter:  NewRateLimiter(NewMemoryRateLimitStore(1, time.Minute), "webhook", true),
			statuses: []int{http.StatusOK, http.StatusTooManyRequests},
		},
		{
			name:     "disabled",
			limiter:  NewRateLimiter(NewMemoryRateLimitStore(1, time.Minute), "webhook", false),
			statuses: []int{http.StatusOK, http.StatusOK},
		},
		{
			name:     "store failure fails open",
			limiter:  NewRateLimiter(failingStore{}, "webhook", true),
			statuses: []int{http.StatusOK},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(tt.limiter.Middleware())
			router.POST("/hook", func(c *gin.Context) { c.Status(http.StatusOK) })

			for i, expected := range tt.statuses {
				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", nil))
				if w.Code != expected {
					t.Errorf("request %d: expected %d, got %d", i+1, expected, w.Code)
				}
				if expected == http.StatusTooManyRequests {
					if resp := decodeError(t, w); resp.Code != string(domainerror.ErrCodeWebhookRateLimited) {
						t.Errorf("expected code %s, got %s", domainerror.ErrCodeWebhookRateLimited, resp.Code)
					}
				}
			}
		})
	}
}

func TestWebhookSecret(t *testing.T) {
	tests := []struct {
		name           string
		configured     string
		provided       string
		expectedStatus int
	}{
		{name: "matching secret", configured: "s3cret", provided: "s3cret", expectedStatus: http.StatusOK},
		{name: "wrong secret", configured: "s3cret", provided: "guess", expectedStatus: http.StatusUnauthorized},
		{name: "missing header", configured: "s3cret", expectedStatus: http.StatusUnauthorized},
		{name: "unconfigured secret", configured: "", provided: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(WebhookSecret(tt.configured))
			router.POST("/hook", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodPost, "/hook", nil)
			if tt.provided != "" {
				req.Header.Set(WebhookSecretHeader, tt.provided)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if w.Code == http.StatusUnauthorized {
				if resp := decodeError(t, w); resp.Code != string(domainerror.ErrCodeInvalidWebhookSecret) {
					t.Errorf("unexpected code %s", resp.Code)
				}
			}
		})
	}
}
