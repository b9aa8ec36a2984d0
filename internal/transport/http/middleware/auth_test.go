package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/transport/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeTokenRepo records lookups so tests can assert whether the store was
// consulted at all.
type fakeTokenRepo struct {
	lookups    int
	findUserID func(ctx context.Context, token string) (int64, error)
}

func (r *fakeTokenRepo) Upsert(_ context.Context, _ int64, _ string) error { return nil }

func (r *fakeTokenRepo) FindUserID(ctx context.Context, token string) (int64, error) {
	r.lookups++
	return r.findUserID(ctx, token)
}

// newEngine builds a minimal gin engine with the Auth middleware protecting
// GET /protected. The handler writes the userID from context so we can
// assert it was set.
func newEngine(tokens *fakeTokenRepo) *gin.Engine {
	r := gin.New()
	r.GET("/protected", middleware.Auth(tokens, slog.Default()), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.String(http.StatusOK, "%v", userID)
	})
	return r
}

func TestAuth_MissingHeader_Returns401WithoutStoreLookup(t *testing.T) {
	tokens := &fakeTokenRepo{
		findUserID: func(_ context.Context, _ string) (int64, error) { return 0, domain.ErrTokenInvalid },
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	newEngine(tokens).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if tokens.lookups != 0 {
		t.Errorf("store lookups = %d, want 0", tokens.lookups)
	}
}

func TestAuth_UnknownToken_Returns401(t *testing.T) {
	tokens := &fakeTokenRepo{
		findUserID: func(_ context.Context, _ string) (int64, error) { return 0, domain.ErrTokenInvalid },
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "stale-or-bogus-token")
	newEngine(tokens).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuth_StoreFailure_Returns500(t *testing.T) {
	tokens := &fakeTokenRepo{
		findUserID: func(_ context.Context, _ string) (int64, error) {
			return 0, context.DeadlineExceeded
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "some-token")
	newEngine(tokens).ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestAuth_ValidToken_PassesAndSetsUserID(t *testing.T) {
	tokens := &fakeTokenRepo{
		findUserID: func(_ context.Context, token string) (int64, error) {
			if token != "good-token" {
				return 0, domain.ErrTokenInvalid
			}
			return 42, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "good-token")
	newEngine(tokens).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "42" {
		t.Errorf("body = %q, want %q", got, "42")
	}
}

// The header carries the raw token. A client sending a Bearer prefix is
// sending a token the store has never seen.
func TestAuth_BearerPrefixedToken_IsNotStripped(t *testing.T) {
	tokens := &fakeTokenRepo{
		findUserID: func(_ context.Context, token string) (int64, error) {
			if token == "good-token" {
				return 42, nil
			}
			return 0, domain.ErrTokenInvalid
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	newEngine(tokens).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
