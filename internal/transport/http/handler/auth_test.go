package handler_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/transport/http/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via
// method matching.
type fakeAuthUsecase struct {
	register func(ctx context.Context, username, password string) (int64, error)
	login    func(ctx context.Context, username, password string) (string, error)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, username, password string) (int64, error) {
	return f.register(ctx, username, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	return f.login(ctx, username, password)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// ---- Register ----

func TestRegister_InvalidJSON_Returns400(t *testing.T) {
	w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/register", `{bad json}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegister_MissingFields_Returns400(t *testing.T) {
	w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/register", `{"username":"alice"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Username and password are required") {
		t.Errorf("body = %q, want missing-fields message", w.Body.String())
	}
}

func TestRegister_DuplicateUsername_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (int64, error) {
			return 0, domain.ErrDuplicateUsername
		},
	}
	w := postJSON(newAuthEngine(uc), "/register", `{"username":"alice","password":"pw"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Username already exists") {
		t.Errorf("body = %q, want duplicate message", w.Body.String())
	}
}

func TestRegister_Success_Returns201WithUserID(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, username, password string) (int64, error) {
			if username != "alice" || password != "pw" {
				t.Errorf("register called with %q/%q", username, password)
			}
			return 7, nil
		},
	}
	w := postJSON(newAuthEngine(uc), "/register", `{"username":"alice","password":"pw"}`)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"user_id":7`) {
		t.Errorf("body = %q, want user_id 7", w.Body.String())
	}
}

func TestRegister_StoreFailure_Returns500Generic(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (int64, error) {
			return 0, errors.New("pq: connection reset by peer")
		},
	}
	w := postJSON(newAuthEngine(uc), "/register", `{"username":"alice","password":"pw"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection reset") {
		t.Errorf("body %q leaks internal error detail", w.Body.String())
	}
}

// ---- Login ----

func TestLogin_MissingFields_Returns400(t *testing.T) {
	w := postJSON(newAuthEngine(&fakeAuthUsecase{}), "/login", `{"password":"pw"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogin_BadCredentials_Returns401Generic(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	w := postJSON(newAuthEngine(uc), "/login", `{"username":"alice","password":"wrong"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid username or password") {
		t.Errorf("body = %q, want generic credentials message", w.Body.String())
	}
}

func TestLogin_Success_Returns200WithToken(t *testing.T) {
	const token = "0b37caa1-2f3f-4a8c-9c5e-8f2f16c3a111"
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return token, nil
		},
	}
	w := postJSON(newAuthEngine(uc), "/login", `{"username":"alice","password":"pw"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), token) {
		t.Errorf("body = %q, want token %q", w.Body.String(), token)
	}
}

func TestLogin_StoreFailure_Returns500Generic(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	w := postJSON(newAuthEngine(uc), "/login", `{"username":"alice","password":"pw"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Errorf("body %q leaks internal error detail", w.Body.String())
	}
}
