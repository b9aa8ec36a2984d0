package httptransport_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/azamatdev/library-api/internal/domain"
	httptransport "github.com/azamatdev/library-api/internal/transport/http"
	"github.com/azamatdev/library-api/internal/transport/http/handler"
	"github.com/azamatdev/library-api/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Usecase fakes whose methods fail the test if reached: the auth middleware
// must deny the request before any resource logic runs.

type deadBookUsecase struct{ t *testing.T }

func (d *deadBookUsecase) CreateBook(context.Context, usecase.CreateBookInput) (*domain.Book, error) {
	d.t.Fatal("book usecase reached without auth")
	return nil, nil
}

func (d *deadBookUsecase) ListBooks(context.Context, usecase.ListBooksInput) ([]*domain.Book, error) {
	d.t.Fatal("book usecase reached without auth")
	return nil, nil
}

func (d *deadBookUsecase) GetByID(context.Context, int64) (*domain.Book, error) {
	d.t.Fatal("book usecase reached without auth")
	return nil, nil
}

func (d *deadBookUsecase) UpdateBook(context.Context, usecase.UpdateBookInput) error {
	d.t.Fatal("book usecase reached without auth")
	return nil
}

func (d *deadBookUsecase) DeleteBook(context.Context, int64) error {
	d.t.Fatal("book usecase reached without auth")
	return nil
}

type deadMemberUsecase struct{ t *testing.T }

func (d *deadMemberUsecase) CreateMember(context.Context, usecase.CreateMemberInput) (*domain.Member, error) {
	d.t.Fatal("member usecase reached without auth")
	return nil, nil
}

func (d *deadMemberUsecase) ListMembers(context.Context, usecase.ListMembersInput) ([]*domain.Member, error) {
	d.t.Fatal("member usecase reached without auth")
	return nil, nil
}

func (d *deadMemberUsecase) GetByID(context.Context, int64) (*domain.Member, error) {
	d.t.Fatal("member usecase reached without auth")
	return nil, nil
}

func (d *deadMemberUsecase) UpdateMember(context.Context, usecase.UpdateMemberInput) error {
	d.t.Fatal("member usecase reached without auth")
	return nil
}

func (d *deadMemberUsecase) DeleteMember(context.Context, int64) error {
	d.t.Fatal("member usecase reached without auth")
	return nil
}

type deadAuthUsecase struct{}

func (deadAuthUsecase) Register(context.Context, string, string) (int64, error) { return 1, nil }
func (deadAuthUsecase) Login(context.Context, string, string) (string, error)   { return "tok", nil }

type rejectAllTokens struct{}

func (rejectAllTokens) Upsert(context.Context, int64, string) error { return nil }

func (rejectAllTokens) FindUserID(context.Context, string) (int64, error) {
	return 0, domain.ErrTokenInvalid
}

func newRouter(t *testing.T) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return httptransport.NewRouter(
		logger,
		handler.NewAuthHandler(deadAuthUsecase{}, logger),
		handler.NewBookHandler(&deadBookUsecase{t: t}, logger),
		handler.NewMemberHandler(&deadMemberUsecase{t: t}, logger),
		rejectAllTokens{},
	)
}

func TestEveryResourceRoute_RejectsMissingToken(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/books"},
		{http.MethodGet, "/books"},
		{http.MethodGet, "/books/1"},
		{http.MethodPut, "/books/1"},
		{http.MethodDelete, "/books/1"},
		{http.MethodPost, "/members"},
		{http.MethodGet, "/members"},
		{http.MethodGet, "/members/1"},
		{http.MethodPut, "/members/1"},
		{http.MethodDelete, "/members/1"},
	}

	r := newRouter(t)
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(rt.method, rt.path, nil)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestEveryResourceRoute_RejectsUnknownToken(t *testing.T) {
	r := newRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Authorization", "some-stale-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthRoutes_ArePublic(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{"/register", "/login"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, nil)
		r.ServeHTTP(w, req)

		// No token required; a 401 here would mean the auth gate leaked
		// onto the public routes. (The empty body yields a 400.)
		if w.Code == http.StatusUnauthorized {
			t.Errorf("%s: status = 401, want public route", path)
		}
	}
}
