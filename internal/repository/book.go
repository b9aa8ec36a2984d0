package repository

import (
	"context"

	"github.com/azamatdev/library-api/internal/domain"
)

// ListBooksInput carries the optional substring filters plus the
// limit/offset window already computed from page/per_page.
type ListBooksInput struct {
	Title  string
	Author string
	Limit  int
	Offset int
}

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	List(ctx context.Context, input ListBooksInput) ([]*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int64) error
}
