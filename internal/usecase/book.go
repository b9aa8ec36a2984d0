package usecase

import (
	"context"
	"fmt"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/repository"
)

const (
	defaultPage    = 1
	defaultPerPage = 5
)

type BookUsecase struct {
	repo repository.BookRepository
}

func NewBookUsecase(repo repository.BookRepository) *BookUsecase {
	return &BookUsecase{repo: repo}
}

type CreateBookInput struct {
	Title  string
	Author string
	Year   int
}

func (u *BookUsecase) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	book := &domain.Book{
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
	}
	created, err := u.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}
	return created, nil
}

type ListBooksInput struct {
	Title   string
	Author  string
	Page    int
	PerPage int
}

// ListBooks translates page/per_page into a limit/offset window. Filters
// combine with AND; an empty filter is omitted entirely.
func (u *BookUsecase) ListBooks(ctx context.Context, input ListBooksInput) ([]*domain.Book, error) {
	if input.Page < 1 {
		input.Page = defaultPage
	}
	if input.PerPage < 1 {
		input.PerPage = defaultPerPage
	}

	books, err := u.repo.List(ctx, repository.ListBooksInput{
		Title:  input.Title,
		Author: input.Author,
		Limit:  input.PerPage,
		Offset: (input.Page - 1) * input.PerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (u *BookUsecase) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	return u.repo.GetByID(ctx, id)
}

type UpdateBookInput struct {
	ID     int64
	Title  string
	Author string
	Year   int
}

func (u *BookUsecase) UpdateBook(ctx context.Context, input UpdateBookInput) error {
	return u.repo.Update(ctx, &domain.Book{
		ID:     input.ID,
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
	})
}

func (u *BookUsecase) DeleteBook(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
