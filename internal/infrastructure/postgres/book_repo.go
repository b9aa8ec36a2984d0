package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/repository"
)

const dialectPostgres = "postgres"

type BookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `
		INSERT INTO books (title, author, year)
		VALUES ($1, $2, $3)
		RETURNING id, title, author, year`

	row := r.pool.QueryRow(ctx, query, book.Title, book.Author, book.Year)
	created, err := scanBook(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConstraint
		}
		return nil, fmt.Errorf("insert book: %w", err)
	}
	return created, nil
}

// List builds the filtered query with goqu so filter values are always bound
// parameters, never interpolated into the SQL text.
func (r *BookRepository) List(ctx context.Context, input repository.ListBooksInput) ([]*domain.Book, error) {
	ds := goqu.Dialect(dialectPostgres).
		From("books").
		Select("id", "title", "author", "year").
		Order(goqu.I("id").Asc()).
		Limit(uint(input.Limit)).
		Offset(uint(input.Offset))

	if input.Title != "" {
		ds = ds.Where(goqu.C("title").ILike("%" + input.Title + "%"))
	}
	if input.Author != "" {
		ds = ds.Where(goqu.C("author").ILike("%" + input.Author + "%"))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list books query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, title, author, year FROM books WHERE id = $1`, id)
	return scanBook(row)
}

func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET title = $2, author = $3, year = $4 WHERE id = $1`,
		book.ID, book.Title, book.Author, book.Year)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("scan book: %w", err)
	}
	return &b, nil
}
