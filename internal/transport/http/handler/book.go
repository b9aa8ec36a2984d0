package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/usecase"
	"github.com/azamatdev/library-api/internal/validate"
)

var bookRequiredFields = []string{"title", "author", "year"}

type bookUsecaser interface {
	CreateBook(ctx context.Context, input usecase.CreateBookInput) (*domain.Book, error)
	ListBooks(ctx context.Context, input usecase.ListBooksInput) ([]*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	UpdateBook(ctx context.Context, input usecase.UpdateBookInput) error
	DeleteBook(ctx context.Context, id int64) error
}

type BookHandler struct {
	uc     bookUsecaser
	logger *slog.Logger
}

func NewBookHandler(uc bookUsecaser, logger *slog.Logger) *BookHandler {
	return &BookHandler{uc: uc, logger: logger.With("component", "book_handler")}
}

type bookResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{ID: b.ID, Title: b.Title, Author: b.Author, Year: b.Year}
}

// parseBookBody decodes and validates a create/update payload. The body is
// decoded into a map rather than a struct so that an absent field and a
// field with an empty value produce distinct entries in the error message.
func parseBookBody(c *gin.Context) (usecase.CreateBookInput, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return usecase.CreateBookInput{}, false
	}

	if err := validate.Required(bookRequiredFields, raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateBookInput{}, false
	}

	year, err := validate.NonNegativeInt("year", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateBookInput{}, false
	}

	title, err := validate.String("title", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateBookInput{}, false
	}
	author, err := validate.String("author", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateBookInput{}, false
	}

	return usecase.CreateBookInput{Title: title, Author: author, Year: year}, true
}

// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	input, ok := parseBookBody(c)
	if !ok {
		return
	}

	if _, err := h.uc.CreateBook(c.Request.Context(), input); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errConstraint})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create book", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Book added successfully"})
}

type listBooksQuery struct {
	Title   string `form:"title"`
	Author  string `form:"author"`
	Page    int    `form:"page,default=1"     binding:"min=1"`
	PerPage int    `form:"per_page,default=5" binding:"min=1"`
}

// GET /books
func (h *BookHandler) List(c *gin.Context) {
	var q listBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	books, err := h.uc.ListBooks(c.Request.Context(), usecase.ListBooksInput{
		Title:   q.Title,
		Author:  q.Author,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list books", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]bookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, toBookResponse(b))
	}
	c.JSON(http.StatusOK, resp)
}

// GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errBookNotFound})
		return
	}

	book, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBookNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get book", "book_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toBookResponse(book))
}

// PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errBookNotFound})
		return
	}

	input, ok := parseBookBody(c)
	if !ok {
		return
	}

	err = h.uc.UpdateBook(c.Request.Context(), usecase.UpdateBookInput{
		ID:     id,
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errBookNotFound})
		case errors.Is(err, domain.ErrConstraint):
			c.JSON(http.StatusBadRequest, gin.H{"error": errConstraint})
		default:
			h.logger.ErrorContext(c.Request.Context(), "update book", "book_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

// DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errBookNotFound})
		return
	}

	if err := h.uc.DeleteBook(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBookNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete book", "book_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
