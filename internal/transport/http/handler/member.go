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

var memberRequiredFields = []string{"name", "email"}

type memberUsecaser interface {
	CreateMember(ctx context.Context, input usecase.CreateMemberInput) (*domain.Member, error)
	ListMembers(ctx context.Context, input usecase.ListMembersInput) ([]*domain.Member, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	UpdateMember(ctx context.Context, input usecase.UpdateMemberInput) error
	DeleteMember(ctx context.Context, id int64) error
}

type MemberHandler struct {
	uc     memberUsecaser
	logger *slog.Logger
}

func NewMemberHandler(uc memberUsecaser, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{uc: uc, logger: logger.With("component", "member_handler")}
}

type memberResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{ID: m.ID, Name: m.Name, Email: m.Email}
}

func parseMemberBody(c *gin.Context) (usecase.CreateMemberInput, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBody})
		return usecase.CreateMemberInput{}, false
	}

	if err := validate.Required(memberRequiredFields, raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateMemberInput{}, false
	}

	name, err := validate.String("name", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateMemberInput{}, false
	}
	email, err := validate.String("email", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return usecase.CreateMemberInput{}, false
	}

	return usecase.CreateMemberInput{Name: name, Email: email}, true
}

// POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	input, ok := parseMemberBody(c)
	if !ok {
		return
	}

	if _, err := h.uc.CreateMember(c.Request.Context(), input); err != nil {
		if errors.Is(err, domain.ErrConstraint) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errConstraint})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "create member", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Member added successfully"})
}

type listMembersQuery struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Page    int    `form:"page,default=1"     binding:"min=1"`
	PerPage int    `form:"per_page,default=5" binding:"min=1"`
}

// GET /members
func (h *MemberHandler) List(c *gin.Context) {
	var q listMembersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	members, err := h.uc.ListMembers(c.Request.Context(), usecase.ListMembersInput{
		Name:    q.Name,
		Email:   q.Email,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list members", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, toMemberResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// GET /members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errMemberNotFound})
		return
	}

	member, err := h.uc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMemberNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get member", "member_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toMemberResponse(member))
}

// PUT /members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errMemberNotFound})
		return
	}

	input, ok := parseMemberBody(c)
	if !ok {
		return
	}

	err = h.uc.UpdateMember(c.Request.Context(), usecase.UpdateMemberInput{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errMemberNotFound})
		case errors.Is(err, domain.ErrConstraint):
			c.JSON(http.StatusBadRequest, gin.H{"error": errConstraint})
		default:
			h.logger.ErrorContext(c.Request.Context(), "update member", "member_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member updated successfully"})
}

// DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errMemberNotFound})
		return
	}

	if err := h.uc.DeleteMember(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errMemberNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "delete member", "member_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
