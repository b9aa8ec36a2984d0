package repository

import (
	"context"

	"github.com/azamatdev/library-api/internal/domain"
)

type ListMembersInput struct {
	Name   string
	Email  string
	Limit  int
	Offset int
}

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	List(ctx context.Context, input ListMembersInput) ([]*domain.Member, error)
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	Delete(ctx context.Context, id int64) error
}
