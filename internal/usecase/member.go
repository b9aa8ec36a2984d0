package usecase

import (
	"context"
	"fmt"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/repository"
)

type MemberUsecase struct {
	repo repository.MemberRepository
}

func NewMemberUsecase(repo repository.MemberRepository) *MemberUsecase {
	return &MemberUsecase{repo: repo}
}

type CreateMemberInput struct {
	Name  string
	Email string
}

func (u *MemberUsecase) CreateMember(ctx context.Context, input CreateMemberInput) (*domain.Member, error) {
	member := &domain.Member{
		Name:  input.Name,
		Email: input.Email,
	}
	created, err := u.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}
	return created, nil
}

type ListMembersInput struct {
	Name    string
	Email   string
	Page    int
	PerPage int
}

func (u *MemberUsecase) ListMembers(ctx context.Context, input ListMembersInput) ([]*domain.Member, error) {
	if input.Page < 1 {
		input.Page = defaultPage
	}
	if input.PerPage < 1 {
		input.PerPage = defaultPerPage
	}

	members, err := u.repo.List(ctx, repository.ListMembersInput{
		Name:   input.Name,
		Email:  input.Email,
		Limit:  input.PerPage,
		Offset: (input.Page - 1) * input.PerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (u *MemberUsecase) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return u.repo.GetByID(ctx, id)
}

type UpdateMemberInput struct {
	ID    int64
	Name  string
	Email string
}

func (u *MemberUsecase) UpdateMember(ctx context.Context, input UpdateMemberInput) error {
	return u.repo.Update(ctx, &domain.Member{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
	})
}

func (u *MemberUsecase) DeleteMember(ctx context.Context, id int64) error {
	return u.repo.Delete(ctx, id)
}
