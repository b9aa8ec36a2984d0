package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azamatdev/library-api/internal/domain"
	"github.com/azamatdev/library-api/internal/repository"
)

type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

func (r *MemberRepository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email`

	row := r.pool.QueryRow(ctx, query, member.Name, member.Email)
	created, err := scanMember(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConstraint
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return created, nil
}

func (r *MemberRepository) List(ctx context.Context, input repository.ListMembersInput) ([]*domain.Member, error) {
	ds := goqu.Dialect(dialectPostgres).
		From("members").
		Select("id", "name", "email").
		Order(goqu.I("id").Asc()).
		Limit(uint(input.Limit)).
		Offset(uint(input.Offset))

	if input.Name != "" {
		ds = ds.Where(goqu.C("name").ILike("%" + input.Name + "%"))
	}
	if input.Email != "" {
		ds = ds.Where(goqu.C("email").ILike("%" + input.Email + "%"))
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]*domain.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, email FROM members WHERE id = $1`, id)
	return scanMember(row)
}

func (r *MemberRepository) Update(ctx context.Context, member *domain.Member) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE members SET name = $2, email = $3 WHERE id = $1`,
		member.ID, member.Name, member.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.Name, &m.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}
	return &m, nil
}
