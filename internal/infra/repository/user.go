package repository

import (
	"context"
	"time"

	"vtcquote/internal/domain/user"
	"vtcquote/internal/infra"
	"vtcquote/internal/pkg/pgconv"
	"vtcquote/internal/usecase"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Compile-time interface checks for both consumers.
var _ usecase.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	const query = `
		SELECT id, email, role, company_name, phone, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, query, email.Value()).Scan(
		&view.ID, &view.Email, &view.Role, &view.CompanyName, &view.Phone, &view.IsActive, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &view, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
		SELECT id, email, role, company_name, phone, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.Role, &view.CompanyName, &view.Phone, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &view, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users
		SET last_login = $2, updated_at = now()
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, userID, time.Now()); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
