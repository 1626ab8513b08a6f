package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"scooter-backoffice/internal/domain"
	"scooter-backoffice/internal/repository"
)

type adminUserRepository struct {
	db *sql.DB
}

func NewAdminUserRepository(db *sql.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

func (r *adminUserRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	u := &domain.AdminUser{}
	query := `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *adminUserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	query := `INSERT INTO admin_users (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, time.Now()).Scan(&u.ID)
}

func (r *adminUserRepository) SetPassword(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE admin_users SET password_hash = $1 WHERE username = $2`
	res, err := r.db.ExecContext(ctx, query, passwordHash, username)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrInvalidCredentials
	}
	return nil
}
