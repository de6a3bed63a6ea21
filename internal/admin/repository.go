package admin

import (
	"context"
	"database/sql"

	"storefront-admin/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, password, role string) (AdminUser, error)
	FindByEmail(ctx context.Context, email string) (AdminUser, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, password, role string) (AdminUser, error) {
	log := logger.FromCtx(ctx)

	var u AdminUser
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO admin_users (email, password, role) VALUES ($1, $2, $3) RETURNING id, email, password, role",
		email, password, role,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role)

	if err != nil {
		log.Error("db: failed to insert admin user",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (AdminUser, error) {
	var u AdminUser
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, password, role FROM admin_users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role)

	return u, err
}
