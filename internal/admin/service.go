package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"storefront-admin/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password string, role Role) (string, AdminUser, error)
	Login(ctx context.Context, email, password string) (string, AdminUser, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, email, password string, role Role) (string, AdminUser, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", AdminUser{}, err
	}

	u, err := s.repo.Create(ctx, email, hashed, string(role))
	if err != nil {
		log.Error("failed to create admin user", zap.String("email", email), zap.Error(err))
		if strings.Contains(err.Error(), "admin_users_email_key") {
			return "", AdminUser{}, ErrEmailExists
		}
		return "", AdminUser{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", AdminUser{}, err
	}

	log.Info("register completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, AdminUser, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", AdminUser{}, ErrInvalidCredentials
		}
		log.Error("failed to look up admin user", zap.String("email", email), zap.Error(err))
		return "", AdminUser{}, err
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", AdminUser{}, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("email", email), zap.Error(err))
		return "", AdminUser{}, err
	}

	log.Info("login completed", zap.String("email", email))
	return token, u, nil
}
