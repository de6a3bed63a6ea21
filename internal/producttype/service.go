package producttype

import (
	"context"
	"errors"

	"storefront-admin/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for product classifications.
type Service interface {
	GetProductTypes(ctx context.Context, filter *string, limit, page *int32) ([]*ProductType, error)
	GetProductTypeByID(ctx context.Context, id string) (*ProductType, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProductTypes(ctx context.Context, filter *string, limit, page *int32) ([]*ProductType, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductTypes"),
	)
	log.Info("GetProductTypes started")

	types, err := s.repo.GetAll(ctx, filter, limit, page)
	if err != nil {
		log.Error("failed to get product types", zap.Error(err))
		return nil, err
	}

	if len(types) == 0 {
		log.Info("no product types found")
		return []*ProductType{}, nil
	}

	log.Info("GetProductTypes success", zap.Int("count", len(types)))
	return types, nil
}

func (s *service) GetProductTypeByID(ctx context.Context, id string) (*ProductType, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductTypeByID"),
		zap.String("product_type_id", id),
	)

	if id == "" {
		return nil, errors.New("product type id is required")
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("failed to get product type", zap.Error(err))
		return nil, err
	}

	return t, nil
}
