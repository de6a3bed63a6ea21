package product

import (
	"context"
	"strings"
	"time"

	"storefront-admin/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetList(ctx context.Context, opts QueryOptions) (*ListResult, error)
	Update(ctx context.Context, input UpdateInput) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProductByID(ctx context.Context, id string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductByID"),
		zap.String("product_id", id),
	)

	if id == "" {
		return nil, ErrIDRequired
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("failed to fetch product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) GetList(
	ctx context.Context,
	opts QueryOptions,
) (*ListResult, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetList"),
	)

	start := time.Now()

	/* ---------- INPUT NORMALIZATION ---------- */

	if opts.Page <= 0 {
		opts.Page = 1
	}

	if opts.Limit <= 0 {
		opts.Limit = 20
	} else if opts.Limit > 100 {
		opts.Limit = 100
	}

	/* ---------- DEBUG INPUT LOG ---------- */

	log.Debug("get product list requested",
		zap.Int32("page", opts.Page),
		zap.Int32("limit", opts.Limit),
		zap.Bool("include_count", opts.IncludeCount),
		zap.Any("filters", map[string]any{
			"search":          opts.Search,
			"status":          opts.Status,
			"product_type_id": opts.ProductTypeID,
		}),
	)

	/* ---------- FETCH DATA ---------- */

	products, total, err := s.repo.GetList(ctx, opts)
	if err != nil {
		log.Error("failed to fetch product list",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	/* ---------- SUCCESS LOG ---------- */

	fields := []zap.Field{
		zap.Int("count", len(products)),
		zap.Int32("page", opts.Page),
		zap.Int32("limit", opts.Limit),
		zap.Duration("duration", time.Since(start)),
	}

	if total != nil {
		fields = append(fields, zap.Int("total", *total))
	}

	log.Info("get product list success", fields...)

	return &ListResult{
		Items:      products,
		TotalCount: total,
	}, nil
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Update"),
		zap.String("product_id", input.ID),
	)

	if input.ID == "" {
		return nil, ErrIDRequired
	}

	// Validate only provided fields
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrNameEmpty
	}

	if !hasAnyUpdateField(input) {
		return nil, ErrNoFieldsToUpdate
	}

	p, err := s.repo.Update(ctx, input)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	log.Info("product updated",
		zap.Int("variant_count", len(input.Variants)),
	)

	return p, nil
}

func hasAnyUpdateField(input UpdateInput) bool {
	return input.Name != nil ||
		input.SKU != nil ||
		input.Description != nil ||
		input.BasePrice != nil ||
		input.Status != nil ||
		input.CategoryID != nil ||
		input.ProductTypeID != nil ||
		input.Variants != nil
}
