package producttype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"storefront-admin/internal/logger"
	"storefront-admin/internal/utils"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("product type not found")

type Repository interface {
	GetAll(ctx context.Context, filter *string, limit, page *int32) ([]*ProductType, error)
	GetByID(ctx context.Context, id string) (*ProductType, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(
	ctx context.Context,
	filter *string,
	limit *int32,
	page *int32,
) ([]*ProductType, error) {

	// ---------- DEFAULTS ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}

	finalOffset := (finalPage - 1) * finalLimit

	log := logger.FromCtx(ctx).With(
		zap.String("filter", utils.PtrString(filter)),
		zap.Int32("limit", finalLimit),
		zap.Int32("page", finalPage),
	)
	log.Info("GetProductTypes started")

	// ---------- BASE QUERY ----------
	query := `
		SELECT
			t.id,
			t.name,
			t.slug,
			t.has_variants,
			t.supports_variants,
			t.allow_custom_options
		FROM product_types t
	`

	where := []string{}
	args := []interface{}{}

	// ---------- FILTER ----------
	if filter != nil && *filter != "" {
		where = append(where, fmt.Sprintf("t.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+*filter+"%")
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- ORDER + PAGINATION ----------
	query += " ORDER BY t.name ASC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, finalLimit, finalOffset)

	// ---------- EXECUTE ----------
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetProductTypes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var types []*ProductType

	for rows.Next() {
		t, err := scanType(rows)
		if err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, err
		}
		types = append(types, t)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, err
	}

	return types, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*ProductType, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_type_id", id))

	row := r.db.QueryRowContext(ctx, `
		SELECT
			t.id,
			t.name,
			t.slug,
			t.has_variants,
			t.supports_variants,
			t.allow_custom_options
		FROM product_types t
		WHERE t.id = $1
	`, id)

	t, err := scanType(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Error("DB query failed GetProductTypeByID", zap.Error(err))
		return nil, err
	}

	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanType(row rowScanner) (*ProductType, error) {
	var t ProductType
	var supportsVariants, allowCustom bool

	if err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.HasVariants,
		&supportsVariants, &allowCustom,
	); err != nil {
		return nil, err
	}

	t.Settings = &TypeSettings{
		SupportsVariants:   supportsVariants,
		AllowCustomOptions: allowCustom,
	}
	return &t, nil
}
