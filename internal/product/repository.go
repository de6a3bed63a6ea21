package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront-admin/internal/logger"
	"storefront-admin/internal/producttype"
	"storefront-admin/internal/variant"

	"go.uber.org/zap"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	GetList(ctx context.Context, opts QueryOptions) ([]*Product, *int, error)
	Update(ctx context.Context, input UpdateInput) (*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", id))

	row := r.db.QueryRowContext(ctx, `
		SELECT
			p.id,
			p.name,
			p.sku,
			p.description,
			p.base_price,
			p.status,
			p.category_id,
			p.product_type_id,
			t.id,
			t.name,
			t.slug,
			t.has_variants,
			t.supports_variants,
			t.allow_custom_options,
			p.created_at,
			p.updated_at
		FROM products p
		LEFT JOIN product_types t ON t.id = p.product_type_id
		WHERE p.id = $1
	`, id)

	var p Product
	var typeID, typeName, typeSlug sql.NullString
	var typeHasVariants, typeSupports, typeAllowCustom sql.NullBool

	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.BasePrice, &p.Status,
		&p.CategoryID, &p.ProductTypeID,
		&typeID, &typeName, &typeSlug,
		&typeHasVariants, &typeSupports, &typeAllowCustom,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Error("DB query failed GetProductByID", zap.Error(err))
		return nil, err
	}

	if typeID.Valid {
		p.ProductType = &producttype.ProductType{
			ID:          typeID.String,
			Name:        typeName.String,
			Slug:        typeSlug.String,
			HasVariants: typeHasVariants.Bool,
			Settings: &producttype.TypeSettings{
				SupportsVariants:   typeSupports.Bool,
				AllowCustomOptions: typeAllowCustom.Bool,
			},
		}
	}

	variants, err := r.getVariants(ctx, id)
	if err != nil {
		log.Error("DB query failed GetProductVariants", zap.Error(err))
		return nil, err
	}
	p.Variants = variants

	return &p, nil
}

func (r *repository) getVariants(ctx context.Context, productID string) ([]variant.SeedVariant, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			v.id,
			v.name,
			v.sku,
			v.options,
			v.price_modifier,
			v.stock_quantity,
			v.min_stock_alert,
			v.display_order,
			v.is_active,
			v.settings
		FROM product_variants v
		WHERE v.product_id = $1
		ORDER BY v.display_order ASC, v.id ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []variant.SeedVariant

	for rows.Next() {
		var (
			sv           variant.SeedVariant
			id           string
			optionsRaw   []byte
			settingsRaw  []byte
			priceMod     sql.NullString
			stockQty     sql.NullInt64
			minAlert     sql.NullInt64
			displayOrder sql.NullInt64
			isActive     sql.NullBool
		)

		if err := rows.Scan(
			&id, &sv.Name, &sv.SKU, &optionsRaw, &priceMod,
			&stockQty, &minAlert, &displayOrder, &isActive, &settingsRaw,
		); err != nil {
			return nil, err
		}

		sv.ID = &id
		if len(optionsRaw) > 0 {
			if err := json.Unmarshal(optionsRaw, &sv.Options); err != nil {
				return nil, fmt.Errorf("malformed variant options: %w", err)
			}
		}
		if len(settingsRaw) > 0 {
			if err := json.Unmarshal(settingsRaw, &sv.Settings); err != nil {
				return nil, fmt.Errorf("malformed variant settings: %w", err)
			}
		}
		if priceMod.Valid {
			sv.PriceModifier = &priceMod.String
		}
		if stockQty.Valid {
			n := int(stockQty.Int64)
			sv.StockQuantity = &n
		}
		if minAlert.Valid {
			n := int(minAlert.Int64)
			sv.MinStockAlert = &n
		}
		if displayOrder.Valid {
			n := int(displayOrder.Int64)
			sv.DisplayOrder = &n
		}
		if isActive.Valid {
			sv.IsActive = &isActive.Bool
		}

		variants = append(variants, sv)
	}

	return variants, rows.Err()
}

func (r *repository) GetList(ctx context.Context, opts QueryOptions) ([]*Product, *int, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int32("page", opts.Page),
		zap.Int32("limit", opts.Limit),
	)

	// ---------- BASE QUERY ----------
	query := `
		SELECT
			p.id,
			p.name,
			p.sku,
			p.description,
			p.base_price,
			p.status,
			p.category_id,
			p.product_type_id,
			p.created_at,
			p.updated_at
		FROM products p
	`

	where := []string{}
	args := []interface{}{}

	// ---------- FILTERS ----------
	if opts.Search != nil && *opts.Search != "" {
		where = append(where, fmt.Sprintf("(p.name ILIKE $%d OR p.sku ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+*opts.Search+"%")
	}
	if opts.Status != nil && *opts.Status != "" {
		where = append(where, fmt.Sprintf("p.status = $%d", len(args)+1))
		args = append(args, *opts.Status)
	}
	if opts.ProductTypeID != nil && *opts.ProductTypeID != "" {
		where = append(where, fmt.Sprintf("p.product_type_id = $%d", len(args)+1))
		args = append(args, *opts.ProductTypeID)
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}
	query += whereClause

	// ---------- ORDER + PAGINATION ----------
	query += " ORDER BY p.created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	offset := (opts.Page - 1) * opts.Limit
	args = append(args, opts.Limit, offset)

	log.Debug("Executing GetList query",
		zap.String("query", query),
		zap.Any("args", args),
	)

	// ---------- EXECUTE ----------
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed GetList", zap.Error(err))
		return nil, nil, err
	}
	defer rows.Close()

	var products []*Product

	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.BasePrice,
			&p.Status, &p.CategoryID, &p.ProductTypeID,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			log.Error("Row scan failed", zap.Error(err))
			return nil, nil, err
		}
		products = append(products, &p)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration failed", zap.Error(err))
		return nil, nil, err
	}

	// ---------- OPTIONAL COUNT ----------
	var total *int
	if opts.IncludeCount {
		countQuery := "SELECT COUNT(*) FROM products p" + whereClause
		countArgs := args[:len(args)-2]

		var n int
		if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&n); err != nil {
			log.Error("DB query failed GetList count", zap.Error(err))
			return nil, nil, err
		}
		total = &n
	}

	return products, total, nil
}

func (r *repository) Update(ctx context.Context, input UpdateInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(zap.String("product_id", input.ID))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin tx", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products SET
			name = COALESCE($2, name),
			sku = COALESCE($3, sku),
			description = COALESCE($4, description),
			base_price = COALESCE($5, base_price),
			status = COALESCE($6, status),
			category_id = COALESCE($7, category_id),
			product_type_id = COALESCE($8, product_type_id),
			updated_at = NOW()
		WHERE id = $1
	`, input.ID, input.Name, input.SKU, input.Description,
		input.BasePrice, input.Status, input.CategoryID, input.ProductTypeID)
	if err != nil {
		log.Error("DB exec failed UpdateProduct", zap.Error(err))
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if input.Variants != nil {
		if err := r.replaceVariants(ctx, tx, input.ID, input.Variants); err != nil {
			log.Error("DB exec failed ReplaceVariants", zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit tx", zap.Error(err))
		return nil, err
	}

	return r.GetByID(ctx, input.ID)
}

// replaceVariants swaps the whole variant set; the editor form always submits
// the full list, never a delta.
func (r *repository) replaceVariants(ctx context.Context, tx *sql.Tx, productID string, variants []variant.FormVariant) error {
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM product_variants WHERE product_id = $1", productID,
	); err != nil {
		return err
	}

	for _, v := range variants {
		options, err := json.Marshal(v.Options)
		if err != nil {
			return err
		}
		settings, err := json.Marshal(v.Settings)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO product_variants
				(id, product_id, name, sku, options, price_modifier,
				 stock_quantity, min_stock_alert, display_order, is_active, settings)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, v.ID, productID, v.Name, v.SKU, options, v.PriceModifier,
			v.StockQuantity, v.MinStockAlert, v.DisplayOrder, v.IsActive, settings,
		); err != nil {
			return err
		}
	}

	return nil
}
