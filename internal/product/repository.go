package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bazario-be/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	ListActive(ctx context.Context, category *Category) ([]Row, error)
	GetByID(ctx context.Context, opts GetOptions) (*Row, error)
	ListBySeller(ctx context.Context, sellerID string) ([]Product, error)
	Create(ctx context.Context, sellerID string, params CreateParams) (*Product, error)
	Update(ctx context.Context, productID, sellerID string, params UpdateParams) (*Product, error)
	SoftDelete(ctx context.Context, productID, sellerID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Row is the flat product-plus-seller projection. Composition into
// the nested view happens in the mapper.
type Row struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Price       decimal.Decimal
	ImageURL    *string
	SellerID    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	SellerEmail     *string
	SellerFirstName *string
	SellerLastName  *string
	SellerImageURL  *string
}

const productSellerSelect = `
	SELECT
		p.id,
		p.title,
		p.description,
		p.category,
		p.price,
		p.image_url,
		p.seller_id,
		p.is_active,
		p.created_at,
		p.updated_at,

		u.email,
		u.first_name,
		u.last_name,
		u.profile_image_url
	FROM products p
	LEFT JOIN users u ON p.seller_id = u.id`

func scanRow(s interface{ Scan(...any) error }) (*Row, error) {
	var row Row
	err := s.Scan(
		&row.ID,
		&row.Title,
		&row.Description,
		&row.Category,
		&row.Price,
		&row.ImageURL,
		&row.SellerID,
		&row.IsActive,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.SellerEmail,
		&row.SellerFirstName,
		&row.SellerLastName,
		&row.SellerImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ListActive(ctx context.Context, category *Category) ([]Row, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListActiveProducts"),
	)

	start := time.Now()

	query := productSellerSelect + `
	WHERE p.is_active = TRUE`

	args := []any{}
	if category != nil {
		query += ` AND p.category = $1`
		args = append(args, *category)
	}
	query += `
	ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, *row)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (r *repository) GetByID(ctx context.Context, opts GetOptions) (*Row, error) {
	query := productSellerSelect + `
	WHERE p.id = $1`
	if opts.OnlyActive {
		query += ` AND p.is_active = TRUE`
	}

	row, err := scanRow(r.db.QueryRowContext(ctx, query, opts.ProductID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return row, nil
}

func (r *repository) ListBySeller(ctx context.Context, sellerID string) ([]Product, error) {
	query := `
	SELECT
		id, title, description, category, price,
		image_url, seller_id, is_active, created_at, updated_at
	FROM products
	WHERE seller_id = $1
	ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Category,
			&p.Price,
			&p.ImageURL,
			&p.SellerID,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) Create(ctx context.Context, sellerID string, params CreateParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("seller_id", sellerID),
	)

	query := `
	INSERT INTO products (id, title, description, category, price, image_url, seller_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING
		id, title, description, category, price,
		image_url, seller_id, is_active, created_at, updated_at`

	var p Product
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		params.Title,
		params.Description,
		params.Category,
		params.Price,
		params.ImageURL,
		sellerID,
	).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Price,
		&p.ImageURL,
		&p.SellerID,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return &p, nil
}

// Update applies the provided fields to the seller's own row. Updating
// someone else's product matches zero rows and reports ErrProductNotFound.
func (r *repository) Update(ctx context.Context, productID, sellerID string, params UpdateParams) (*Product, error) {
	set := []string{}
	args := []any{}
	argIndex := 1

	add := func(column string, value any) {
		set = append(set, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if params.Title != nil {
		add("title", *params.Title)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Category != nil {
		add("category", *params.Category)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.ImageURL != nil {
		add("image_url", *params.ImageURL)
	}

	query := `
	UPDATE products SET `
	for i, clause := range set {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += fmt.Sprintf(`, updated_at = NOW()
	WHERE id = $%d AND seller_id = $%d
	RETURNING
		id, title, description, category, price,
		image_url, seller_id, is_active, created_at, updated_at`, argIndex, argIndex+1)
	args = append(args, productID, sellerID)

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Price,
		&p.ImageURL,
		&p.SellerID,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) SoftDelete(ctx context.Context, productID, sellerID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "SoftDeleteProduct"),
		zap.String("product_id", productID),
	)

	res, err := r.db.ExecContext(ctx, `
	UPDATE products
	SET is_active = FALSE, updated_at = NOW()
	WHERE id = $1 AND seller_id = $2
	`, productID, sellerID)
	if err != nil {
		log.Error("failed to soft-delete product", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	log.Info("product soft-deleted")
	return nil
}
