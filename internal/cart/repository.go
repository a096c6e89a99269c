package cart

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bazario-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	GetRows(ctx context.Context, userID string) ([]Row, error)
	AddOrMerge(ctx context.Context, userID, productID string, quantity int) (*CartItem, error)
	UpdateQuantity(ctx context.Context, itemID, userID string, quantity int) (*CartItem, error)
	Remove(ctx context.Context, itemID, userID string) error
	Clear(ctx context.Context, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRows(ctx context.Context, userID string) ([]Row, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCartRows"),
		zap.String("user_id", userID),
	)

	start := time.Now()

	query := `
	SELECT
		c.id,
		c.user_id,
		c.quantity,
		c.created_at,

		p.id,
		p.title,
		p.description,
		p.category,
		p.price,
		p.image_url,
		p.is_active,
		p.seller_id,

		u.email,
		u.first_name,
		u.last_name,
		u.profile_image_url
	FROM cart_items c
	JOIN products p ON c.product_id = p.id
	LEFT JOIN users u ON p.seller_id = u.id
	WHERE c.user_id = $1
	ORDER BY c.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ItemID,
			&row.UserID,
			&row.Quantity,
			&row.CreatedAt,

			&row.ProductID,
			&row.Title,
			&row.Description,
			&row.Category,
			&row.Price,
			&row.ProductImageURL,
			&row.ProductActive,
			&row.SellerID,

			&row.SellerEmail,
			&row.SellerFirstName,
			&row.SellerLastName,
			&row.SellerImageURL,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
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

// AddOrMerge inserts a new line or folds the quantity into the existing one
// in a single statement. The UNIQUE(user_id, product_id) constraint plus the
// upsert make the merge safe under concurrent adds for the same pair.
func (r *repository) AddOrMerge(ctx context.Context, userID, productID string, quantity int) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddOrMergeCartItem"),
		zap.String("user_id", userID),
		zap.String("product_id", productID),
	)

	query := `
	INSERT INTO cart_items (id, user_id, product_id, quantity)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, product_id)
	DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	RETURNING id, user_id, product_id, quantity, created_at`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), userID, productID, quantity,
	).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item upserted",
		zap.String("cart_item_id", item.ID),
		zap.Int("quantity", item.Quantity),
	)

	return &item, nil
}

func (r *repository) UpdateQuantity(ctx context.Context, itemID, userID string, quantity int) (*CartItem, error) {
	query := `
	UPDATE cart_items
	SET quantity = $1
	WHERE id = $2 AND user_id = $3
	RETURNING id, user_id, product_id, quantity, created_at`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, quantity, itemID, userID).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Remove deletes the line if present. Removing an absent line is not an
// error.
func (r *repository) Remove(ctx context.Context, itemID, userID string) error {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM cart_items
	WHERE id = $1 AND user_id = $2
	`, itemID, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		logger.FromCtx(ctx).Debug("remove matched no cart item",
			zap.String("cart_item_id", itemID),
		)
	}

	return nil
}

func (r *repository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `
	DELETE FROM cart_items
	WHERE user_id = $1
	`, userID)
	return err
}
