package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bazario-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrder(ctx context.Context, order *Order, items []OrderItem) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListItems(ctx context.Context, orderIDs []string) ([]OrderItem, error)
	GetStatus(ctx context.Context, orderID, userID string) (DeliveryStatus, error)
	UpdateStatus(ctx context.Context, orderID, userID string, status DeliveryStatus) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrder writes the order header and all of its items in one
// transaction. Either all rows commit or none do.
func (r *repository) CreateOrder(ctx context.Context, order *Order, items []OrderItem) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("user_id", order.UserID),
		zap.Int("item_count", len(items)),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			} else {
				log.Debug("transaction rolled back")
			}
		}
	}()

	order.ID = uuid.NewString()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, user_id, total_amount, payment_method,
			delivery_status, delivery_date, shipping_address
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`,
		order.ID,
		order.UserID,
		order.TotalAmount,
		order.PaymentMethod,
		order.DeliveryStatus,
		order.DeliveryDate,
		order.ShippingAddress,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return err
	}

	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].OrderID = order.ID

		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
		`,
			items[i].ID,
			items[i].OrderID,
			items[i].ProductID,
			items[i].Quantity,
			items[i].Price,
		)
		if err != nil {
			log.Error("failed to insert order item",
				zap.Int("item_index", i),
				zap.String("product_id", items[i].ProductID),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return err
	}

	committed = true
	log.Info("checkout transaction committed", zap.String("order_id", order.ID))

	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrdersByUser"),
		zap.String("user_id", userID),
	)

	start := time.Now()

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, user_id, total_amount, payment_method,
			delivery_status, delivery_date, shipping_address,
			created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.TotalAmount,
			&o.PaymentMethod,
			&o.DeliveryStatus,
			&o.DeliveryDate,
			&o.ShippingAddress,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Info("query success",
		zap.Int("rows", len(orders)),
		zap.Duration("duration", time.Since(start)),
	)

	return orders, nil
}

// ListItems loads the items for a batch of orders, joined to the product for
// display fields. The join does not filter on is_active: soft-deleted
// products stay visible in order history.
func (r *repository) ListItems(ctx context.Context, orderIDs []string) ([]OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.id,
			oi.order_id,
			oi.product_id,
			oi.quantity,
			oi.price,
			p.title,
			p.image_url
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ANY($1)
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&item.ProductTitle,
			&item.ProductImageURL,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *repository) GetStatus(ctx context.Context, orderID, userID string) (DeliveryStatus, error) {
	var status DeliveryStatus
	err := r.db.QueryRowContext(ctx, `
		SELECT delivery_status FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(&status)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrOrderNotFound
	}
	if err != nil {
		return "", err
	}

	return status, nil
}

func (r *repository) UpdateStatus(ctx context.Context, orderID, userID string, status DeliveryStatus) (*Order, error) {
	query := `
	UPDATE orders
	SET delivery_status = $1, updated_at = NOW()
	WHERE id = $2 AND user_id = $3
	RETURNING
		id, user_id, total_amount, payment_method,
		delivery_status, delivery_date, shipping_address,
		created_at, updated_at`

	var o Order
	err := r.db.QueryRowContext(ctx, query, status, orderID, userID).Scan(
		&o.ID,
		&o.UserID,
		&o.TotalAmount,
		&o.PaymentMethod,
		&o.DeliveryStatus,
		&o.DeliveryDate,
		&o.ShippingAddress,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}
