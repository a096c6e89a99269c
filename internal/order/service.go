package order

import (
	"context"
	"strings"

	"bazario-be/internal/cart"
	"bazario-be/internal/logger"
	"bazario-be/internal/metrics"
	"bazario-be/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, params CheckoutParams) (*Order, error)
	ListForUser(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status DeliveryStatus) (*Order, error)
}

type service struct {
	repo      Repository
	cartRepo  cart.Repository
	scheduler *Scheduler
	taxRate   decimal.Decimal
	metrics   *metrics.Store
}

func NewService(
	repo Repository,
	cartRepo cart.Repository,
	scheduler *Scheduler,
	taxRate decimal.Decimal,
	m *metrics.Store,
) Service {
	return &service{
		repo:      repo,
		cartRepo:  cartRepo,
		scheduler: scheduler,
		taxRate:   taxRate,
		metrics:   m,
	}
}

// Checkout converts the user's current cart into an order. The order header
// and its items are written in a single transaction; the cart clear that
// follows is best effort and never undoes a committed order.
func (s *service) Checkout(ctx context.Context, params CheckoutParams) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("user_id", userID),
	)

	if !params.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(params.ShippingAddress) == "" {
		return nil, ErrShippingAddressRequired
	}

	rows, err := s.cartRepo.GetRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrCartEmpty
	}

	// Snapshot each line at its current catalog price.
	items := make([]OrderItem, 0, len(rows))
	subtotal := decimal.Zero
	for _, row := range rows {
		items = append(items, OrderItem{
			ProductID:       row.ProductID,
			Quantity:        row.Quantity,
			Price:           row.Price,
			ProductTitle:    row.Title,
			ProductImageURL: row.ProductImageURL,
		})
		subtotal = subtotal.Add(row.Price.Mul(decimal.NewFromInt(int64(row.Quantity))))
	}

	tax := subtotal.Mul(s.taxRate).Round(2)
	total := subtotal.Add(tax)

	deliveryDate := s.scheduler.DeliveryDate()

	order := &Order{
		UserID:          userID,
		TotalAmount:     total,
		PaymentMethod:   params.PaymentMethod,
		DeliveryStatus:  StatusOrdered,
		DeliveryDate:    &deliveryDate,
		ShippingAddress: params.ShippingAddress,
	}

	log.Info("checkout started",
		zap.Int("item_count", len(items)),
		zap.String("subtotal", subtotal.String()),
		zap.String("tax", tax.String()),
		zap.String("total", total.String()),
	)

	if err := s.repo.CreateOrder(ctx, order, items); err != nil {
		s.metrics.CheckoutFailures.Inc()
		return nil, err
	}
	order.Items = items
	s.metrics.OrdersCreated.Inc()

	// The order already stands; a failed clear leaves a stale cart, which
	// is recoverable, so it must not surface as a checkout failure.
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.metrics.CartClearMisses.Inc()
		log.Warn("failed to clear cart after checkout",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
	}

	log.Info("checkout success", zap.String("order_id", order.ID))

	return order, nil
}

func (s *service) ListForUser(ctx context.Context) ([]*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []*Order{}, nil
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	items, err := s.repo.ListItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	return attachItems(orders, items), nil
}

// UpdateStatus moves the order's delivery status forward. Backward and
// repeated transitions are rejected; delivered is terminal.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status DeliveryStatus) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.repo.GetStatus(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if !current.CanAdvanceTo(status) {
		return nil, ErrInvalidStatusTransition
	}

	return s.repo.UpdateStatus(ctx, orderID, userID, status)
}
