package cart

import (
	"context"

	"bazario-be/internal/logger"
	"bazario-be/internal/metrics"
	"bazario-be/internal/product"
	"bazario-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	List(ctx context.Context) ([]*ItemWithProduct, error)
	Add(ctx context.Context, params AddParams) (*CartItem, error)
	SetQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error)
	Remove(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
}

type service struct {
	repo        Repository
	productRepo product.Repository
	metrics     *metrics.Store
}

func NewService(repo Repository, productRepo product.Repository, m *metrics.Store) Service {
	return &service{repo: repo, productRepo: productRepo, metrics: m}
}

func (s *service) List(ctx context.Context) ([]*ItemWithProduct, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	rows, err := s.repo.GetRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toItemWithProductList(rows), nil
}

// Add puts a product in the user's cart. Adding a product that is already
// there increments the existing line instead of creating a second one.
func (s *service) Add(ctx context.Context, params AddParams) (*CartItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	// Only active products can enter a cart.
	row, err := s.productRepo.GetByID(ctx, product.GetOptions{
		ProductID:  params.ProductID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProductNotFound
	}

	item, err := s.repo.AddOrMerge(ctx, userID, params.ProductID, params.Quantity)
	if err != nil {
		return nil, err
	}

	if item.Quantity > params.Quantity {
		s.metrics.CartMerges.Inc()
		logger.FromCtx(ctx).Debug("cart line merged",
			zap.String("cart_item_id", item.ID),
			zap.Int("quantity", item.Quantity),
		)
	}

	return item, nil
}

// SetQuantity overwrites the line quantity. Values below 1 are rejected;
// callers remove the line instead.
func (s *service) SetQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return s.repo.UpdateQuantity(ctx, itemID, userID, quantity)
}

func (s *service) Remove(ctx context.Context, itemID string) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotAuthenticated
	}

	return s.repo.Remove(ctx, itemID, userID)
}

func (s *service) Clear(ctx context.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotAuthenticated
	}

	return s.repo.Clear(ctx, userID)
}
