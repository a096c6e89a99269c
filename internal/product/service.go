package product

import (
	"context"
	"strings"
	"time"

	"bazario-be/internal/logger"
	"bazario-be/internal/metrics"
	"bazario-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	ListActive(ctx context.Context, category *Category) ([]*ProductWithSeller, error)
	GetByID(ctx context.Context, productID string) (*ProductWithSeller, error)
	ListMine(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, params CreateParams) (*Product, error)
	Update(ctx context.Context, productID string, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, productID string) error
}

type service struct {
	repo    Repository
	metrics *metrics.Store
}

func NewService(repo Repository, m *metrics.Store) Service {
	return &service{repo: repo, metrics: m}
}

func (s *service) ListActive(ctx context.Context, category *Category) ([]*ProductWithSeller, error) {
	if category != nil && !category.Valid() {
		return nil, ErrInvalidCategory
	}

	rows, err := s.repo.ListActive(ctx, category)
	if err != nil {
		return nil, err
	}

	return toProductWithSellerList(rows), nil
}

func (s *service) GetByID(ctx context.Context, productID string) (*ProductWithSeller, error) {
	row, err := s.repo.GetByID(ctx, GetOptions{
		ProductID:  productID,
		OnlyActive: true,
	})
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrProductNotFound
	}

	return toProductWithSeller(*row), nil
}

func (s *service) ListMine(ctx context.Context) ([]Product, error) {
	sellerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)

	sellerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if err := validateCreate(params); err != nil {
		log.Warn("invalid product input", zap.Error(err))
		return nil, err
	}

	start := time.Now()
	p, err := s.repo.Create(ctx, sellerID, params)
	if err != nil {
		return nil, err
	}

	s.metrics.ProductsCreated.Inc()
	log.Info("product created",
		zap.String("product_id", p.ID),
		zap.Duration("duration", time.Since(start)),
	)

	return p, nil
}

func (s *service) Update(ctx context.Context, productID string, params UpdateParams) (*Product, error) {
	sellerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if productID == "" {
		return nil, ErrProductNotFound
	}

	// Validate only provided fields
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, ErrTitleRequired
	}
	if params.Description != nil && strings.TrimSpace(*params.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if params.Category != nil && !params.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if params.Price != nil && !params.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if !params.HasAnyField() {
		return nil, ErrNoUpdateFields
	}

	return s.repo.Update(ctx, productID, sellerID, params)
}

func (s *service) Delete(ctx context.Context, productID string) error {
	sellerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotAuthenticated
	}

	if err := s.repo.SoftDelete(ctx, productID, sellerID); err != nil {
		return err
	}

	s.metrics.ProductsDisabled.Inc()
	return nil
}

func validateCreate(params CreateParams) error {
	if strings.TrimSpace(params.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(params.Description) == "" {
		return ErrDescriptionRequired
	}
	if !params.Category.Valid() {
		return ErrInvalidCategory
	}
	if !params.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}
