package cart

import (
	"context"
	"errors"
	"testing"

	"bazario-be/internal/metrics"
	"bazario-be/internal/product"
	"bazario-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetRows(ctx context.Context, userID string) ([]Row, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Row), args.Error(1)
}

func (m *MockRepository) AddOrMerge(ctx context.Context, userID, productID string, quantity int) (*CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) UpdateQuantity(ctx context.Context, itemID, userID string, quantity int) (*CartItem, error) {
	args := m.Called(ctx, itemID, userID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CartItem), args.Error(1)
}

func (m *MockRepository) Remove(ctx context.Context, itemID, userID string) error {
	args := m.Called(ctx, itemID, userID)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListActive(ctx context.Context, category *product.Category) ([]product.Row, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Row), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, opts product.GetOptions) (*product.Row, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Row), args.Error(1)
}

func (m *MockProductRepository) ListBySeller(ctx context.Context, sellerID string) ([]product.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, sellerID string, params product.CreateParams) (*product.Product, error) {
	args := m.Called(ctx, sellerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, productID, sellerID string, params product.UpdateParams) (*product.Product, error) {
	args := m.Called(ctx, productID, sellerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) SoftDelete(ctx context.Context, productID, sellerID string) error {
	args := m.Called(ctx, productID, sellerID)
	return args.Error(0)
}

// --- Helpers ---

func userContext(userID string) context.Context {
	return utils.SetUserContext(context.Background(), userID, "user@example.com")
}

func activeProductRow(id string) *product.Row {
	return &product.Row{ID: id, Title: "Laptop", IsActive: true, SellerID: "s1"}
}

// --- Tests ---

func TestService_List(t *testing.T) {
	t.Run("Success - composes product view", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo, metrics.NewStore())

		repo.On("GetRows", mock.Anything, "u1").Return([]Row{
			{ItemID: "c1", UserID: "u1", Quantity: 2, ProductID: "p1", Title: "Laptop", SellerID: "s1"},
		}, nil)

		items, err := svc.List(userContext("u1"))
		assert.NoError(t, err)
		if assert.Len(t, items, 1) {
			assert.Equal(t, "c1", items[0].ID)
			assert.Equal(t, "p1", items[0].Product.ID)
			assert.Equal(t, "s1", items[0].Product.Seller.ID)
		}
	})

	t.Run("Error - no user in context", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository), metrics.NewStore())

		_, err := svc.List(context.Background())
		assert.ErrorIs(t, err, ErrUserNotAuthenticated)
	})
}

func TestService_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		m := metrics.NewStore()
		svc := NewService(repo, productRepo, m)

		productRepo.On("GetByID", mock.Anything, product.GetOptions{ProductID: "p1", OnlyActive: true}).
			Return(activeProductRow("p1"), nil)
		repo.On("AddOrMerge", mock.Anything, "u1", "p1", 2).
			Return(&CartItem{ID: "c1", UserID: "u1", ProductID: "p1", Quantity: 2}, nil)

		item, err := svc.Add(userContext("u1"), AddParams{ProductID: "p1", Quantity: 2})
		assert.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, uint64(0), m.CartMerges.Load())
	})

	t.Run("Success - merge detected when quantity grows", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		m := metrics.NewStore()
		svc := NewService(repo, productRepo, m)

		productRepo.On("GetByID", mock.Anything, mock.Anything).
			Return(activeProductRow("p1"), nil)
		// Existing line held 3, so the returned quantity exceeds the add.
		repo.On("AddOrMerge", mock.Anything, "u1", "p1", 2).
			Return(&CartItem{ID: "c1", UserID: "u1", ProductID: "p1", Quantity: 5}, nil)

		item, err := svc.Add(userContext("u1"), AddParams{ProductID: "p1", Quantity: 2})
		assert.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
		assert.Equal(t, uint64(1), m.CartMerges.Load())
	})

	t.Run("Error - quantity below one", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository), metrics.NewStore())

		_, err := svc.Add(userContext("u1"), AddParams{ProductID: "p1", Quantity: 0})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Error - inactive product", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo, metrics.NewStore())

		productRepo.On("GetByID", mock.Anything, product.GetOptions{ProductID: "p1", OnlyActive: true}).
			Return(nil, nil)

		_, err := svc.Add(userContext("u1"), AddParams{ProductID: "p1", Quantity: 2})
		assert.ErrorIs(t, err, ErrProductNotFound)
		repo.AssertNotCalled(t, "AddOrMerge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - product lookup failure passes through", func(t *testing.T) {
		repo := new(MockRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(repo, productRepo, metrics.NewStore())

		productRepo.On("GetByID", mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		_, err := svc.Add(userContext("u1"), AddParams{ProductID: "p1", Quantity: 2})
		assert.Error(t, err)
	})
}

func TestService_SetQuantity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockProductRepository), metrics.NewStore())

		repo.On("UpdateQuantity", mock.Anything, "c1", "u1", 7).
			Return(&CartItem{ID: "c1", Quantity: 7}, nil)

		item, err := svc.SetQuantity(userContext("u1"), "c1", 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, item.Quantity)
	})

	t.Run("Error - zero quantity rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockProductRepository), metrics.NewStore())

		_, err := svc.SetQuantity(userContext("u1"), "c1", 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		repo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error - negative quantity rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockProductRepository), metrics.NewStore())

		_, err := svc.SetQuantity(userContext("u1"), "c1", -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockProductRepository), metrics.NewStore())

		repo.On("Remove", mock.Anything, "c1", "u1").Return(nil)

		assert.NoError(t, svc.Remove(userContext("u1"), "c1"))
	})
}
