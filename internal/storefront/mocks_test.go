package storefront

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yettapastries/storefront/internal/payment/mpesa"
)

// MockOrderStorage is a mock implementation of OrderStorage.
type MockOrderStorage struct {
	mock.Mock
}

func (m *MockOrderStorage) Insert(ctx context.Context, order *Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderStorage) ListByUser(ctx context.Context, userEmail string) ([]Order, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

// MockFavoriteStorage is a mock implementation of FavoriteStorage.
type MockFavoriteStorage struct {
	mock.Mock
}

func (m *MockFavoriteStorage) Add(ctx context.Context, favorite *Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteStorage) Remove(ctx context.Context, userEmail, itemID string) error {
	args := m.Called(ctx, userEmail, itemID)
	return args.Error(0)
}

func (m *MockFavoriteStorage) ListByUser(ctx context.Context, userEmail string) ([]Favorite, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Favorite), args.Error(1)
}

// MockPaymentGateway is a mock implementation of PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) SendSTKPush(ctx context.Context, phoneNumber string, amount uint) (*mpesa.PushResult, error) {
	args := m.Called(ctx, phoneNumber, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mpesa.PushResult), args.Error(1)
}
