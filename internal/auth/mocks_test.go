package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yettapastries/storefront/pkg/email"
)

// MockUserStorage is a mock implementation of UserStorage.
type MockUserStorage struct {
	mock.Mock
}

func (m *MockUserStorage) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserStorage) FindByGoogleID(ctx context.Context, googleID string) (*User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserStorage) FindByResetToken(ctx context.Context, token string) (*User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserStorage) Create(ctx context.Context, user *User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStorage) LinkGoogleID(ctx context.Context, email, googleID string) error {
	args := m.Called(ctx, email, googleID)
	return args.Error(0)
}

func (m *MockUserStorage) SetResetToken(ctx context.Context, email, token string, expiry int64) error {
	args := m.Called(ctx, email, token, expiry)
	return args.Error(0)
}

func (m *MockUserStorage) ResetPassword(ctx context.Context, id, newHash string) error {
	args := m.Called(ctx, id, newHash)
	return args.Error(0)
}

// MockGoogleVerifier is a mock implementation of GoogleVerifier.
type MockGoogleVerifier struct {
	mock.Mock
}

func (m *MockGoogleVerifier) VerifyCredential(ctx context.Context, credential string) (*GoogleIdentity, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GoogleIdentity), args.Error(1)
}

// MockSender is a mock implementation of email.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}
