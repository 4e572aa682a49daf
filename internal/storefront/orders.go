package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yettapastries/storefront/internal/payment/mpesa"
	"github.com/yettapastries/storefront/pkg/logger"
)

// minPhoneNumberLength is the shortest input accepted as a dialable mpesa
// number. Real validation happens at the gateway.
const minPhoneNumberLength = 8

// PaymentGateway initiates an mpesa payment. Satisfied by *mpesa.Client.
type PaymentGateway interface {
	SendSTKPush(ctx context.Context, phoneNumber string, amount uint) (*mpesa.PushResult, error)
}

// CheckoutInput is a checkout request after the transport layer has decoded
// it. Items and total are client-priced, as in the original storefront.
type CheckoutInput struct {
	PaymentMethod string
	PhoneNumber   string
	BankAccount   string
	Items         []OrderItem
	Total         float64
}

// OrderService validates checkouts, initiates payment and records orders.
type OrderService struct {
	storage OrderStorage
	gateway PaymentGateway
	logger  *slog.Logger
}

// OrderOption configures the order service.
type OrderOption func(*OrderService)

// WithOrderLogger sets a custom logger for the service.
func WithOrderLogger(l *slog.Logger) OrderOption {
	return func(s *OrderService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewOrderService creates the checkout/orders service.
func NewOrderService(storage OrderStorage, gateway PaymentGateway, opts ...OrderOption) *OrderService {
	s := &OrderService{
		storage: storage,
		gateway: gateway,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Checkout validates the payment details, initiates payment and persists the
// order. The returned order carries the resulting status: mpesa orders are
// "Payment Initiated" pending the gateway callback, bank orders are "Paid".
func (s *OrderService) Checkout(ctx context.Context, userEmail string, input CheckoutInput) (*Order, error) {
	var status string

	switch input.PaymentMethod {
	case PaymentMethodMpesa:
		if input.PhoneNumber == "" {
			return nil, ErrPhoneNumberRequired
		}
		if len(input.PhoneNumber) < minPhoneNumberLength {
			return nil, ErrPhoneNumberInvalid
		}
		res, err := s.gateway.SendSTKPush(ctx, input.PhoneNumber, uint(input.Total))
		if err != nil {
			s.logger.ErrorContext(ctx, "stk push failed", slog.Any("error", err))
			return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
		}
		s.logger.InfoContext(ctx, "stk push initiated",
			slog.String("checkout_request_id", res.CheckoutRequestID),
		)
		status = StatusPaymentInitiated
	case PaymentMethodBank:
		if input.BankAccount == "" {
			return nil, ErrBankAccountRequired
		}
		status = StatusPaid
	default:
		return nil, ErrPaymentMethodInvalid
	}

	order := &Order{
		ID:            uuid.NewString(),
		UserEmail:     userEmail,
		Items:         input.Items,
		Total:         input.Total,
		Status:        status,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.storage.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID),
		slog.String("status", order.Status),
		slog.String("payment_method", order.PaymentMethod),
	)
	return order, nil
}

// ListOrders returns the customer's order history.
func (s *OrderService) ListOrders(ctx context.Context, userEmail string) ([]Order, error) {
	orders, err := s.storage.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
