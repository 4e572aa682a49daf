package storefront

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yettapastries/storefront/pkg/logger"
)

// FavoriteInput is a saved-item request after transport decoding.
type FavoriteInput struct {
	ItemID    string
	ItemTitle string
	ItemImage string
	ItemPrice float64
}

// FavoriteService manages a customer's saved items.
type FavoriteService struct {
	storage FavoriteStorage
	logger  *slog.Logger
}

// FavoriteOption configures the favorites service.
type FavoriteOption func(*FavoriteService)

// WithFavoriteLogger sets a custom logger for the service.
func WithFavoriteLogger(l *slog.Logger) FavoriteOption {
	return func(s *FavoriteService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewFavoriteService creates the favorites service.
func NewFavoriteService(storage FavoriteStorage, opts ...FavoriteOption) *FavoriteService {
	s := &FavoriteService{
		storage: storage,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add saves an item for the customer. Duplicate saves surface as
// ErrFavoriteExists from the store.
func (s *FavoriteService) Add(ctx context.Context, userEmail string, input FavoriteInput) error {
	fav := &Favorite{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		ItemID:    input.ItemID,
		ItemTitle: input.ItemTitle,
		ItemImage: input.ItemImage,
		ItemPrice: input.ItemPrice,
	}
	if err := s.storage.Add(ctx, fav); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	s.logger.InfoContext(ctx, "favorite added", slog.String("item_id", input.ItemID))
	return nil
}

// Remove deletes a saved item.
func (s *FavoriteService) Remove(ctx context.Context, userEmail, itemID string) error {
	if err := s.storage.Remove(ctx, userEmail, itemID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	s.logger.InfoContext(ctx, "favorite removed", slog.String("item_id", itemID))
	return nil
}

// List returns all of the customer's saved items.
func (s *FavoriteService) List(ctx context.Context, userEmail string) ([]Favorite, error) {
	favorites, err := s.storage.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}
