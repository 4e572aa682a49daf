package storefront

import "context"

// OrderStorage persists placed orders.
type OrderStorage interface {
	// Insert stores a new order.
	Insert(ctx context.Context, order *Order) error
	// ListByUser returns the customer's orders, newest first.
	ListByUser(ctx context.Context, userEmail string) ([]Order, error)
}

// FavoriteStorage persists per-customer favorites. The store enforces
// uniqueness of the {user_email, item_id} pair.
type FavoriteStorage interface {
	// Add stores a favorite; returns ErrFavoriteExists when the customer
	// already saved the item.
	Add(ctx context.Context, favorite *Favorite) error
	// Remove deletes a favorite; returns ErrFavoriteNotFound when there is
	// nothing to delete.
	Remove(ctx context.Context, userEmail, itemID string) error
	// ListByUser returns all of the customer's favorites.
	ListByUser(ctx context.Context, userEmail string) ([]Favorite, error)
}
