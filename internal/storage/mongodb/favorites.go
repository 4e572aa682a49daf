package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yettapastries/storefront/internal/storefront"
)

const favoritesCollection = "favorites"

type favoriteDocument struct {
	ID        string  `bson:"_id"`
	UserEmail string  `bson:"user_email"`
	ItemID    string  `bson:"item_id"`
	ItemTitle string  `bson:"item_title"`
	ItemImage string  `bson:"item_image"`
	ItemPrice float64 `bson:"item_price"`
}

func toFavoriteDocument(f *storefront.Favorite) favoriteDocument {
	return favoriteDocument(*f)
}

func (d favoriteDocument) toDomain() storefront.Favorite {
	return storefront.Favorite(d)
}

// FavoriteRepository implements storefront.FavoriteStorage on the favorites
// collection.
type FavoriteRepository struct {
	col *mongo.Collection
}

// NewFavoriteRepository creates the repository.
func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(favoritesCollection)}
}

// EnsureIndexes creates the unique {user_email, item_id} index that makes
// duplicate saves a storage-level conflict.
func (r *FavoriteRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "item_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create favorites indexes: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Add(ctx context.Context, favorite *storefront.Favorite) error {
	if _, err := r.col.InsertOne(ctx, toFavoriteDocument(favorite)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return storefront.ErrFavoriteExists
		}
		return fmt.Errorf("failed to insert favorite: %w", err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userEmail, itemID string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"user_email": userEmail, "item_id": itemID})
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	if res.DeletedCount == 0 {
		return storefront.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userEmail string) ([]storefront.Favorite, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_email": userEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []favoriteDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}

	favorites := make([]storefront.Favorite, len(docs))
	for i, doc := range docs {
		favorites[i] = doc.toDomain()
	}
	return favorites, nil
}
