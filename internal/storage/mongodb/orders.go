package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yettapastries/storefront/internal/storefront"
)

const ordersCollection = "orders"

type orderItemDocument struct {
	ItemID   string  `bson:"item_id"`
	Title    string  `bson:"title"`
	Quantity uint    `bson:"quantity"`
	Price    float64 `bson:"price"`
	ImageSrc string  `bson:"image_src"`
}

type orderDocument struct {
	ID            string              `bson:"_id"`
	UserEmail     string              `bson:"user_email"`
	Items         []orderItemDocument `bson:"items"`
	Total         float64             `bson:"total"`
	Status        string              `bson:"status"`
	PaymentMethod string              `bson:"payment_method"`
	CreatedAt     time.Time           `bson:"created_at"`
}

func toOrderDocument(o *storefront.Order) orderDocument {
	items := make([]orderItemDocument, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemDocument(item)
	}
	return orderDocument{
		ID:            o.ID,
		UserEmail:     o.UserEmail,
		Items:         items,
		Total:         o.Total,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
	}
}

func (d orderDocument) toDomain() storefront.Order {
	items := make([]storefront.OrderItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = storefront.OrderItem(item)
	}
	return storefront.Order{
		ID:            d.ID,
		UserEmail:     d.UserEmail,
		Items:         items,
		Total:         d.Total,
		Status:        d.Status,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
	}
}

// OrderRepository implements storefront.OrderStorage on the orders
// collection.
type OrderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository creates the repository.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(ordersCollection)}
}

// EnsureIndexes creates the user_email lookup index.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_email", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create orders indexes: %w", err)
	}
	return nil
}

func (r *OrderRepository) Insert(ctx context.Context, order *storefront.Order) error {
	if _, err := r.col.InsertOne(ctx, toOrderDocument(order)); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userEmail string) ([]storefront.Order, error) {
	cursor, err := r.col.Find(ctx,
		bson.M{"user_email": userEmail},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]storefront.Order, len(docs))
	for i, doc := range docs {
		orders[i] = doc.toDomain()
	}
	return orders, nil
}
