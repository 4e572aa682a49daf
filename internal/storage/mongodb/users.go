package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yettapastries/storefront/internal/auth"
)

const usersCollection = "users"

// userDocument is the stored shape of an identity. Optional credential fields
// are omitted entirely when absent so partial identities (Google-only,
// password-only) stay clean.
type userDocument struct {
	ID               string `bson:"_id"`
	Name             string `bson:"name"`
	Email            string `bson:"email"`
	PasswordHash     string `bson:"password_hash,omitempty"`
	GoogleID         string `bson:"google_id,omitempty"`
	ResetToken       string `bson:"reset_token,omitempty"`
	ResetTokenExpiry int64  `bson:"reset_token_expiry,omitempty"`
}

func (d userDocument) toDomain() *auth.User {
	return &auth.User{
		ID:               d.ID,
		Name:             d.Name,
		Email:            d.Email,
		PasswordHash:     d.PasswordHash,
		GoogleID:         d.GoogleID,
		ResetToken:       d.ResetToken,
		ResetTokenExpiry: d.ResetTokenExpiry,
	}
}

func toUserDocument(u *auth.User) userDocument {
	return userDocument{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		GoogleID:         u.GoogleID,
		ResetToken:       u.ResetToken,
		ResetTokenExpiry: u.ResetTokenExpiry,
	}
}

// UserRepository implements auth.UserStorage on the users collection.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates the repository.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

// EnsureIndexes creates the unique email index. The index, not the
// application-level existence check, is what guarantees one account per
// email under concurrent signups.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByGoogleID(ctx context.Context, googleID string) (*auth.User, error) {
	return r.findOne(ctx, bson.M{"google_id": googleID})
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (*auth.User, error) {
	return r.findOne(ctx, bson.M{"reset_token": token})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*auth.User, error) {
	var doc userDocument
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts a new identity. A duplicate-key violation on the email
// index maps to auth.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *auth.User) error {
	if _, err := r.col.InsertOne(ctx, toUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// LinkGoogleID attaches a Google subject to the account with this email.
func (r *UserRepository) LinkGoogleID(ctx context.Context, email, googleID string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"google_id": googleID}},
	)
	if err != nil {
		return fmt.Errorf("failed to link google id: %w", err)
	}
	if res.MatchedCount == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// SetResetToken stores a recovery token and its expiry, replacing any
// previous pair.
func (r *UserRepository) SetResetToken(ctx context.Context, email, token string, expiry int64) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"reset_token":        token,
			"reset_token_expiry": expiry,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if res.MatchedCount == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}

// ResetPassword replaces the password hash and clears the reset pair in one
// update, so a consumed token can never be presented again.
func (r *UserRepository) ResetPassword(ctx context.Context, id, newHash string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"password_hash": newHash},
		"$unset": bson.M{
			"reset_token":        "",
			"reset_token_expiry": "",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if res.MatchedCount == 0 {
		return auth.ErrUserNotFound
	}
	return nil
}
