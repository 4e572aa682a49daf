package handler

import (
	"context"
	"sync"

	"github.com/yettapastries/storefront/internal/auth"
	"github.com/yettapastries/storefront/internal/payment/mpesa"
	"github.com/yettapastries/storefront/internal/storefront"
)

// memUserStore is an in-memory auth.UserStorage with the same uniqueness
// behavior as the mongo repository.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*auth.User // keyed by email
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*auth.User)}
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, auth.ErrUserNotFound
}

func (s *memUserStore) FindByGoogleID(_ context.Context, googleID string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.GoogleID == googleID && googleID != "" {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (s *memUserStore) FindByResetToken(_ context.Context, token string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ResetToken == token && token != "" {
			cp := *u
			return &cp, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, user *auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return auth.ErrEmailTaken
	}
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *memUserStore) LinkGoogleID(_ context.Context, email, googleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return auth.ErrUserNotFound
	}
	u.GoogleID = googleID
	return nil
}

func (s *memUserStore) SetResetToken(_ context.Context, email, token string, expiry int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return auth.ErrUserNotFound
	}
	u.ResetToken = token
	u.ResetTokenExpiry = expiry
	return nil
}

func (s *memUserStore) ResetPassword(_ context.Context, id, newHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.PasswordHash = newHash
			u.ResetToken = ""
			u.ResetTokenExpiry = 0
			return nil
		}
	}
	return auth.ErrUserNotFound
}

// memOrderStore is an in-memory storefront.OrderStorage.
type memOrderStore struct {
	mu     sync.Mutex
	orders []storefront.Order
}

func (s *memOrderStore) Insert(_ context.Context, order *storefront.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, *order)
	return nil
}

func (s *memOrderStore) ListByUser(_ context.Context, userEmail string) ([]storefront.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []storefront.Order
	for _, o := range s.orders {
		if o.UserEmail == userEmail {
			out = append(out, o)
		}
	}
	return out, nil
}

// memFavStore is an in-memory storefront.FavoriteStorage with the unique
// {user_email, item_id} rule.
type memFavStore struct {
	mu        sync.Mutex
	favorites []storefront.Favorite
}

func (s *memFavStore) Add(_ context.Context, favorite *storefront.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.favorites {
		if f.UserEmail == favorite.UserEmail && f.ItemID == favorite.ItemID {
			return storefront.ErrFavoriteExists
		}
	}
	s.favorites = append(s.favorites, *favorite)
	return nil
}

func (s *memFavStore) Remove(_ context.Context, userEmail, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.favorites {
		if f.UserEmail == userEmail && f.ItemID == itemID {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return nil
		}
	}
	return storefront.ErrFavoriteNotFound
}

func (s *memFavStore) ListByUser(_ context.Context, userEmail string) ([]storefront.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []storefront.Favorite
	for _, f := range s.favorites {
		if f.UserEmail == userEmail {
			out = append(out, f)
		}
	}
	return out, nil
}

// fakeGateway is a storefront.PaymentGateway that accepts every push unless
// an error is configured.
type fakeGateway struct {
	err error
}

func (g *fakeGateway) SendSTKPush(context.Context, string, uint) (*mpesa.PushResult, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &mpesa.PushResult{CheckoutRequestID: "c-1", ResponseCode: "0"}, nil
}

// fakeVerifier is an auth.GoogleVerifier with a canned identity.
type fakeVerifier struct {
	identity *auth.GoogleIdentity
	err      error
}

func (v *fakeVerifier) VerifyCredential(context.Context, string) (*auth.GoogleIdentity, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.identity, nil
}
