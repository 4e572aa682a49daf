package storefront

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_Add(t *testing.T) {
	t.Parallel()

	input := FavoriteInput{
		ItemID:    "croissant-01",
		ItemTitle: "Butter Croissant",
		ItemImage: "/img/croissant.jpg",
		ItemPrice: 250,
	}

	t.Run("saves denormalized favorite", func(t *testing.T) {
		t.Parallel()

		storage := &MockFavoriteStorage{}
		svc := NewFavoriteService(storage)

		storage.On("Add", mock.Anything, mock.MatchedBy(func(f *Favorite) bool {
			return f.ID != "" &&
				f.UserEmail == "a@x.com" &&
				f.ItemID == "croissant-01" &&
				f.ItemTitle == "Butter Croissant" &&
				f.ItemPrice == 250
		})).Return(nil)

		require.NoError(t, svc.Add(context.Background(), "a@x.com", input))
		storage.AssertExpectations(t)
	})

	t.Run("duplicate save surfaces the conflict", func(t *testing.T) {
		t.Parallel()

		storage := &MockFavoriteStorage{}
		svc := NewFavoriteService(storage)

		storage.On("Add", mock.Anything, mock.Anything).Return(ErrFavoriteExists)

		err := svc.Add(context.Background(), "a@x.com", input)
		assert.ErrorIs(t, err, ErrFavoriteExists)
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes existing favorite", func(t *testing.T) {
		t.Parallel()

		storage := &MockFavoriteStorage{}
		svc := NewFavoriteService(storage)

		storage.On("Remove", mock.Anything, "a@x.com", "croissant-01").Return(nil)

		require.NoError(t, svc.Remove(context.Background(), "a@x.com", "croissant-01"))
		storage.AssertExpectations(t)
	})

	t.Run("missing favorite surfaces not-found", func(t *testing.T) {
		t.Parallel()

		storage := &MockFavoriteStorage{}
		svc := NewFavoriteService(storage)

		storage.On("Remove", mock.Anything, "a@x.com", "ghost").Return(ErrFavoriteNotFound)

		err := svc.Remove(context.Background(), "a@x.com", "ghost")
		assert.ErrorIs(t, err, ErrFavoriteNotFound)
	})
}

func TestFavoriteService_List(t *testing.T) {
	t.Parallel()

	storage := &MockFavoriteStorage{}
	svc := NewFavoriteService(storage)

	want := []Favorite{
		{ID: "f1", UserEmail: "a@x.com", ItemID: "croissant-01"},
	}
	storage.On("ListByUser", mock.Anything, "a@x.com").Return(want, nil)

	got, err := svc.List(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
