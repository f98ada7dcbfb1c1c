package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/services/catalog"
)

func TestWishlist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := context.TODO()
	products := catalog.NewService()
	watch, _ := products.Get(c, "watch-003")
	hoodie, _ := products.Get(c, "hoodie-006")

	t.Run("Empty by default", func(t *testing.T) {
		sut, _ := setup(t, ctrl)

		wishlist, err := sut.Get(c, "user_1")
		assert.NoError(t, err)
		assert.Empty(t, wishlist.Items)
		assert.Equal(t, 0, wishlist.Count)
	})

	t.Run("Guest cannot add", func(t *testing.T) {
		sut, _ := setup(t, ctrl)

		_, err := sut.Add(c, "guest", watch)
		assert.Error(t, err)
		assert.Equal(t, 403, myerrors.GetHTTPStatus(err))
		assert.Equal(t, "Sign in required", myerrors.GetMessage(err))

		_, err = sut.Add(c, "", watch)
		assert.Equal(t, 403, myerrors.GetHTTPStatus(err))
	})

	t.Run("Add stores product under user key", func(t *testing.T) {
		sut, store := setup(t, ctrl)

		change, err := sut.Add(c, "user_1", watch)
		assert.NoError(t, err)
		assert.True(t, change.InWishlist)
		assert.Equal(t, "Apex Smart Watch has been added to your wishlist", change.Message)
		assert.Equal(t, 1, change.Wishlist.Count)

		_, found, _ := store.GetItem(c, "wishlist_user_1")
		assert.True(t, found)
	})

	t.Run("Duplicate is reported", func(t *testing.T) {
		sut, _ := setup(t, ctrl)
		sut.Add(c, "user_1", watch)

		change, err := sut.Add(c, "user_1", watch)
		assert.NoError(t, err)
		assert.Equal(t, "Apex Smart Watch is already in your wishlist", change.Message)
		assert.Equal(t, 1, change.Wishlist.Count)
	})

	t.Run("Lists are per user", func(t *testing.T) {
		sut, _ := setup(t, ctrl)
		sut.Add(c, "user_1", watch)

		wishlist, _ := sut.Get(c, "user_2")
		assert.Equal(t, 0, wishlist.Count)
	})

	t.Run("Remove and contains", func(t *testing.T) {
		sut, _ := setup(t, ctrl)
		sut.Add(c, "user_1", watch)
		sut.Add(c, "user_1", hoodie)

		present, _ := sut.Contains(c, "user_1", watch.ID)
		assert.True(t, present)

		change, err := sut.Remove(c, "user_1", watch.ID)
		assert.NoError(t, err)
		assert.False(t, change.InWishlist)
		assert.Equal(t, 1, change.Wishlist.Count)

		present, _ = sut.Contains(c, "user_1", watch.ID)
		assert.False(t, present)
	})

	t.Run("Toggle", func(t *testing.T) {
		sut, _ := setup(t, ctrl)

		change, err := sut.Toggle(c, "user_1", hoodie)
		assert.NoError(t, err)
		assert.True(t, change.InWishlist)

		change, err = sut.Toggle(c, "user_1", hoodie)
		assert.NoError(t, err)
		assert.False(t, change.InWishlist)
		assert.Equal(t, 0, change.Wishlist.Count)
	})

	t.Run("Clear", func(t *testing.T) {
		sut, store := setup(t, ctrl)
		sut.Add(c, "user_1", watch)

		wishlist, err := sut.Clear(c, "user_1")
		assert.NoError(t, err)
		assert.Equal(t, 0, wishlist.Count)

		_, found, err := store.GetItem(c, "wishlist_user_1")
		assert.NoError(t, err)
		assert.False(t, found)

		wishlist, err = sut.Get(c, "user_1")
		assert.NoError(t, err)
		assert.Equal(t, 0, wishlist.Count)
	})

	t.Run("Unreadable list counts as empty", func(t *testing.T) {
		sut, store := setup(t, ctrl)
		store.SetItem(c, "wishlist_user_1", "oops")

		wishlist, err := sut.Get(c, "user_1")
		assert.NoError(t, err)
		assert.Equal(t, 0, wishlist.Count)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (*Service, mylocalstore.LocalStore) {
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	entries, _, err := mystore.NewInMemoryStore[mylocalstore.Entry](context.TODO())
	assert.NoError(t, err)
	store := mylocalstore.New(entries, nower)
	return NewService(store), store
}
