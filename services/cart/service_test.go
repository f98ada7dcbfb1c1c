package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/services/catalog"
)

var (
	sneakers = catalog.Product{ID: "sneakers-001", Title: "Velocity Run Sneakers", Price: decimal.NewFromInt(129), Image: "/assets/products/sneakers.jpg"}
	hoodie   = catalog.Product{ID: "hoodie-006", Title: "Nimbus Fleece Hoodie", Price: decimal.RequireFromString("79.99"), Image: "/assets/products/hoodie.jpg"}
)

func TestCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := context.TODO()

	t.Run("Empty by default", func(t *testing.T) {
		sut, _ := setup(t, ctrl)

		cart, err := sut.Snapshot(c)
		assert.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 0, cart.TotalQty)
		assert.True(t, cart.TotalAmount.IsZero())
	})

	t.Run("Add same product twice increments quantity", func(t *testing.T) {
		sut, _ := setup(t, ctrl)

		_, err := sut.AddProduct(c, sneakers)
		assert.NoError(t, err)
		cart, err := sut.AddProduct(c, sneakers)
		assert.NoError(t, err)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Qty)
		assert.Equal(t, 2, cart.TotalQty)
		assert.Equal(t, "258", cart.TotalAmount.String())
	})

	t.Run("Totals follow every change", func(t *testing.T) {
		sut, _ := setup(t, ctrl)

		sut.AddProduct(c, sneakers)
		cart, _ := sut.AddProduct(c, hoodie)
		assert.Equal(t, 2, cart.TotalQty)
		assert.Equal(t, "208.99", cart.TotalAmount.String())
		assert.Equal(t, int64(20899), cart.AmountInMinorUnits())

		cart, _ = sut.ChangeQty(c, hoodie.ID, 3)
		assert.Equal(t, 4, cart.TotalQty)
		assert.Equal(t, "368.97", cart.TotalAmount.String())

		cart, _ = sut.Remove(c, sneakers.ID)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, "239.97", cart.TotalAmount.String())
	})

	t.Run("Quantity never below one", func(t *testing.T) {
		sut, _ := setup(t, ctrl)
		sut.AddProduct(c, sneakers)

		cart, err := sut.ChangeQty(c, sneakers.ID, 0)
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.Items[0].Qty)

		cart, _ = sut.ChangeQty(c, sneakers.ID, -4)
		assert.Equal(t, 1, cart.Items[0].Qty)
	})

	t.Run("Unknown product only recalculates", func(t *testing.T) {
		sut, _ := setup(t, ctrl)
		sut.AddProduct(c, sneakers)

		cart, err := sut.ChangeQty(c, "unknown", 5)
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.TotalQty)
	})

	t.Run("Clear persists an empty cart", func(t *testing.T) {
		sut, store := setup(t, ctrl)
		sut.AddProduct(c, sneakers)

		err := sut.Clear(c)
		assert.NoError(t, err)

		raw, found, _ := store.GetItem(c, "cart")
		assert.True(t, found)
		assert.JSONEq(t, `{"items":[],"totalQty":0,"totalAmount":"0"}`, raw)
	})

	t.Run("Every mutation is persisted", func(t *testing.T) {
		sut, store := setup(t, ctrl)
		sut.AddProduct(c, sneakers)

		// a fresh service on the same store sees the change
		cart, err := NewService(store).Snapshot(c)
		assert.NoError(t, err)
		assert.Equal(t, 1, cart.TotalQty)
	})

	t.Run("Corrupt snapshot gives empty cart", func(t *testing.T) {
		sut, store := setup(t, ctrl)
		store.SetItem(c, "cart", "{not json")

		cart, err := sut.Snapshot(c)
		assert.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})
}

func TestAmountInMinorUnits(t *testing.T) {
	assert.Equal(t, int64(12900), Cart{TotalAmount: decimal.NewFromInt(129)}.AmountInMinorUnits())
	assert.Equal(t, int64(1001), Cart{TotalAmount: decimal.RequireFromString("10.005")}.AmountInMinorUnits())
	assert.Equal(t, int64(1000), Cart{TotalAmount: decimal.RequireFromString("10.004")}.AmountInMinorUnits())
}

func setup(t *testing.T, ctrl *gomock.Controller) (*Service, mylocalstore.LocalStore) {
	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()
	entries, _, err := mystore.NewInMemoryStore[mylocalstore.Entry](context.TODO())
	assert.NoError(t, err)
	store := mylocalstore.New(entries, nower)
	return NewService(store), store
}
