package myvault

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopfront/lib/mystore"
)

func TestVault(t *testing.T) {
	c := context.TODO()

	t.Run("Read from environment at call time", func(t *testing.T) {
		v := New(nil)

		t.Setenv(RazorpayKeyID, "")
		_, found, err := v.Get(c, RazorpayKeyID)
		assert.NoError(t, err)
		assert.False(t, found)

		t.Setenv(RazorpayKeyID, "rzp_test_123")
		value, found, err := v.Get(c, RazorpayKeyID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "rzp_test_123", value)
	})

	t.Run("Store overrides environment", func(t *testing.T) {
		store, _, _ := mystore.NewInMemoryStore[Secret](c)
		store.Put(c, RazorpayKeySecret, Secret{Name: RazorpayKeySecret, Value: "from-store"})
		t.Setenv(RazorpayKeySecret, "from-env")

		value, found, err := New(store).Get(c, RazorpayKeySecret)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "from-store", value)
	})

	t.Run("Blank value counts as missing", func(t *testing.T) {
		t.Setenv(RazorpayKeySecret, "   ")

		_, found, err := New(nil).Get(c, RazorpayKeySecret)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
