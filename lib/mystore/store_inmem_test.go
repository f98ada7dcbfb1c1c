package mystore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Person struct {
	UID  string
	Name string
	Age  int
}

var (
	person = Person{UID: "123", Name: "Marc", Age: 42}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[Person](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ps.Put(c, person.UID, person)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, Person{UID: "123", Name: "Marc", Age: 42}, p)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []Person{person}, all)
	})

	t.Run("Delete", func(t *testing.T) {
		err := ps.Delete(c, person.UID)
		assert.NoError(t, err)

		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestTransaction(t *testing.T) {
	c := context.TODO()

	t.Run("Commit", func(t *testing.T) {
		ps, _, _ := NewInMemoryStore[Person](c)

		err := ps.RunInTransaction(c, func(c context.Context) error {
			return ps.Put(c, person.UID, person)
		})
		assert.NoError(t, err)

		_, found, _ := ps.Get(c, person.UID)
		assert.True(t, found)
	})

	t.Run("Rollback", func(t *testing.T) {
		ps, _, _ := NewInMemoryStore[Person](c)

		err := ps.RunInTransaction(c, func(c context.Context) error {
			err := ps.Put(c, person.UID, person)
			assert.NoError(t, err)
			return fmt.Errorf("abort")
		})
		assert.Error(t, err)

		_, found, _ := ps.Get(c, person.UID)
		assert.False(t, found)
	})

	t.Run("Other store inside transaction", func(t *testing.T) {
		ps, _, _ := NewInMemoryStore[Person](c)
		other, _, _ := NewInMemoryStore[Person](c)

		err := ps.RunInTransaction(c, func(c context.Context) error {
			return other.Put(c, person.UID, person)
		})
		assert.NoError(t, err)

		_, found, _ := other.Get(c, person.UID)
		assert.True(t, found)
	})
}

func TestQuery(t *testing.T) {
	c := context.TODO()
	ps, _, _ := NewInMemoryStore[Person](c)
	ps.Put(c, "1", Person{UID: "1", Name: "orders_a", Age: 30})
	ps.Put(c, "2", Person{UID: "2", Name: "orders_b", Age: 20})
	ps.Put(c, "3", Person{UID: "3", Name: "wishlist_a", Age: 40})

	t.Run("Prefix range ordered", func(t *testing.T) {
		result, err := ps.Query(c, []Filter{
			{Field: "Name", Compare: ">=", Value: "orders_"},
			{Field: "Name", Compare: "<", Value: "orders_\uffff"},
		}, "Name")
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "orders_a", result[0].Name)
		assert.Equal(t, "orders_b", result[1].Name)
	})

	t.Run("Descending", func(t *testing.T) {
		result, err := ps.Query(c, nil, "-Age")
		assert.NoError(t, err)
		assert.Equal(t, []int{40, 30, 20}, []int{result[0].Age, result[1].Age, result[2].Age})
	})

	t.Run("Equality", func(t *testing.T) {
		result, err := ps.Query(c, []Filter{{Field: "Age", Compare: "=", Value: 20}}, "")
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "2", result[0].UID)
	})

	t.Run("Unsupported comparison", func(t *testing.T) {
		_, err := ps.Query(c, []Filter{{Field: "Age", Compare: "!=", Value: 20}}, "")
		assert.Error(t, err)
	})
}
