// Package mylocalstore is a string key/value store with the semantics of browser local storage:
// values are opaque strings (JSON by convention) and keys follow a naming scheme like "orders_<userId>".
package mylocalstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MarcGrol/shopfront/lib/mystore"
	"github.com/MarcGrol/shopfront/lib/mytime"
)

type Entry struct {
	Key          string
	Value        string `datastore:",noindex"`
	LastModified time.Time
}

type LocalStore interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	GetItem(c context.Context, key string) (string, bool, error)
	SetItem(c context.Context, key string, value string) error
	RemoveItem(c context.Context, key string) error
	Keys(c context.Context, prefix string) ([]string, error)
}

type localStore struct {
	store mystore.Store[Entry]
	nower mytime.Nower
}

func New(store mystore.Store[Entry], nower mytime.Nower) LocalStore {
	return &localStore{
		store: store,
		nower: nower,
	}
}

func (s *localStore) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	return s.store.RunInTransaction(c, f)
}

func (s *localStore) GetItem(c context.Context, key string) (string, bool, error) {
	entry, found, err := s.store.Get(c, key)
	if err != nil {
		return "", false, fmt.Errorf("error fetching item %s: %s", key, err)
	}
	if !found {
		return "", false, nil
	}
	return entry.Value, true, nil
}

func (s *localStore) SetItem(c context.Context, key string, value string) error {
	err := s.store.Put(c, key, Entry{
		Key:          key,
		Value:        value,
		LastModified: s.nower.Now(),
	})
	if err != nil {
		return fmt.Errorf("error storing item %s: %s", key, err)
	}
	return nil
}

func (s *localStore) RemoveItem(c context.Context, key string) error {
	err := s.store.Delete(c, key)
	if err != nil {
		return fmt.Errorf("error removing item %s: %s", key, err)
	}
	return nil
}

// Keys returns the keys that start with prefix, in lexical order.
func (s *localStore) Keys(c context.Context, prefix string) ([]string, error) {
	entries, err := s.store.Query(c, []mystore.Filter{
		{Field: "Key", Compare: ">=", Value: prefix},
		{Field: "Key", Compare: "<", Value: prefix + "\uffff"},
	}, "Key")
	if err != nil {
		return nil, fmt.Errorf("error listing keys with prefix %s: %s", prefix, err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys, nil
}

// GetJSON decodes the item stored under key. A value that cannot be decoded is reported as an error.
func GetJSON[T any](c context.Context, s LocalStore, key string) (T, bool, error) {
	var value T

	raw, found, err := s.GetItem(c, key)
	if err != nil || !found {
		return value, found, err
	}

	err = json.Unmarshal([]byte(raw), &value)
	if err != nil {
		return value, true, fmt.Errorf("error decoding item %s: %s", key, err)
	}
	return value, true, nil
}

func SetJSON(c context.Context, s LocalStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding item %s: %s", key, err)
	}
	return s.SetItem(c, key, string(raw))
}
