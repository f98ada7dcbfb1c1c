package mystore

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"sort"
	"sync"
)

type InMemoryStore[T any] struct {
	sync.Mutex
	Items map[string]T
}

func NewInMemoryStore[T any](c context.Context) (*InMemoryStore[T], func(), error) {
	return &InMemoryStore[T]{
		Items: make(map[string]T),
	}, func() {}, nil
}

func (s *InMemoryStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	if s.inTransaction(c) {
		return f(c)
	}

	// Start transaction
	s.Lock()
	defer s.Unlock()

	before := maps.Clone(s.Items)

	err := f(context.WithValue(c, ctxTransactionKey{}, s))
	if err != nil {
		// Rollback
		s.Items = before
		return err
	}

	// Commit
	return nil
}

// inTransaction only holds for transactions started on this very store.
func (s *InMemoryStore[T]) inTransaction(c context.Context) bool {
	owner, ok := c.Value(ctxTransactionKey{}).(*InMemoryStore[T])
	return ok && owner == s
}

func (s *InMemoryStore[T]) locked(c context.Context, f func()) {
	if !s.inTransaction(c) {
		s.Lock()
		defer s.Unlock()
	}
	f()
}

func (s *InMemoryStore[T]) Put(c context.Context, uid string, value T) error {
	s.locked(c, func() {
		s.Items[uid] = value
	})
	return nil
}

func (s *InMemoryStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	var (
		result T
		exists bool
	)
	s.locked(c, func() {
		result, exists = s.Items[uid]
	})
	return result, exists, nil
}

func (s *InMemoryStore[T]) Delete(c context.Context, uid string) error {
	s.locked(c, func() {
		delete(s.Items, uid)
	})
	return nil
}

func (s *InMemoryStore[T]) List(c context.Context) ([]T, error) {
	result := []T{}
	s.locked(c, func() {
		for _, v := range s.Items {
			result = append(result, v)
		}
	})
	return result, nil
}

func (s *InMemoryStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	all, err := s.List(c)
	if err != nil {
		return nil, err
	}

	result := []T{}
	for _, item := range all {
		match := true
		for _, f := range filters {
			ok, err := matches(item, f)
			if err != nil {
				return nil, err
			}
			if !ok {
				match = false
				break
			}
		}
		if match {
			result = append(result, item)
		}
	}

	if orderByField != "" {
		descending := orderByField[0] == '-'
		field := orderByField
		if descending {
			field = orderByField[1:]
		}
		sort.SliceStable(result, func(i, j int) bool {
			cmp, _ := compare(fieldValue(result[i], field), fieldValue(result[j], field))
			if descending {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	return result, nil
}

func fieldValue(item any, field string) any {
	v := reflect.Indirect(reflect.ValueOf(item))
	if v.Kind() != reflect.Struct {
		return nil
	}
	f := v.FieldByName(field)
	if !f.IsValid() {
		return nil
	}
	return f.Interface()
}

func matches(item any, f Filter) (bool, error) {
	cmp, err := compare(fieldValue(item, f.Field), f.Value)
	if err != nil {
		return false, fmt.Errorf("error filtering on field %s: %s", f.Field, err)
	}
	switch f.Compare {
	case "=":
		return cmp == 0, nil
	case "<":
		return cmp < 0, nil
	case "<=":
		return cmp <= 0, nil
	case ">":
		return cmp > 0, nil
	case ">=":
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("unsupported comparison %q", f.Compare)
	}
}

func compare(a, b any) (int, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case va.CanInt() && vb.CanInt():
		return cmpOrdered(va.Int(), vb.Int()), nil
	case va.CanFloat() && vb.CanFloat():
		return cmpOrdered(va.Float(), vb.Float()), nil
	case va.Kind() == reflect.String && vb.Kind() == reflect.String:
		return cmpOrdered(va.String(), vb.String()), nil
	case va.Kind() == reflect.Bool && vb.Kind() == reflect.Bool:
		return cmpOrdered(boolToInt(va.Bool()), boolToInt(vb.Bool())), nil
	default:
		return 0, fmt.Errorf("cannot compare %T with %T", a, b)
	}
}

func cmpOrdered[V int64 | float64 | string | int](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
