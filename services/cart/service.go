package cart

import (
	"context"
	"fmt"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylocalstore"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/catalog"
)

type Service struct {
	store  mylocalstore.LocalStore
	logger mylog.Logger
}

func NewService(store mylocalstore.LocalStore) *Service {
	return &Service{
		store:  store,
		logger: mylog.New("cart"),
	}
}

// Snapshot returns the persisted cart. A snapshot that cannot be decoded is treated as an empty cart.
func (s *Service) Snapshot(c context.Context) (Cart, error) {
	cart, found, err := mylocalstore.GetJSON[Cart](c, s.store, storageKey)
	if err != nil {
		if found {
			s.logger.Log(c, storageKey, mylog.SeverityWarn, "Ignoring unreadable cart snapshot: %s", err)
			return emptyCart(), nil
		}
		return Cart{}, myerrors.NewInternalError(err)
	}
	if !found {
		return emptyCart(), nil
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	cart.recalc()
	return cart, nil
}

func (s *Service) AddProduct(c context.Context, product catalog.Product) (Cart, error) {
	return s.mutate(c, func(cart *Cart) {
		for idx := range cart.Items {
			if cart.Items[idx].ID == product.ID {
				cart.Items[idx].Qty++
				return
			}
		}
		cart.Items = append(cart.Items, Item{
			ID:    product.ID,
			Title: product.Title,
			Price: product.Price,
			Image: product.Image,
			Qty:   1,
		})
	})
}

func (s *Service) Remove(c context.Context, productUID string) (Cart, error) {
	return s.mutate(c, func(cart *Cart) {
		items := []Item{}
		for _, i := range cart.Items {
			if i.ID != productUID {
				items = append(items, i)
			}
		}
		cart.Items = items
	})
}

// ChangeQty never lets a quantity drop below one. An unknown product only causes a recalculation.
func (s *Service) ChangeQty(c context.Context, productUID string, qty int) (Cart, error) {
	return s.mutate(c, func(cart *Cart) {
		for idx := range cart.Items {
			if cart.Items[idx].ID == productUID {
				cart.Items[idx].Qty = max(1, qty)
			}
		}
	})
}

func (s *Service) Clear(c context.Context) error {
	_, err := s.mutate(c, func(cart *Cart) {
		cart.Items = []Item{}
	})
	return err
}

func (s *Service) mutate(c context.Context, change func(cart *Cart)) (Cart, error) {
	var result Cart
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		cart, err := s.Snapshot(c)
		if err != nil {
			return err
		}

		change(&cart)
		cart.recalc()

		err = s.persistSnapshot(c, cart)
		if err != nil {
			return err
		}
		result = cart
		return nil
	})
	if err != nil {
		return Cart{}, err
	}
	return result, nil
}

func (s *Service) persistSnapshot(c context.Context, cart Cart) error {
	err := mylocalstore.SetJSON(c, s.store, storageKey, cart)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error persisting cart: %s", err))
	}
	return nil
}
