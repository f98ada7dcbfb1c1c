package wishlist

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
		logger: mylog.New("wishlist"),
	}
}

// Get returns the wishlist of a user. Guests share a single list. Unreadable content counts as empty.
func (s *Service) Get(c context.Context, userUID string) (Wishlist, error) {
	key := storageKey(userUID)
	items, found, err := mylocalstore.GetJSON[[]catalog.Product](c, s.store, key)
	if err != nil {
		if found {
			s.logger.Log(c, key, mylog.SeverityWarn, "Ignoring unreadable wishlist: %s", err)
			return newWishlist(nil), nil
		}
		return Wishlist{}, myerrors.NewInternalError(err)
	}
	return newWishlist(items), nil
}

func (s *Service) Contains(c context.Context, userUID string, productUID string) (bool, error) {
	wishlist, err := s.Get(c, userUID)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(productUID), nil
}

// Add requires a signed-in user. A product that is already present is reported but is not an error.
func (s *Service) Add(c context.Context, userUID string, product catalog.Product) (Change, error) {
	if isGuest(userUID) {
		return Change{}, myerrors.NewAuthenticationError(fmt.Errorf("Sign in required"))
	}

	change := Change{}
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		wishlist, err := s.Get(c, userUID)
		if err != nil {
			return err
		}

		if wishlist.Contains(product.ID) {
			change = Change{
				InWishlist: true,
				Message:    fmt.Sprintf("%s is already in your wishlist", product.Title),
				Wishlist:   wishlist,
			}
			return nil
		}

		wishlist, err = s.persist(c, userUID, append(wishlist.Items, product))
		if err != nil {
			return err
		}
		change = Change{
			InWishlist: true,
			Message:    fmt.Sprintf("%s has been added to your wishlist", product.Title),
			Wishlist:   wishlist,
		}
		return nil
	})
	if err != nil {
		return Change{}, err
	}
	return change, nil
}

func (s *Service) Remove(c context.Context, userUID string, productUID string) (Change, error) {
	change := Change{}
	err := s.store.RunInTransaction(c, func(c context.Context) error {
		wishlist, err := s.Get(c, userUID)
		if err != nil {
			return err
		}

		remaining := []catalog.Product{}
		message := ""
		for _, p := range wishlist.Items {
			if p.ID == productUID {
				message = fmt.Sprintf("%s has been removed from your wishlist", p.Title)
				continue
			}
			remaining = append(remaining, p)
		}

		wishlist, err = s.persist(c, userUID, remaining)
		if err != nil {
			return err
		}
		change = Change{
			InWishlist: false,
			Message:    message,
			Wishlist:   wishlist,
		}
		return nil
	})
	if err != nil {
		return Change{}, err
	}
	return change, nil
}

// Toggle removes a present product, otherwise adds it.
func (s *Service) Toggle(c context.Context, userUID string, product catalog.Product) (Change, error) {
	present, err := s.Contains(c, userUID, product.ID)
	if err != nil {
		return Change{}, err
	}
	if present {
		return s.Remove(c, userUID, product.ID)
	}
	return s.Add(c, userUID, product)
}

// Clear drops the stored list; a missing list reads as empty.
func (s *Service) Clear(c context.Context, userUID string) (Wishlist, error) {
	err := s.store.RemoveItem(c, storageKey(userUID))
	if err != nil {
		return Wishlist{}, myerrors.NewInternalError(fmt.Errorf("error clearing wishlist: %s", err))
	}
	return newWishlist([]catalog.Product{}), nil
}

func (s *Service) persist(c context.Context, userUID string, items []catalog.Product) (Wishlist, error) {
	wishlist := newWishlist(items)
	err := mylocalstore.SetJSON(c, s.store, storageKey(userUID), wishlist.Items)
	if err != nil {
		return Wishlist{}, myerrors.NewInternalError(fmt.Errorf("error persisting wishlist: %s", err))
	}
	return wishlist, nil
}
