package wishlist

import (
	"github.com/MarcGrol/shopfront/services/catalog"
)

const (
	keyPrefix    = "wishlist_"
	guestUserUID = "guest"
)

type Wishlist struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

func newWishlist(items []catalog.Product) Wishlist {
	if items == nil {
		items = []catalog.Product{}
	}
	return Wishlist{
		Items: items,
		Count: len(items),
	}
}

func (w Wishlist) Contains(productUID string) bool {
	for _, p := range w.Items {
		if p.ID == productUID {
			return true
		}
	}
	return false
}

// Change reports the outcome of an add, remove or toggle.
type Change struct {
	InWishlist bool     `json:"inWishlist"`
	Message    string   `json:"message"`
	Wishlist   Wishlist `json:"wishlist"`
}

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type ContainsResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

func isGuest(userUID string) bool {
	return userUID == "" || userUID == guestUserUID
}

func storageKey(userUID string) string {
	if isGuest(userUID) {
		return keyPrefix + guestUserUID
	}
	return keyPrefix + userUID
}
