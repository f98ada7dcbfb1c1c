package checkoutflow

import (
	"context"

	"github.com/MarcGrol/shopfront/services/cart"
	"github.com/MarcGrol/shopfront/services/checkoutrazorpay"
	"github.com/MarcGrol/shopfront/services/orderhistory"
)

//go:generate mockgen -source=api.go -package checkoutflow -destination api_mock.go Page PaymentAPI Widget CartPanel Notifier Navigator CartHolder OrderRecorder

// Page is the document the provider script is loaded into.
type Page interface {
	HasElement(id string) bool
	// InjectScript returns once the script has loaded or failed to load.
	InjectScript(c context.Context, id string, src string) error
}

type PaymentAPI interface {
	CreateOrder(c context.Context, req checkoutrazorpay.CreateOrderRequest) (checkoutrazorpay.CreateOrderResponse, error)
	VerifyPayment(c context.Context, req checkoutrazorpay.VerifyPaymentRequest) (checkoutrazorpay.VerifyPaymentResponse, error)
}

type Widget interface {
	Open(c context.Context, config WidgetConfig, handlers WidgetHandlers) error
}

type CartPanel interface {
	Open(c context.Context)
	Close(c context.Context)
}

type Notifier interface {
	Notify(c context.Context, title string, description string)
}

type Navigator interface {
	Navigate(c context.Context, path string)
}

type CartHolder interface {
	Snapshot(c context.Context) (cart.Cart, error)
	Clear(c context.Context) error
}

type OrderRecorder interface {
	RecordOrder(c context.Context, userUID string, order orderhistory.OrderRecord) (orderhistory.OrderRecord, error)
}
