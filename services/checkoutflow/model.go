package checkoutflow

import (
	"errors"
)

const (
	scriptElementID = "razorpay-js"
	scriptSource    = "https://checkout.razorpay.com/v1/checkout.js"
	currency        = "INR"
	description     = "Order payment"
	themeColor      = "#0ea5e9"
	confirmationURL = "/order-confirmation"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrScriptLoad         = errors.New("Failed to load Razorpay")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrVerificationFailed = errors.New("Verification failed")
)

type State int

const (
	Idle State = iota
	ScriptLoading
	OrderRequested
	WidgetOpen
	AwaitingCallback
	Verifying
	Succeeded
	Failed
	Dismissed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ScriptLoading:
		return "script-loading"
	case OrderRequested:
		return "order-requested"
	case WidgetOpen:
		return "widget-open"
	case AwaitingCallback:
		return "awaiting-callback"
	case Verifying:
		return "verifying"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Dismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Customer identifies the shopper. An empty UID means a guest, whose orders are not recorded.
type Customer struct {
	UID   string
	Email string
}

type Theme struct {
	Color string `json:"color"`
}

// WidgetConfig holds the options the provider widget is opened with.
type WidgetConfig struct {
	Key         string `json:"key"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OrderID     string `json:"order_id"`
	Theme       Theme  `json:"theme"`
}

type PaymentSuccess struct {
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type PaymentFailure struct {
	Code        string
	Description string
	PaymentID   string
}

// WidgetHandlers are invoked by the widget, possibly from another goroutine. OnFailure may fire for every
// declined try while the widget stays open; the first OnSuccess or OnDismiss ends the attempt.
type WidgetHandlers struct {
	OnSuccess func(PaymentSuccess)
	OnFailure func(PaymentFailure)
	OnDismiss func()
}

type Result struct {
	State     State
	OrderID   string
	PaymentID string
}

type noteItem struct {
	ID    string `json:"id"`
	Title string `json:"t"`
	Qty   int    `json:"q"`
}

type confirmationQuery struct {
	OrderID   string `form:"order_id"`
	PaymentID string `form:"payment_id"`
}
