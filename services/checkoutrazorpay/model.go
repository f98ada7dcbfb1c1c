package checkoutrazorpay

import "encoding/json"

const (
	defaultCurrency = "INR"
)

// CreateOrderRequest is the body of POST /create-razorpay-order. Amount is in minor units (paise).
type CreateOrderRequest struct {
	Amount   json.Number    `json:"amount"`
	Currency string         `json:"currency,omitempty"`
	Notes    map[string]any `json:"notes,omitempty"`
}

type orderIntent struct {
	Amount   int64  `validate:"gt=0"`
	Currency string `validate:"required,iso4217"`
	Receipt  string
	Notes    map[string]any
}

// Order is the order as returned by the provider.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt,omitempty"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	// Notes is an object, or an empty array when no notes were given.
	Notes     any   `json:"notes,omitempty"`
	CreatedAt int64 `json:"created_at"`
}

type CreateOrderResponse struct {
	Order Order  `json:"order"`
	KeyID string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Valid bool `json:"valid"`
}
